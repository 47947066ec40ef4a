package io


import (
	"io"
)


// ----------------------------------------------------------------------------


const EndpointMaxChunk = (1 << 16)
const EndpointMinChunk = (1 << 12)


// The sending half of a byte chunk endpoint.
//
type ByteSender interface {
	// Send the given chunk.
	// Return an error if the chunk cannot be delivered.
	//
	Send(b []byte) error

	// Close the sending half.
	//
	CloseSend() error
}

// The receiving half of a byte chunk endpoint.
//
type ByteReceiver interface {
	// Receive the next chunk.
	// Return an error if no chunk can ever be received again.
	//
	Recv() ([]byte, error)
}


// Read `reader` until end of stream or error and send every chunk read on
// `dest`, then close the sending half of `dest`.
// Stop early if `dest` cannot deliver anymore.
//
func ReadInEndpoint(reader io.Reader, dest ByteSender) {
	var b []byte = make([]byte, EndpointMaxChunk)
	var err error
	var n int

	for {
		if len(b) < EndpointMinChunk {
			b = make([]byte, EndpointMaxChunk)
		}

		n, err = reader.Read(b)

		if n > 0 {
			if dest.Send(b[:n]) != nil {
				break
			}

			b = b[n:]
		}

		if err != nil {
			break
		}
	}

	dest.CloseSend()
}

// Receive chunks from `src` and write them to `writer` until `src`
// terminates or `writer` fails.
//
func WriteFromEndpoint(writer io.Writer, src ByteReceiver) {
	var err error
	var b []byte

	for {
		b, err = src.Recv()
		if err != nil {
			break
		}

		_, err = writer.Write(b)
		if err != nil {
			break
		}
	}
}
