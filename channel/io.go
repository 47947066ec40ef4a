package channel


import (
	sio "bichan/io"
	"io"
)


// ----------------------------------------------------------------------------


type IoEndpointOptions struct {
	// Bound of each direction of the endpoint.
	// If zero then use `IoEndpointDefaultCapacity`.
	//
	Capacity int

	// Logger used to trace the pump goroutines.
	//
	Log sio.Logger
}

const IoEndpointDefaultCapacity = 128


// Return an `Endpoint` backed by the given byte stream `rw`.
//
// Chunks read from `rw` are received on the returned `Endpoint` and chunks
// sent on the returned `Endpoint` are written to `rw`.
// When `rw` reaches end of stream the inbound direction of the returned
// `Endpoint` drains then terminates while the outbound direction remains
// usable.
// Closing the returned `Endpoint` (or a write failure on `rw`) closes `rw`.
//
func NewIoEndpoint(rw io.ReadWriteCloser, opts *IoEndpointOptions) *Endpoint[[]byte, []byte] {
	var user, inner *Endpoint[[]byte, []byte]
	var log sio.Logger

	if opts == nil {
		opts = &IoEndpointOptions{}
	}

	if opts.Capacity == 0 {
		opts.Capacity = IoEndpointDefaultCapacity
	}

	if opts.Log == nil {
		opts.Log = sio.NewNopLogger()
	}

	log = opts.Log

	user, inner = NewWith[[]byte, []byte](opts.Capacity, &EndpointOptions{
		Log: log,
	})

	go sio.ReadInEndpoint(rw, inner)

	go func () {
		sio.WriteFromEndpoint(rw, inner)
		inner.Close()
		rw.Close()
		log.Trace("stop io endpoint")
	}()

	return user
}
