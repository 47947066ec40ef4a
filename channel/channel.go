package channel


import (
	sio "bichan/io"
	"context"
)


// ----------------------------------------------------------------------------


// One side of a bidirectional channel pair.
//
// An `Endpoint` owns the producer half of one bounded queue and the consumer
// half of another. The two `Endpoint`s returned by a single call to `New`
// are mutual peers: everything one sends, only the other can receive.
// The two directions are independent: saturating or terminating one never
// affects the other.
//
// All methods are safe to call concurrently.
//
type Endpoint[Out any, In any] struct {
	out *queue[Out]
	in *queue[In]
	log sio.Logger
}


type EndpointOptions struct {
	// Bound of the queue this endpoint sends on.
	// If zero then use the capacity given to `NewWith`.
	//
	SendCapacity int

	// Bound of the queue this endpoint receives from.
	// If zero then use the capacity given to `NewWith`.
	//
	RecvCapacity int

	// Logger used to trace endpoint lifecycle events.
	//
	Log sio.Logger
}


// Return two connected `Endpoint`s.
// Messages sent on the first are received by the second and vice versa.
// Each direction is a bounded queue of the given `capacity`.
//
// Panic if `capacity` is less than 1.
//
func New[Out any, In any](capacity int) (*Endpoint[Out, In], *Endpoint[In, Out]) {
	return NewWith[Out, In](capacity, nil)
}

// Same as `New` but optionally configured by `opts`.
// The capacity fields of `opts` are understood from the point of view of the
// first returned `Endpoint`.
//
// Panic if the effective capacity of either direction is less than 1.
//
func NewWith[Out any, In any](capacity int, opts *EndpointOptions) (*Endpoint[Out, In], *Endpoint[In, Out]) {
	var left Endpoint[Out, In]
	var right Endpoint[In, Out]
	var scap, rcap int

	if opts == nil {
		opts = &EndpointOptions{}
	}

	if opts.Log == nil {
		opts.Log = sio.NewNopLogger()
	}

	scap = opts.SendCapacity
	if scap == 0 {
		scap = capacity
	}

	rcap = opts.RecvCapacity
	if rcap == 0 {
		rcap = capacity
	}

	if (scap < 1) || (rcap < 1) {
		panic("channel: capacity must be positive")
	}

	left.out = newQueue[Out](scap)
	right.out = newQueue[In](rcap)

	right.in = left.out
	left.in = right.out

	left.log = opts.Log
	right.log = opts.Log

	return &left, &right
}


// ----------------------------------------------------------------------------


// Send `msg` to the peer `Endpoint`.
// Block while the outbound queue is full.
// Return a `*SendError[Out]` carrying `msg` if the outbound direction is
// closed, either by the peer or by this endpoint.
//
// Messages sent on the same direction are received in the order they were
// sent.
//
func (this *Endpoint[Out, In]) Send(msg Out) error {
	return this.out.send(context.Background(), msg)
}

// Same as `Send` but additionally return `ctx.Err()` if `ctx` ends before a
// slot frees in the outbound queue.
// The message is not enqueued in that case.
//
func (this *Endpoint[Out, In]) SendContext(ctx context.Context, msg Out) error {
	return this.out.send(ctx, msg)
}

// Same as `Send` but never block.
// Return `ErrFull` if the outbound queue is at capacity.
//
func (this *Endpoint[Out, In]) TrySend(msg Out) error {
	return this.out.trySend(msg)
}

// Receive the next message from the peer `Endpoint`.
// Block while the inbound queue is empty and the peer can still send.
// Once the inbound direction is closed, return the messages still buffered
// in send order, then fail with `ErrClosed` forever.
//
func (this *Endpoint[Out, In]) Recv() (In, error) {
	return this.in.recv(context.Background())
}

// Same as `Recv` but additionally return `ctx.Err()` if `ctx` ends before a
// message is available.
//
func (this *Endpoint[Out, In]) RecvContext(ctx context.Context) (In, error) {
	return this.in.recv(ctx)
}

// Same as `Recv` but never block.
// Return `ErrEmpty` if the inbound queue is empty but the peer can still
// send.
//
func (this *Endpoint[Out, In]) TryRecv() (In, error) {
	return this.in.tryRecv()
}

// Close both halves of this `Endpoint`.
// The peer's subsequent `Send`s fail and its `Recv`s drain the buffered
// messages then fail.
// Any call to `Close()` after the first call does nothing and returns `nil`.
//
// The `Close()` function can safely be called concurrently to other calls
// to `Close()`, `Send()` or `Recv()`.
//
func (this *Endpoint[Out, In]) Close() error {
	this.log.Trace("close endpoint")

	this.out.closeSend()
	this.in.closeRecv()

	return nil
}

// Close only the sending half of this `Endpoint`.
// The peer's `Recv`s drain the buffered messages then fail but the peer can
// still send and this endpoint can still receive.
// Idempotent and safe to call concurrently, like `Close`.
//
func (this *Endpoint[Out, In]) CloseSend() error {
	this.log.Trace("close endpoint send half")

	this.out.closeSend()

	return nil
}
