package channel


import (
	"errors"
)


// ----------------------------------------------------------------------------


// Terminal condition of a direction: the other half has been closed.
// Returned by `Recv` once the queue is drained and wrapped by the
// `SendError` returned by `Send`.
//
var ErrClosed error = errors.New("channel closed")

// Returned by `TryRecv` when the inbound queue is empty but the peer can
// still send.
//
var ErrEmpty error = errors.New("channel empty")

// Returned by `TrySend` when the outbound queue is at capacity but the peer
// can still receive.
//
var ErrFull error = errors.New("channel full")


// Returned by `Send` when delivery is impossible because the direction is
// closed. Carries the undelivered message so the caller can inspect or
// reuse it.
//
type SendError[T any] struct {
	Msg T
}

func (this *SendError[T]) Error() string {
	return "send on closed channel"
}

func (this *SendError[T]) Unwrap() error {
	return ErrClosed
}
