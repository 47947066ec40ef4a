package channel


import (
	"context"
	"sync"
)


// ----------------------------------------------------------------------------


// A bounded single-direction queue.
//
// The buffering, capacity enforcement and wake-up signaling are entirely
// delegated to the inner buffered channel. This struct only adds the close
// bookkeeping: each half can be dropped independently and the other half
// observes it through the associated done channel instead of blocking
// forever.
//
// The `data` channel is never closed so a `send` concurrent to `closeSend`
// cannot panic. Dropped queues are collected once both endpoints become
// unreachable.
//
type queue[T any] struct {
	data chan T
	sendDone chan struct{}
	recvDone chan struct{}
	sendOnce sync.Once
	recvOnce sync.Once
}

func newQueue[T any](capacity int) *queue[T] {
	var this queue[T]

	this.data = make(chan T, capacity)
	this.sendDone = make(chan struct{})
	this.recvDone = make(chan struct{})

	return &this
}

func (this *queue[T]) send(ctx context.Context, msg T) error {
	select {
	case <-this.sendDone:
		return &SendError[T]{ Msg: msg }
	case <-this.recvDone:
		return &SendError[T]{ Msg: msg }
	default:
	}

	select {
	case this.data <- msg:
		return nil
	case <-this.sendDone:
		return &SendError[T]{ Msg: msg }
	case <-this.recvDone:
		return &SendError[T]{ Msg: msg }
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (this *queue[T]) trySend(msg T) error {
	select {
	case <-this.sendDone:
		return &SendError[T]{ Msg: msg }
	case <-this.recvDone:
		return &SendError[T]{ Msg: msg }
	default:
	}

	select {
	case this.data <- msg:
		return nil
	default:
		return ErrFull
	}
}

func (this *queue[T]) recv(ctx context.Context) (T, error) {
	var msg, zero T

	// Drain before to check for termination so buffered messages are
	// delivered even if the producer is already gone.
	//
	select {
	case msg = <-this.data:
		return msg, nil
	default:
	}

	select {
	case msg = <-this.data:
		return msg, nil
	case <-this.sendDone:
		return this.drain()
	case <-this.recvDone:
		return zero, ErrClosed
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

func (this *queue[T]) tryRecv() (T, error) {
	var msg, zero T

	select {
	case msg = <-this.data:
		return msg, nil
	default:
	}

	select {
	case <-this.sendDone:
		return this.drain()
	case <-this.recvDone:
		return zero, ErrClosed
	default:
		return zero, ErrEmpty
	}
}

func (this *queue[T]) drain() (T, error) {
	var msg, zero T

	select {
	case msg = <-this.data:
		return msg, nil
	default:
		return zero, ErrClosed
	}
}

func (this *queue[T]) closeSend() {
	this.sendOnce.Do(func () {
		close(this.sendDone)
	})
}

func (this *queue[T]) closeRecv() {
	this.recvOnce.Do(func () {
		close(this.recvDone)
	})
}
