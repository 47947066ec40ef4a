package channel


import (
	sio "bichan/io"
	"errors"
)


// ----------------------------------------------------------------------------


// Plug two `Endpoint`s `a` and `b` so messages received by `a` are sent on
// `b` and vice versa.
// Block until both directions terminate, then close `a` and `b` and return
// the first error which ended a direction, or `nil` if both directions ended
// by an orderly close.
//
func Plug[Out any, In any](a *Endpoint[Out, In], b *Endpoint[In, Out]) error {
	return PlugWithLogger(a, b, sio.NewNopLogger())
}

func PlugWithLogger[Out any, In any](a *Endpoint[Out, In], b *Endpoint[In, Out], log sio.Logger) error {
	var aerrc chan error = make(chan error)
	var berrc chan error = make(chan error)
	var err, e error

	log.Trace("start endpoint bridge")

	go func () {
		aerrc <- plugForward(a, b, log)
		close(aerrc)
	}()

	go func () {
		berrc <- plugBackward(a, b, log)
		close(berrc)
	}()

	err = <-aerrc
	e = <-berrc
	if err == nil {
		err = e
	}

	a.Close()
	b.Close()

	return err
}

func plugForward[Out any, In any](a *Endpoint[Out, In], b *Endpoint[In, Out], log sio.Logger) error {
	var msg In
	var err error

	for {
		msg, err = a.Recv()
		if err != nil {
			b.CloseSend()
			log.Trace("stop endpoint bridge forward")
			break
		}

		log.Trace("transfer forward %T:%v", msg, log.Emph(2, msg))

		err = b.Send(msg)
		if err != nil {
			b.Close()
			break
		}
	}

	if errors.Is(err, ErrClosed) {
		return nil
	}

	return err
}

func plugBackward[Out any, In any](a *Endpoint[Out, In], b *Endpoint[In, Out], log sio.Logger) error {
	var msg Out
	var err error

	for {
		msg, err = b.Recv()
		if err != nil {
			a.CloseSend()
			log.Trace("stop endpoint bridge backward")
			break
		}

		log.Trace("transfer backward %T:%v", msg, log.Emph(2, msg))

		err = a.Send(msg)
		if err != nil {
			a.Close()
			break
		}
	}

	if errors.Is(err, ErrClosed) {
		return nil
	}

	return err
}
