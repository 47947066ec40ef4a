package channel


import (
	"errors"
	"go.uber.org/goleak"
	"testing"
)


// ----------------------------------------------------------------------------


type plugTestSetup struct {
	x *Endpoint[string, string]
	y *Endpoint[string, string]
	errc chan error
}

func setupPlug() *plugTestSetup {
	var a, b *Endpoint[string, string]
	var this plugTestSetup

	this.x, a = New[string, string](8)
	b, this.y = New[string, string](8)

	this.errc = make(chan error)

	go func () {
		this.errc <- Plug(a, b)
		close(this.errc)
	}()

	return &this
}


// ----------------------------------------------------------------------------


func TestPlugTransfer(t *testing.T) {
	var setup *plugTestSetup
	var msg string
	var err error

	defer goleak.VerifyNone(t)

	setup = setupPlug()

	err = setup.x.Send("ping")
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	msg, err = setup.y.Recv()
	if (msg != "ping") || (err != nil) {
		t.Errorf("recv: %q %v", msg, err)
	}

	err = setup.y.Send("pong")
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	msg, err = setup.x.Recv()
	if (msg != "pong") || (err != nil) {
		t.Errorf("recv: %q %v", msg, err)
	}

	setup.x.Close()
	setup.y.Close()

	err = <-setup.errc
	if err != nil {
		t.Errorf("plug: %v", err)
	}
}

func TestPlugFifo(t *testing.T) {
	var setup *plugTestSetup
	var msgs []string = []string{ "a", "b", "c" }
	var msg, sent string
	var err error

	defer goleak.VerifyNone(t)

	setup = setupPlug()

	for _, sent = range msgs {
		err = setup.x.Send(sent)
		if err != nil {
			t.Fatalf("send: %v", err)
		}
	}

	for _, sent = range msgs {
		msg, err = setup.y.Recv()
		if (msg != sent) || (err != nil) {
			t.Errorf("recv: %q %v (expected %q)", msg, err, sent)
		}
	}

	setup.x.Close()
	setup.y.Close()

	err = <-setup.errc
	if err != nil {
		t.Errorf("plug: %v", err)
	}
}

func TestPlugHalfClose(t *testing.T) {
	var setup *plugTestSetup
	var msg string
	var err error

	defer goleak.VerifyNone(t)

	setup = setupPlug()

	err = setup.x.Send("last")
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	setup.x.CloseSend()

	msg, err = setup.y.Recv()
	if (msg != "last") || (err != nil) {
		t.Errorf("recv: %q %v", msg, err)
	}

	// the half-close crosses the bridge once the direction drains
	_, err = setup.y.Recv()
	if !errors.Is(err, ErrClosed) {
		t.Errorf("recv should fail with ErrClosed: %v", err)
	}

	// the backward direction still flows
	err = setup.y.Send("back")
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	msg, err = setup.x.Recv()
	if (msg != "back") || (err != nil) {
		t.Errorf("recv: %q %v", msg, err)
	}

	setup.x.Close()
	setup.y.Close()

	err = <-setup.errc
	if err != nil {
		t.Errorf("plug: %v", err)
	}
}

func TestPlugPeerClose(t *testing.T) {
	var setup *plugTestSetup
	var err error

	defer goleak.VerifyNone(t)

	setup = setupPlug()

	setup.x.Close()
	setup.y.Close()

	err = <-setup.errc
	if err != nil {
		t.Errorf("plug: %v", err)
	}
}
