package arduino

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
)

// fakeTransport records writes and close calls in memory.
type fakeTransport struct {
	written  bytes.Buffer
	writeErr error
	closes   int
}

func (f *fakeTransport) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	return f.written.Write(p)
}

func (f *fakeTransport) Close() error {
	f.closes++
	return nil
}

// newTestController wires a Controller to the given fake transport with the
// settle delay disabled.
func newTestController(transport *fakeTransport, openErr error) *Controller {
	c := NewController(Config{
		Port:        "/dev/ttyTEST",
		BaudRate:    9600,
		Timeout:     time.Second,
		SettleDelay: -1,
	}, zap.NewNop().Sugar())

	c.SetOpener(func(port string, baudRate int, timeout time.Duration) (Transport, error) {
		if openErr != nil {
			return nil, openErr
		}
		return transport, nil
	})

	return c
}

func TestController_SendBeforeConnect(t *testing.T) {
	c := newTestController(&fakeTransport{}, nil)

	if c.Send(3) {
		t.Error("Send() before Connect() should return false")
	}
	if c.State() != StateDisconnected {
		t.Errorf("state = %v, want %v", c.State(), StateDisconnected)
	}
}

func TestController_ConnectSuccess(t *testing.T) {
	transport := &fakeTransport{}
	c := newTestController(transport, nil)

	if !c.Connect() {
		t.Fatal("Connect() should succeed with a working opener")
	}
	if c.State() != StateConnected {
		t.Errorf("state = %v, want %v", c.State(), StateConnected)
	}
	if !c.IsConnected() {
		t.Error("IsConnected() should report true after a successful connect")
	}
}

func TestController_ConnectFailure(t *testing.T) {
	c := newTestController(nil, errors.New("no such device"))

	if c.Connect() {
		t.Fatal("Connect() should fail when the opener errors")
	}
	if c.State() != StateFailed {
		t.Errorf("state = %v, want %v", c.State(), StateFailed)
	}
	if c.Send(2) {
		t.Error("Send() after a failed connect should return false")
	}
}

func TestController_SendWritesDecimalText(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{0, "0"},
		{3, "3"},
		{5, "5"},
	}

	for _, tt := range tests {
		transport := &fakeTransport{}
		c := newTestController(transport, nil)
		c.Connect()

		if !c.Send(tt.count) {
			t.Errorf("Send(%d) should succeed while connected", tt.count)
		}
		if got := transport.written.String(); got != tt.want {
			t.Errorf("Send(%d) wrote %q, want %q", tt.count, got, tt.want)
		}
	}
}

func TestController_SendErrorKeepsStateConnected(t *testing.T) {
	transport := &fakeTransport{}
	c := newTestController(transport, nil)
	c.Connect()

	transport.writeErr = errors.New("device unplugged")

	if c.Send(4) {
		t.Error("Send() should return false on a transport error")
	}
	// A failed send does not demote the connection; only Disconnect does.
	if c.State() != StateConnected {
		t.Errorf("state = %v after send error, want %v", c.State(), StateConnected)
	}
}

func TestController_DisconnectIdempotent(t *testing.T) {
	transport := &fakeTransport{}
	c := newTestController(transport, nil)
	c.Connect()

	c.Disconnect()
	c.Disconnect()

	if transport.closes != 1 {
		t.Errorf("transport closed %d times, want 1", transport.closes)
	}
	if c.State() != StateDisconnected {
		t.Errorf("state = %v, want %v", c.State(), StateDisconnected)
	}
}

func TestController_DisconnectWithoutConnect(t *testing.T) {
	c := newTestController(&fakeTransport{}, nil)

	c.Disconnect()

	if c.State() != StateDisconnected {
		t.Errorf("state = %v, want %v", c.State(), StateDisconnected)
	}
}

func TestController_SendAfterDisconnect(t *testing.T) {
	transport := &fakeTransport{}
	c := newTestController(transport, nil)
	c.Connect()
	c.Disconnect()

	if c.Send(1) {
		t.Error("Send() after Disconnect() should return false")
	}
	if transport.written.Len() != 0 {
		t.Errorf("no bytes should reach the transport after disconnect, got %q", transport.written.String())
	}
}

func TestController_ReconnectAfterDisconnect(t *testing.T) {
	transport := &fakeTransport{}
	c := newTestController(transport, nil)

	c.Connect()
	c.Disconnect()

	if !c.Connect() {
		t.Fatal("Connect() should succeed again after a disconnect")
	}
	if !c.Send(5) {
		t.Error("Send() should work on the re-opened connection")
	}
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateDisconnected, "disconnected"},
		{StateConnected, "connected"},
		{StateFailed, "failed"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
