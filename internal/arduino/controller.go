// Package arduino manages the serial command link to the external microcontroller.
package arduino

import (
	"io"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// State is the connection status of the command link.
type State int

const (
	// StateDisconnected means no connection has been made, or it was closed.
	StateDisconnected State = iota
	// StateConnected means the port is open and commands can be sent.
	StateConnected
	// StateFailed means the last connection attempt did not succeed.
	StateFailed
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateConnected:
		return "connected"
	case StateFailed:
		return "failed"
	default:
		return "disconnected"
	}
}

// Transport is the byte-oriented connection to the device. Tests substitute
// an in-memory fake for a real serial port.
type Transport interface {
	io.Writer
	Close() error
}

// Opener opens a Transport to the given port at the given baud rate.
type Opener func(port string, baudRate int, timeout time.Duration) (Transport, error)

// DefaultSettleDelay is how long to wait after opening the port before the
// first send. Most Arduino boards reset when the port opens and need the
// delay to finish booting.
const DefaultSettleDelay = 2 * time.Second

// Config holds the serial link settings.
type Config struct {
	Port        string
	BaudRate    int
	Timeout     time.Duration
	SettleDelay time.Duration
}

// Controller owns the serial connection lifecycle and delivers finger-count
// commands to the device. It is not safe for concurrent use; the control
// loop holds exclusive ownership for the run's duration.
type Controller struct {
	config    Config
	open      Opener
	transport Transport
	state     State
	log       *zap.SugaredLogger
}

// NewController creates a Controller for the configured port.
// A zero SettleDelay selects DefaultSettleDelay; tests set a negative value
// to skip the wait entirely.
func NewController(config Config, log *zap.SugaredLogger) *Controller {
	if config.SettleDelay == 0 {
		config.SettleDelay = DefaultSettleDelay
	}
	return &Controller{
		config: config,
		open:   openSerial,
		state:  StateDisconnected,
		log:    log,
	}
}

// SetOpener replaces the transport opener. Used by tests to inject a fake.
func (c *Controller) SetOpener(open Opener) {
	c.open = open
}

// Connect attempts to open the serial device. On success the controller
// waits out the settle delay, moves to StateConnected, and returns true.
// On failure it moves to StateFailed, logs the cause, and returns false;
// a missing device is not fatal and the caller may keep running without it.
func (c *Controller) Connect() bool {
	transport, err := c.open(c.config.Port, c.config.BaudRate, c.config.Timeout)
	if err != nil {
		c.state = StateFailed
		c.log.Errorw("arduino connection failed",
			"port", c.config.Port,
			"baud_rate", c.config.BaudRate,
			"error", err,
		)
		return false
	}

	if c.config.SettleDelay > 0 {
		time.Sleep(c.config.SettleDelay)
	}

	c.transport = transport
	c.state = StateConnected
	c.log.Infow("arduino connected", "port", c.config.Port, "baud_rate", c.config.BaudRate)
	return true
}

// Send writes the finger count to the device as its decimal text, with no
// framing and no acknowledgment. It returns false without blocking when the
// controller is not connected. A transport error is logged and reported as
// false but deliberately leaves the state Connected; see the package notes
// on reconnection policy.
func (c *Controller) Send(count int) bool {
	if c.state != StateConnected || c.transport == nil {
		return false
	}

	if _, err := io.WriteString(c.transport, strconv.Itoa(count)); err != nil {
		c.log.Errorw("command transmission failed", "count", count, "error", err)
		return false
	}

	return true
}

// Disconnect closes the transport if connected. It is idempotent: calling it
// repeatedly, or without a prior Connect, does nothing.
func (c *Controller) Disconnect() {
	if c.state != StateConnected {
		return
	}

	if c.transport != nil {
		if err := c.transport.Close(); err != nil {
			c.log.Warnw("closing arduino port", "error", err)
		}
		c.transport = nil
	}

	c.state = StateDisconnected
	c.log.Infow("arduino disconnected")
}

// State returns the current connection state.
func (c *Controller) State() State {
	return c.state
}

// IsConnected reports whether commands can currently be sent.
func (c *Controller) IsConnected() bool {
	return c.state == StateConnected
}
