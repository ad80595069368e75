package arduino

import (
	"time"

	"go.bug.st/serial"
)

// openSerial opens a real serial port as the Transport. 8N1 framing is the
// serial library default and matches the Arduino bootloader.
func openSerial(port string, baudRate int, timeout time.Duration) (Transport, error) {
	p, err := serial.Open(port, &serial.Mode{BaudRate: baudRate})
	if err != nil {
		return nil, err
	}

	if err := p.SetReadTimeout(timeout); err != nil {
		p.Close()
		return nil, err
	}

	return p, nil
}
