package link

import (
	"fmt"

	"go.bug.st/serial"
)

// Serial is a serial-port link, typically a telemetry radio.
type Serial struct {
	path string
	port serial.Port
}

func NewSerial(path string, baud int) (*Serial, error) {
	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(path, mode)
	if err != nil {
		return nil, fmt.Errorf("open serial %s: %w", path, err)
	}

	return &Serial{path: path, port: port}, nil
}

func (s *Serial) Name() string { return "serial:" + s.path }

func (s *Serial) Read(p []byte) (int, error) { return s.port.Read(p) }

func (s *Serial) Write(p []byte) (int, error) { return s.port.Write(p) }

func (s *Serial) Close() error { return s.port.Close() }
