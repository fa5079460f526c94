// Package serial wraps the host-side serial port used to read the board's
// diagnostic output.
package serial

import "io"

// Port is a serial port. An interface so tests can substitute an in-memory
// implementation for the real device.
type Port interface {
	io.ReadWriteCloser
}

// Config holds serial port configuration.
type Config struct {
	// Device path (e.g. "/dev/ttyACM0", "COM3").
	Device string

	// Baud rate. USB CDC ignores it, but the field is honored for boards
	// wired over a real UART.
	Baud int

	// Read timeout in milliseconds (0 = blocking).
	ReadTimeout int
}

// DefaultConfig returns the configuration for a Pico on USB CDC.
func DefaultConfig(device string) *Config {
	return &Config{
		Device: device,
		Baud:   115200,
	}
}
