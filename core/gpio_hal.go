package core

// Drive selects the pad output drive strength for the test pin. It changes
// edge rise and fall times, not the timing strategy.
type Drive uint8

const (
	DriveDefault Drive = iota // pad reset default (4mA)
	Drive2mA
	Drive12mA
)

// PinDriver is the abstract interface to the single output pin under test.
// The toggle loop is the only writer for the process lifetime.
type PinDriver interface {
	High()
	Low()
	SetDriveStrength(d Drive)
}

// Global singleton used by the toggle loop.
var pinDriver PinDriver

// SetPinDriver is called by target-specific code to register its driver.
func SetPinDriver(d PinDriver) {
	pinDriver = d
}

// MustPin returns the configured driver or panics if missing.
func MustPin() PinDriver {
	if pinDriver == nil {
		panic("pin driver not configured")
	}
	return pinDriver
}
