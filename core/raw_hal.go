package core

// RawLoop identifies one of the cycle-counted toggle loops built into the
// target. Each is a complete drive/burn/drive/burn loop rather than a pause
// primitive: routing the pause through an interface call would add cycles
// the budgets do not account for.
type RawLoop uint8

const (
	// RawShared200 is built from identical source on both boards:
	// 200ns period on the Pico, 100ns on the Pico 2.
	RawShared200 RawLoop = iota
	// RawCalibrated200 adds per-board pad cycles so both boards hit 200ns.
	RawCalibrated200
	// Raw80 hits an 80ns period on both boards.
	Raw80
	// RawMin toggles with no burn cycles at all: the shortest period the
	// core can produce (48ns Pico, ~33ns Pico 2).
	RawMin
)

// RawDriver runs a cycle-counted toggle loop. Run never returns.
type RawDriver interface {
	Run(loop RawLoop)
}

var rawDriver RawDriver

// SetRawDriver is called by target-specific code to register its loops.
func SetRawDriver(d RawDriver) {
	rawDriver = d
}

// RawAvailable reports whether this build registered raw toggle loops.
func RawAvailable() bool {
	return rawDriver != nil
}

func mustRaw() RawDriver {
	if rawDriver == nil {
		panic("raw toggle driver not configured")
	}
	return rawDriver
}
