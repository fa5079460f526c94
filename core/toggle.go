package core

// ToggleLoop drives the test pin high, pauses, drives it low, pauses, and
// repeats forever. One High/pause/Low/pause round is one output period.
type ToggleLoop struct {
	pin PinDriver
	v   Variant
}

// NewToggleLoop binds the resolved variant to the registered pin driver.
// The caller has already driven the pin low and holds sole ownership of it.
func NewToggleLoop(v Variant) *ToggleLoop {
	return &ToggleLoop{pin: MustPin(), v: v}
}

// Run enters the toggle loop and never returns. Only an external hardware
// reset ends it; there are no error paths past this point.
func (l *ToggleLoop) Run() {
	if l.v.Drive != DriveDefault {
		l.pin.SetDriveStrength(l.v.Drive)
	}

	if l.v.hasRaw {
		// The budgets count every cycle; a tick interrupt in the middle of
		// a burn would show up as jitter on the scope. Masked, not
		// restored: the loop never exits.
		disableInterrupts()
		mustRaw().Run(l.v.Raw)
		panic("raw toggle loop returned")
	}

	if l.v.hasWave {
		mustWave().RunWave(l.v.WavePeriod)
		panic("wave runner returned")
	}

	s := l.v.Strategy
	for {
		l.pin.High()
		s.Pause()
		l.pin.Low()
		s.Pause()
	}
}
