package core

import "time"

// DelayDriver is the abstract pause and timebase interface behind the delay
// strategies. Target code registers a hardware implementation backed by the
// board's microsecond timer; tests register a recording mock.
type DelayDriver interface {
	// Sleep suspends the calling task cooperatively for d. The scheduler
	// may run other pending work before resuming.
	Sleep(d time.Duration)

	// SpinWait busy-waits for d without yielding. Nothing else runs,
	// including timer bookkeeping.
	SpinWait(d time.Duration)

	// SpinCycles busy-waits for at least n CPU cycles.
	SpinCycles(n uint32)

	// Yield hands control to the scheduler exactly once.
	Yield()

	// Now returns the hardware timer value in microsecond ticks.
	Now() uint64

	// SleepUntil suspends until the hardware timer reaches tick t.
	// Returns immediately if t has already passed.
	SleepUntil(t uint64)
}

var delayDriver DelayDriver

// SetDelayDriver is called by target-specific code to register its driver.
func SetDelayDriver(d DelayDriver) {
	delayDriver = d
}

// DelayAvailable reports whether this build registered a delay driver.
func DelayAvailable() bool {
	return delayDriver != nil
}

// MustDelay returns the configured driver or panics if missing.
func MustDelay() DelayDriver {
	if delayDriver == nil {
		panic("delay driver not configured")
	}
	return delayDriver
}
