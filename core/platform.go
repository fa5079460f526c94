// Platform timing table for the two supported boards.
package core

// Platform identifies one of the two supported boards.
type Platform uint8

const (
	Pico  Platform = iota // Raspberry Pi Pico (RP2040)
	Pico2                 // Raspberry Pi Pico 2 (RP2350)
)

const (
	picoClockHz  = 125_000_000
	pico2ClockHz = 150_000_000
)

// OutputPin is the GPIO number driven by every test.
const OutputPin = 2

var (
	activePlatform    Platform
	activePlatformSet bool
)

// SetActivePlatform records which board this firmware image runs on.
// Called once from the target's main before any variant resolution.
func SetActivePlatform(p Platform) {
	activePlatform = p
	activePlatformSet = true
}

// ActivePlatform returns the board set by the target, or panics if target
// init never ran.
func ActivePlatform() Platform {
	if !activePlatformSet {
		panic("active platform not configured")
	}
	return activePlatform
}

// Name returns the marketing name printed in diagnostics.
func (p Platform) Name() string {
	if p == Pico2 {
		return "Pico 2"
	}
	return "Pico"
}

// ClockHz returns the system clock frequency in Hz.
func (p Platform) ClockHz() uint32 {
	if p == Pico2 {
		return pico2ClockHz
	}
	return picoClockHz
}

// PicosPerCycle returns the duration of one CPU cycle in picoseconds,
// truncated (8000 on the Pico, 6666 on the Pico 2). Period math uses
// CycleBudget.PeriodPicos instead, which divides last and stays exact.
func (p Platform) PicosPerCycle() uint64 {
	return 1_000_000_000_000 / uint64(p.ClockHz())
}

// BranchCycles returns the cost of the backwards branch that closes a tight
// toggle loop. The Cortex-M33 on the Pico 2 spends one cycle fewer than the
// Cortex-M0+ on the Pico, which is why identical loop source runs at
// different periods on the two boards.
func (p Platform) BranchCycles() uint32 {
	if p == Pico2 {
		return 1
	}
	return 2
}

// NopIssueWidth returns how many independent no-ops the core retires per
// cycle. The M33 dual-issues them, which is the second reason identical
// loop source diverges across the boards. Burns built from dependent adds
// (each reads the previous result) execute one per cycle on both cores;
// the calibrated loops use those so their budgets hold on both boards.
func (p Platform) NopIssueWidth() uint32 {
	if p == Pico2 {
		return 2
	}
	return 1
}
