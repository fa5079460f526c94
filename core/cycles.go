package core

import "errors"

// CycleBudget accounts for every cycle of one full output period of a raw
// toggle loop: drive high, burn, drive low, burn, branch back. The budgets
// below mirror the instruction sequences in targets/*/asm.go; the tests
// check that budget times cycle length lands on the documented period.
type CycleBudget struct {
	StoreCycles uint32 // per pin write (movs + str)
	HighBurn    uint32 // no-op cycles after driving high
	LowBurn     uint32 // no-op cycles after driving low
	HighPad     uint32 // per-platform extra cycles in the high phase
	LowPad      uint32 // per-platform extra cycles in the low phase
	Branch      uint32 // loop-closing branch cost
}

// TotalCycles returns the cycle count of one full period.
func (b CycleBudget) TotalCycles() uint32 {
	return 2*b.StoreCycles + b.HighBurn + b.LowBurn + b.HighPad + b.LowPad + b.Branch
}

// PeriodPicos returns the wall-clock period of the loop on p in picoseconds.
// Multiplies before dividing so the result is exact for both clock speeds.
func (b CycleBudget) PeriodPicos(p Platform) uint64 {
	return uint64(b.TotalCycles()) * 1_000_000_000_000 / uint64(p.ClockHz())
}

// PeriodNanos returns the period rounded to the nearest nanosecond.
func (b CycleBudget) PeriodNanos(p Platform) uint32 {
	return uint32((b.PeriodPicos(p) + 500) / 1000)
}

// ErrTargetNotWholeCycles reports a wall-clock target that does not land on
// a whole number of CPU cycles for the platform.
var ErrTargetNotWholeCycles = errors.New("target period is not a whole number of cycles")

// ErrTargetTooShort reports a target the loop already overshoots.
var ErrTargetTooShort = errors.New("target period shorter than the loop's base cycle count")

// ExtraCyclesFor returns how many pad cycles must be added to the budget on
// p so that its period equals targetPicos exactly. This is the closed-form
// calibration behind the cross-platform variants: the pad is computed from
// the timing table, never measured.
func (b CycleBudget) ExtraCyclesFor(p Platform, targetPicos uint64) (uint32, error) {
	hz := uint64(p.ClockHz())
	want := targetPicos * hz / 1_000_000_000_000
	if want*1_000_000_000_000/hz != targetPicos {
		return 0, ErrTargetNotWholeCycles
	}
	have := uint64(b.TotalCycles())
	if want < have {
		return 0, ErrTargetTooShort
	}
	return uint32(want - have), nil
}

// storeCycles is the cost of one pin write in the raw loops: a movs to
// build the bank value and a str to the SIO output register.
const storeCycles = 2

// RawLoopBudget returns the cycle accounting of the given raw loop as built
// for platform p. This is the data twin of the loop bodies in
// targets/*/asm.go; keep both in step.
func RawLoopBudget(loop RawLoop, p Platform) CycleBudget {
	b := CycleBudget{StoreCycles: storeCycles, Branch: p.BranchCycles()}
	switch loop {
	case RawShared200:
		// Same nop-burn source on both boards: ten and nine no-ops. The
		// Pico 2 pairs them up and takes the branch one cycle earlier,
		// so its period halves. That divergence is the point of the test.
		w := p.NopIssueWidth()
		b.HighBurn = (10 + w - 1) / w
		b.LowBurn = (9 + w - 1) / w
	case RawCalibrated200:
		b.HighBurn, b.LowBurn = 10, 9
		if p == Pico2 {
			// One cycle back from the cheaper branch, five more for the
			// faster clock: six extra cycles, split across the phases.
			b.HighPad, b.LowPad = 3, 3
		}
	case Raw80:
		b.HighBurn, b.LowBurn = 2, 2
		if p == Pico2 {
			b.HighPad, b.LowPad = 1, 2
		}
	case RawMin:
		// Nothing but the stores and the branch.
	}
	return b
}
