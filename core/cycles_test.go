package core

import "testing"

func TestRawLoopTotals(t *testing.T) {
	cases := []struct {
		loop   RawLoop
		p      Platform
		cycles uint32
	}{
		{RawShared200, Pico, 25},
		{RawShared200, Pico2, 15},
		{RawCalibrated200, Pico, 25},
		{RawCalibrated200, Pico2, 30},
		{Raw80, Pico, 10},
		{Raw80, Pico2, 12},
		{RawMin, Pico, 6},
		{RawMin, Pico2, 5},
	}

	for _, c := range cases {
		if got := RawLoopBudget(c.loop, c.p).TotalCycles(); got != c.cycles {
			t.Errorf("loop %d on %s: TotalCycles() = %d, want %d",
				c.loop, c.p.Name(), got, c.cycles)
		}
	}
}

func TestRawLoopPeriods(t *testing.T) {
	cases := []struct {
		loop  RawLoop
		p     Platform
		nanos uint32
	}{
		{RawShared200, Pico, 200},
		{RawShared200, Pico2, 100}, // intentionally divergent
		{RawCalibrated200, Pico, 200},
		{RawCalibrated200, Pico2, 200},
		{Raw80, Pico, 80},
		{Raw80, Pico2, 80},
		{RawMin, Pico, 48},
		{RawMin, Pico2, 33},
	}

	for _, c := range cases {
		if got := RawLoopBudget(c.loop, c.p).PeriodNanos(c.p); got != c.nanos {
			t.Errorf("loop %d on %s: PeriodNanos() = %d, want %d",
				c.loop, c.p.Name(), got, c.nanos)
		}
	}
}

// The calibrated loops must hit the same wall-clock period on both boards
// to the picosecond, since the pad cycles are chosen in closed form.
func TestCrossPlatformConvergence(t *testing.T) {
	for _, loop := range []RawLoop{RawCalibrated200, Raw80} {
		a := RawLoopBudget(loop, Pico).PeriodPicos(Pico)
		b := RawLoopBudget(loop, Pico2).PeriodPicos(Pico2)
		if a != b {
			t.Errorf("loop %d: %dps on Pico vs %dps on Pico 2", loop, a, b)
		}
	}
}

// The pads baked into the budgets must match what the closed-form
// calibration computes from the timing table.
func TestPadsMatchClosedForm(t *testing.T) {
	cases := []struct {
		loop        RawLoop
		targetPicos uint64
	}{
		{RawCalibrated200, 200_000},
		{Raw80, 80_000},
	}

	for _, c := range cases {
		for _, p := range []Platform{Pico, Pico2} {
			full := RawLoopBudget(c.loop, p)
			base := full
			base.HighPad, base.LowPad = 0, 0

			extra, err := base.ExtraCyclesFor(p, c.targetPicos)
			if err != nil {
				t.Fatalf("loop %d on %s: ExtraCyclesFor: %v", c.loop, p.Name(), err)
			}
			if got := full.HighPad + full.LowPad; got != extra {
				t.Errorf("loop %d on %s: budget pads %d, closed form wants %d",
					c.loop, p.Name(), got, extra)
			}
		}
	}
}

func TestExtraCyclesForErrors(t *testing.T) {
	b := RawLoopBudget(RawShared200, Pico)

	// 101ns is 12.625 cycles at 125MHz.
	if _, err := b.ExtraCyclesFor(Pico, 101_000); err != ErrTargetNotWholeCycles {
		t.Errorf("fractional target: err = %v, want ErrTargetNotWholeCycles", err)
	}

	// 24ns is 3 whole cycles, fewer than the loop already spends.
	if _, err := b.ExtraCyclesFor(Pico, 24_000); err != ErrTargetTooShort {
		t.Errorf("short target: err = %v, want ErrTargetTooShort", err)
	}
}

// Budgets are pure data: the same inputs must always produce the same
// cycle count, with no dependence on runtime state.
func TestBudgetDeterministic(t *testing.T) {
	for i := 0; i < 100; i++ {
		if got := RawLoopBudget(RawCalibrated200, Pico2).TotalCycles(); got != 30 {
			t.Fatalf("iteration %d: TotalCycles() = %d, want 30", i, got)
		}
	}
}
