package core

import (
	"testing"
	"time"
)

func TestCooperativeWaitSuspendsExactlyOnce(t *testing.T) {
	rec := &recordingDelay{}
	SetDelayDriver(rec)

	s := CooperativeWait{D: 100 * time.Microsecond}
	s.Pause()

	if rec.sleeps != 1 {
		t.Errorf("sleeps = %d, want 1", rec.sleeps)
	}
	if rec.lastSleep != 100*time.Microsecond {
		t.Errorf("slept %v, want 100us", rec.lastSleep)
	}
	if rec.spinWaits+rec.yields+rec.sleepUntils+rec.spinCycles != 0 {
		t.Errorf("cooperative wait touched non-sleep calls: %v", rec.seq)
	}
	if s.Blocking() {
		t.Error("CooperativeWait reports Blocking")
	}
}

func TestBlockingSpinNeverYields(t *testing.T) {
	rec := &recordingDelay{}
	SetDelayDriver(rec)

	s := BlockingSpin{D: 10 * time.Microsecond}
	for i := 0; i < 3; i++ {
		s.Pause()
	}

	if rec.spinWaits != 3 {
		t.Errorf("spinWaits = %d, want 3", rec.spinWaits)
	}
	if rec.sleeps+rec.yields+rec.sleepUntils != 0 {
		t.Errorf("blocking spin called into the scheduler: %v", rec.seq)
	}
	if !s.Blocking() {
		t.Error("BlockingSpin reports non-blocking")
	}
}

func TestBlockingSpinThenYieldOrder(t *testing.T) {
	rec := &recordingDelay{}
	SetDelayDriver(rec)

	BlockingSpinThenYield{D: time.Microsecond}.Pause()

	if len(rec.seq) != 2 || rec.seq[0] != "spin" || rec.seq[1] != "yield" {
		t.Errorf("call sequence = %v, want spin then yield", rec.seq)
	}
}

func TestCycleSpin(t *testing.T) {
	rec := &recordingDelay{}
	SetDelayDriver(rec)

	CycleSpin{N: 2}.Pause()

	if rec.spinCycles != 1 || rec.lastN != 2 {
		t.Errorf("spinCycles = %d (n=%d), want one call with n=2", rec.spinCycles, rec.lastN)
	}
}

func TestNoDelayTouchesNothing(t *testing.T) {
	rec := &recordingDelay{}
	SetDelayDriver(rec)

	NoDelay{}.Pause()

	if len(rec.seq) != 0 {
		t.Errorf("NoDelay made driver calls: %v", rec.seq)
	}
}

// Deadlines must be accumulated from the previous deadline, never
// re-derived from "now", so per-iteration overhead cannot drift the period.
func TestDeadlineWaitDriftFree(t *testing.T) {
	rec := &recordingDelay{
		now: 5000,
		// Model uneven loop overhead after every wake.
		overhead: func(call int) uint64 { return uint64(call % 3) },
	}
	SetDelayDriver(rec)

	s := &DeadlineWait{Half: 10 * time.Microsecond}
	const iterations = 1000
	for i := 0; i < iterations; i++ {
		s.Pause()
	}

	if len(rec.wakes) != iterations {
		t.Fatalf("wakes = %d, want %d", len(rec.wakes), iterations)
	}
	for i, wake := range rec.wakes {
		want := uint64(5000 + (i+1)*10)
		if wake != want {
			t.Fatalf("wake %d at tick %d, want %d (drift %d)", i, wake, want, int64(wake)-int64(want))
		}
	}
}

func TestDeadlineWaitSuspendsEachPause(t *testing.T) {
	rec := &recordingDelay{now: 100}
	SetDelayDriver(rec)

	s := &DeadlineWait{Half: 10 * time.Microsecond}
	s.Pause()
	s.Pause()

	if rec.sleepUntils != 2 {
		t.Errorf("sleepUntils = %d, want 2", rec.sleepUntils)
	}
	if rec.spinWaits+rec.sleeps != 0 {
		t.Errorf("deadline wait used relative waits: %v", rec.seq)
	}
	if s.Blocking() {
		t.Error("DeadlineWait reports Blocking")
	}
}
