package core

import "time"

// Strategy produces one pause between pin edges. A strategy value is built
// once at selection time and reused unchanged on every loop iteration.
type Strategy interface {
	// Pause blocks or suspends for the strategy's configured duration.
	Pause()
	// Blocking reports whether Pause monopolizes the core.
	Blocking() bool
}

// CooperativeWait suspends the task for D. Exactly one scheduler suspension
// per Pause; other pending work may run before the task resumes, so the
// produced period carries scheduler overhead.
type CooperativeWait struct {
	D time.Duration
}

func (s CooperativeWait) Pause() {
	MustDelay().Sleep(s.D)
}

func (s CooperativeWait) Blocking() bool { return false }

// BlockingSpin busy-waits for D. Never calls into the scheduler.
type BlockingSpin struct {
	D time.Duration
}

func (s BlockingSpin) Pause() {
	MustDelay().SpinWait(s.D)
}

func (s BlockingSpin) Blocking() bool { return true }

// BlockingSpinThenYield busy-waits for D, then yields to the scheduler
// exactly once before returning.
type BlockingSpinThenYield struct {
	D time.Duration
}

func (s BlockingSpinThenYield) Pause() {
	d := MustDelay()
	d.SpinWait(s.D)
	d.Yield()
}

func (s BlockingSpinThenYield) Blocking() bool { return true }

// CycleSpin busy-waits for at least N CPU cycles. For small N the pause is
// dominated by the spin loop's own overhead; that floor is part of what the
// test measures.
type CycleSpin struct {
	N uint32
}

func (s CycleSpin) Pause() {
	MustDelay().SpinCycles(s.N)
}

func (s CycleSpin) Blocking() bool { return true }

// NoDelay toggles as fast as the pin driver allows.
type NoDelay struct{}

func (NoDelay) Pause()         {}
func (NoDelay) Blocking() bool { return true }

// DeadlineWait suspends until an absolute deadline that advances by Half on
// every Pause. Because the next deadline is computed from the previous one
// rather than from "now", loop and scheduler overhead never accumulate into
// the period. The running deadline is the only mutable state in any
// strategy, so DeadlineWait is used through a pointer.
type DeadlineWait struct {
	Half time.Duration
	next uint64 // microsecond ticks, 0 until the first Pause
}

func (s *DeadlineWait) Pause() {
	d := MustDelay()
	if s.next == 0 {
		s.next = d.Now()
	}
	s.next += uint64(s.Half / time.Microsecond)
	d.SleepUntil(s.next)
}

func (s *DeadlineWait) Blocking() bool { return false }
