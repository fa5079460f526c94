package core

import (
	"sync"
	"time"
)

// recordingDelay implements DelayDriver and records every call. Now
// advances by overhead after each SleepUntil so deadline tests can model
// loop jitter.
type recordingDelay struct {
	sleeps      int
	spinWaits   int
	spinCycles  int
	yields      int
	sleepUntils int

	lastSleep time.Duration
	lastSpin  time.Duration
	lastN     uint32
	seq       []string

	now      uint64
	overhead func(call int) uint64
	wakes    []uint64

	realSpinSleep time.Duration // actual sleep per SpinWait, for loop tests
}

func (r *recordingDelay) Sleep(d time.Duration) {
	r.sleeps++
	r.lastSleep = d
	r.seq = append(r.seq, "sleep")
}

func (r *recordingDelay) SpinWait(d time.Duration) {
	r.spinWaits++
	r.lastSpin = d
	r.seq = append(r.seq, "spin")
	if r.realSpinSleep > 0 {
		time.Sleep(r.realSpinSleep)
	}
}

func (r *recordingDelay) SpinCycles(n uint32) {
	r.spinCycles++
	r.lastN = n
	r.seq = append(r.seq, "spincycles")
}

func (r *recordingDelay) Yield() {
	r.yields++
	r.seq = append(r.seq, "yield")
}

func (r *recordingDelay) Now() uint64 {
	return r.now
}

func (r *recordingDelay) SleepUntil(t uint64) {
	r.sleepUntils++
	r.wakes = append(r.wakes, t)
	if t > r.now {
		r.now = t
	}
	if r.overhead != nil {
		r.now += r.overhead(r.sleepUntils)
	}
}

// mockPin implements PinDriver and reports each edge on a channel.
type mockPin struct {
	mu    sync.Mutex
	highs int
	lows  int
	seq   []bool
	drive Drive
	edges chan bool
}

func newMockPin(buffer int) *mockPin {
	return &mockPin{edges: make(chan bool, buffer)}
}

func (p *mockPin) High() {
	p.mu.Lock()
	p.highs++
	p.seq = append(p.seq, true)
	p.mu.Unlock()
	select {
	case p.edges <- true:
	default:
	}
}

func (p *mockPin) Low() {
	p.mu.Lock()
	p.lows++
	p.seq = append(p.seq, false)
	p.mu.Unlock()
	select {
	case p.edges <- false:
	default:
	}
}

func (p *mockPin) SetDriveStrength(d Drive) {
	p.mu.Lock()
	p.drive = d
	p.mu.Unlock()
}

func (p *mockPin) driveStrength() Drive {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.drive
}

func (p *mockPin) sequence() []bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]bool(nil), p.seq...)
}

// stubRaw implements RawDriver; Run reports the loop and parks forever.
type stubRaw struct {
	got chan RawLoop
}

func newStubRaw() *stubRaw {
	return &stubRaw{got: make(chan RawLoop, 1)}
}

func (s *stubRaw) Run(loop RawLoop) {
	s.got <- loop
	select {}
}

// stubWave implements WaveDriver; RunWave reports the period and parks.
type stubWave struct {
	got chan time.Duration
}

func newStubWave() *stubWave {
	return &stubWave{got: make(chan time.Duration, 1)}
}

func (s *stubWave) RunWave(period time.Duration) {
	s.got <- period
	select {}
}
