//go:build rp2040

package main

import (
	"device/arm"
	"runtime"
	"time"

	"picobench/core"
)

// hwDelay implements core.DelayDriver on the RP2040's 1MHz timer and the
// TinyGo cooperative scheduler.
type hwDelay struct{}

var _ core.DelayDriver = hwDelay{}

func (hwDelay) Sleep(d time.Duration) {
	time.Sleep(d)
}

// SpinWait busy-polls the hardware timer without yielding. Resolution is
// one microsecond tick; sub-microsecond requests round up to a single
// tick, which is why test 8 is described as "not near 200ns".
func (hwDelay) SpinWait(d time.Duration) {
	ticks := uint64(d / time.Microsecond)
	if ticks == 0 {
		ticks = 1
	}
	start := hardwareUptime()
	for hardwareUptime()-start < ticks {
	}
}

// spinLoopCycles is the approximate cost of one SpinCycles iteration on the
// M0+: the nop plus the loop's decrement, compare and branch.
const spinLoopCycles = 4

// SpinCycles burns at least n CPU cycles, never fewer. Short requests are
// dominated by the call and loop overhead itself; that floor is what the
// "2 cycle" test measures.
func (hwDelay) SpinCycles(n uint32) {
	for i := n/spinLoopCycles + 1; i > 0; i-- {
		arm.Asm("nop")
	}
}

func (hwDelay) Yield() {
	runtime.Gosched()
}

func (hwDelay) Now() uint64 {
	return hardwareUptime()
}

func (hwDelay) SleepUntil(t uint64) {
	now := hardwareUptime()
	if t <= now {
		return
	}
	time.Sleep(time.Duration(t-now) * time.Microsecond)
}
