//go:build rp2040

package main

import (
	"device/arm"

	"picobench/core"
)

// RP2040 SIO GPIO output register, written directly by the loops below. A
// single str drives the whole bank at once; GPIO 2 is the only configured
// output so the loops own the bank outright.
const (
	sioBase    = 0xd0000000
	sioGPIOOut = sioBase + 0x010
)

// rawLoops implements core.RawDriver with the Pico cycle counts. Every
// budget here has a data twin in core.RawLoopBudget; keep them in step.
//
// Each loop is one asm block: the address setup, the labeled loop, the pin
// writes and the burns are fixed instructions the compiler cannot reorder,
// hoist or pad. The bank value (#4, GPIO 2) is rebuilt with a movs before
// every str, so each pin write costs exactly two cycles no matter what the
// register allocator would otherwise keep live. The blocks take no operands
// and never return, so the scratch registers they overwrite are never
// observed. Interrupts are already masked when Run is called.
type rawLoops struct{}

func (rawLoops) Run(loop core.RawLoop) {
	switch loop {
	case core.RawShared200:
		toggleShared200()
	case core.RawCalibrated200:
		toggleCalibrated200()
	case core.Raw80:
		toggle80()
	default:
		toggleMin()
	}
}

// toggleShared200 is the loop both boards build from identical source:
// high write (2) + ten nops + low write (2) + nine nops + branch (2) is
// 25 cycles, exactly 200ns at 125MHz. The Pico 2 pairs the nops and takes
// the branch one cycle earlier, finishing in 15 cycles: 100ns.
func toggleShared200() {
	arm.Asm(`
	movs r0, #0xd0
	lsls r0, r0, #24
	adds r0, #0x10
	1:
	movs r1, #4
	str r1, [r0]
	nop
	nop
	nop
	nop
	nop
	nop
	nop
	nop
	nop
	nop
	movs r1, #0
	str r1, [r0]
	nop
	nop
	nop
	nop
	nop
	nop
	nop
	nop
	nop
	b 1b
	`)
}

// toggleCalibrated200 hits 200ns on this board with the same counts as the
// shared loop; the Pico 2 build adds three pad cycles per phase to land on
// the same period despite its faster clock and cheaper branch.
func toggleCalibrated200() {
	arm.Asm(`
	movs r0, #0xd0
	lsls r0, r0, #24
	adds r0, #0x10
	1:
	movs r1, #4
	str r1, [r0]
	nop
	nop
	nop
	nop
	nop
	nop
	nop
	nop
	nop
	nop
	movs r1, #0
	str r1, [r0]
	nop
	nop
	nop
	nop
	nop
	nop
	nop
	nop
	nop
	b 1b
	`)
}

// toggle80: 2+2+2+2+branch(2) = 10 cycles = 80ns at 125MHz.
func toggle80() {
	arm.Asm(`
	movs r0, #0xd0
	lsls r0, r0, #24
	adds r0, #0x10
	1:
	movs r1, #4
	str r1, [r0]
	nop
	nop
	movs r1, #0
	str r1, [r0]
	nop
	nop
	b 1b
	`)
}

// toggleMin: the two writes and the branch only. 6 cycles = 48ns.
func toggleMin() {
	arm.Asm(`
	movs r0, #0xd0
	lsls r0, r0, #24
	adds r0, #0x10
	1:
	movs r1, #4
	str r1, [r0]
	movs r1, #0
	str r1, [r0]
	b 1b
	`)
}
