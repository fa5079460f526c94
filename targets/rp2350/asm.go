//go:build rp2350

package main

import (
	"device/arm"

	"picobench/core"
)

// RP2350 SIO GPIO output register, same layout as the RP2040. A single str
// drives the whole bank; GPIO 2 is the only configured output so the loops
// own the bank outright.
const (
	sioBase    = 0xd0000000
	sioGPIOOut = sioBase + 0x010
)

// rawLoops implements core.RawDriver with the Pico 2 cycle counts. Every
// budget here has a data twin in core.RawLoopBudget; keep them in step.
//
// Each loop is one asm block: the address setup, the labeled loop, the pin
// writes and the burns are fixed instructions the compiler cannot reorder,
// hoist or pad. The bank value (#4, GPIO 2) is rebuilt with a movs before
// every str, so each pin write costs exactly two cycles. Burns in the
// calibrated loops are chains of dependent adds rather than nops: the M33
// dual-issues independent nops, but each add reads the previous result and
// retires in exactly one cycle. The blocks take no operands and never
// return, so the scratch registers they overwrite are never observed.
// Interrupts are already masked when Run is called.
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

// toggleShared200 is the same instruction sequence the Pico builds. There
// the loop takes 25 cycles (200ns at 125MHz); here the nops pair up and the
// branch is a cycle cheaper, so it finishes in 15 cycles: 100ns at 150MHz.
// The divergence is the point of the test.
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

// toggleCalibrated200 lands on 200ns here too: high write (2) + 13 adds,
// low write (2) + 12 adds, branch (1) = 30 cycles at 150MHz. The three pad
// cycles per phase make up for the cheaper branch and the faster clock
// relative to the Pico build.
func toggleCalibrated200() {
	arm.Asm(`
	movs r0, #0xd0
	lsls r0, r0, #24
	adds r0, #0x10
	1:
	movs r1, #4
	str r1, [r0]
	adds r2, #1
	adds r2, #1
	adds r2, #1
	adds r2, #1
	adds r2, #1
	adds r2, #1
	adds r2, #1
	adds r2, #1
	adds r2, #1
	adds r2, #1
	adds r2, #1
	adds r2, #1
	adds r2, #1
	movs r1, #0
	str r1, [r0]
	adds r2, #1
	adds r2, #1
	adds r2, #1
	adds r2, #1
	adds r2, #1
	adds r2, #1
	adds r2, #1
	adds r2, #1
	adds r2, #1
	adds r2, #1
	adds r2, #1
	adds r2, #1
	b 1b
	`)
}

// toggle80: 2+3+2+4+branch(1) = 12 cycles = 80ns at 150MHz.
func toggle80() {
	arm.Asm(`
	movs r0, #0xd0
	lsls r0, r0, #24
	adds r0, #0x10
	1:
	movs r1, #4
	str r1, [r0]
	adds r2, #1
	adds r2, #1
	adds r2, #1
	movs r1, #0
	str r1, [r0]
	adds r2, #1
	adds r2, #1
	adds r2, #1
	adds r2, #1
	b 1b
	`)
}

// toggleMin: the two writes and the branch only. 5 cycles, just over 33ns.
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
