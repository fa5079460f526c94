//go:build rp2350

package main

import (
	"runtime/volatile"
	"unsafe"
)

// RP2350 TIMER0 peripheral: same 64-bit microsecond counter as the RP2040
// but at a different base address, with the raw (unlatched) reads at
// 0x24/0x28 instead of 0x08/0x0C.
const (
	timerBase     = 0x400B0000
	timerTimeRawH = timerBase + 0x24
	timerTimeRawL = timerBase + 0x28
)

var (
	timerRawH = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTimeRawH)))
	timerRawL = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTimeRawL)))
)

// hardwareUptime reads the full 64-bit microsecond counter. High word is
// read twice to detect a rollover between the two halves.
func hardwareUptime() uint64 {
	for {
		high1 := timerRawH.Get()
		low := timerRawL.Get()
		high2 := timerRawH.Get()
		if high1 == high2 {
			return (uint64(high1) << 32) | uint64(low)
		}
	}
}
