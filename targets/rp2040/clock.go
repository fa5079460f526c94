//go:build rp2040

package main

import (
	"runtime/volatile"
	"unsafe"
)

// RP2040 TIMER peripheral: a 64-bit microsecond counter. The RAWH/RAWL
// registers read it without latching.
const (
	timerBase     = 0x40054000
	timerTIMERAWH = timerBase + 0x08
	timerTIMERAWL = timerBase + 0x0C
)

var (
	timerRAWH = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWH)))
	timerRAWL = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWL)))
)

// hardwareUptime reads the full 64-bit microsecond counter. High word is
// read twice to detect a rollover between the two halves.
func hardwareUptime() uint64 {
	for {
		high1 := timerRAWH.Get()
		low := timerRAWL.Get()
		high2 := timerRAWH.Get()
		if high1 == high2 {
			return (uint64(high1) << 32) | uint64(low)
		}
	}
}
