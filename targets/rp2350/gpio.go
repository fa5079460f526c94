//go:build rp2350

package main

import (
	"machine"
	"runtime/volatile"
	"unsafe"

	"picobench/core"
)

// PADS_BANK0: one pad control register per GPIO starting at base+0x04.
// Same layout as the RP2040 at a different base address; the DRIVE field
// (bits 5:4) is written directly since machine does not expose it.
const (
	padsBank0Base = 0x40038000
	padDriveShift = 4
	padDriveMask  = 0x3 << padDriveShift

	padDrive2mA  = 0
	padDrive4mA  = 1
	padDrive12mA = 3
)

// picoPin implements core.PinDriver on one RP2350 GPIO.
type picoPin struct {
	pin machine.Pin
}

func (p *picoPin) High() { p.pin.High() }
func (p *picoPin) Low()  { p.pin.Low() }

func (p *picoPin) SetDriveStrength(d core.Drive) {
	value := uint32(padDrive4mA)
	switch d {
	case core.Drive2mA:
		value = padDrive2mA
	case core.Drive12mA:
		value = padDrive12mA
	}
	reg := (*volatile.Register32)(unsafe.Pointer(uintptr(padsBank0Base + 0x04 + 4*uint32(p.pin))))
	reg.Set(reg.Get()&^uint32(padDriveMask) | value<<padDriveShift)
}
