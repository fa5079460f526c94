//go:build rp2040

package main

import (
	"errors"
	"machine"
	"time"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"

	"picobench/core"
)

// PIO square-wave program built with AssemblerV0:
//
//	set pins, 1 [1]
//	set pins, 0 [1]
//
// With wrap around both instructions the state machine spends four PIO
// cycles per period; the clock divider scales that to the requested period.
func buildWaveProgram() []uint16 {
	asm := rp2pio.AssemblerV0{SidesetBits: 0}
	return []uint16{
		asm.Set(rp2pio.SetDestPins, 1).Delay(1).Encode(),
		asm.Set(rp2pio.SetDestPins, 0).Delay(1).Encode(),
	}
}

const wavePIOOrigin = 0

// pioWave implements core.WaveDriver on PIO0 state machine 0. Once the
// state machine is enabled the wave is hardware-timed and the CPU parks.
type pioWave struct{}

var _ core.WaveDriver = pioWave{}

func (pioWave) RunWave(period time.Duration) {
	pioHW := rp2pio.PIO0
	sm := pioHW.StateMachine(0)
	sm.TryClaim()

	program := buildWaveProgram()
	offset, err := pioHW.AddProgram(program, wavePIOOrigin)
	if err != nil {
		core.Diag("pio program load failed: " + err.Error())
		haltForever()
	}

	pin := machine.Pin(core.OutputPin)
	pin.Configure(machine.PinConfig{Mode: pioHW.PinMode()})

	cfg := rp2pio.DefaultStateMachineConfig()
	cfg.SetSetPins(pin, 1)
	cfg.SetWrap(offset+uint8(len(program))-1, offset)

	whole, frac, err := waveClkDiv(period)
	if err != nil {
		core.Diag("pio wave: " + err.Error())
		haltForever()
	}
	cfg.SetClkDivIntFrac(whole, frac)

	sm.Init(offset, cfg)
	sm.SetPindirsConsecutive(pin, 1, true)
	sm.SetEnabled(true)

	haltForever()
}

// waveClkDiv converts a wave period into the state machine clock divider,
// given the program's four PIO cycles per period.
func waveClkDiv(period time.Duration) (uint16, uint8, error) {
	sysCycles := uint64(period.Nanoseconds()) * uint64(machine.CPUFrequency()) / 1_000_000_000
	whole := sysCycles / 4
	frac := (sysCycles % 4) * 256 / 4
	if whole == 0 || whole > 0xffff {
		return 0, 0, errors.New("wave period out of divider range")
	}
	return uint16(whole), uint8(frac), nil
}
