//go:build rp2350

package main

import (
	"machine"
	"time"

	"picobench/core"
	"picobench/status"
)

func main() {
	// Clear any watchdog state a previous firmware left armed.
	_ = machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 0})

	// Let USB CDC enumerate so the startup block is not lost.
	time.Sleep(2 * time.Second)

	core.SetDiagWriter(func(s string) { println(s) })
	core.SetActivePlatform(core.Pico2)

	pin := machine.Pin(core.OutputPin)
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pin.Low()

	core.SetPinDriver(&picoPin{pin: pin})
	core.SetDelayDriver(hwDelay{})
	core.SetRawDriver(rawLoops{})
	// No wave driver: selecting the PIO wave category on this board fails
	// at resolution time by name.

	v, err := core.Select(selected)
	if err != nil {
		core.Diag("config error: " + err.Error())
		haltForever()
	}

	core.AnnounceStartup(v)
	if statusDisplay {
		status.Show(v.Num, core.ActivePlatform().Name(), v.Desc)
	}

	core.NewToggleLoop(v).Run()
}

// haltForever parks the core without touching the test pin.
func haltForever() {
	for {
		time.Sleep(time.Second)
	}
}
