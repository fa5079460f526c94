package core

import "time"

// WaveDriver emits a hardware-timed square wave on the test pin, with the
// CPU out of the loop entirely. Only boards with a suitable peripheral
// register one; selecting the wave category without it is a configuration
// error surfaced by Select.
type WaveDriver interface {
	// RunWave starts a square wave with the given period and never returns.
	RunWave(period time.Duration)
}

var waveDriver WaveDriver

// SetWaveDriver is called by target-specific code to register its wave
// generator. Passing nil deregisters it.
func SetWaveDriver(d WaveDriver) {
	waveDriver = d
}

// WaveAvailable reports whether this build can emit hardware-timed waves.
func WaveAvailable() bool {
	return waveDriver != nil
}

func mustWave() WaveDriver {
	if waveDriver == nil {
		panic("wave driver not configured")
	}
	return waveDriver
}
