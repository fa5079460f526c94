// Test variant selection.
// Maps the build-time test selection to a concrete strategy or loop with
// platform-adjusted parameters, or fails naming the identifier. Resolution
// happens once at startup; no error paths exist after the loop starts.
package core

import (
	"errors"
	"time"
)

// TestType selects a test category.
type TestType uint8

const (
	TestSingleGPIO TestType = iota // strategy-driven toggling of one pin
	TestPIOWave                    // hardware-timed wave, CPU idle
)

// Selection is the build-time test choice, consumed once at startup.
type Selection struct {
	Type TestType
	Num  int
}

// Single-GPIO test numbers occupy a fixed range; the upper part is reserved
// and selecting it fails by number rather than falling back to a default.
const (
	MinTestNum = 1
	MaxTestNum = 25
)

// Variant is one resolved test. Exactly one of Strategy, the raw loop or
// the wave period is populated.
type Variant struct {
	Type     TestType
	Num      int
	Desc     string
	Strategy Strategy
	Drive    Drive

	Raw    RawLoop
	hasRaw bool

	WavePeriod time.Duration
	hasWave    bool

	// Divergent marks tests that run identical loop source on both boards
	// and therefore produce a different nominal period on each. Startup
	// diagnostics report both periods with the active one marked.
	Divergent bool
}

// Select resolves the configured test. It never substitutes a default: any
// unknown, reserved or unsupported selection fails with the offending
// identifier in the message.
func Select(sel Selection) (Variant, error) {
	switch sel.Type {
	case TestSingleGPIO:
		return selectSingleGPIO(sel.Num)
	case TestPIOWave:
		return selectPIOWave(sel.Num)
	}
	return Variant{}, errors.New("unknown test type " + itoa(int(sel.Type)))
}

func selectSingleGPIO(num int) (Variant, error) {
	if num < MinTestNum || num > MaxTestNum {
		return Variant{}, errors.New("single-gpio test " + itoa(num) +
			" outside range " + itoa(MinTestNum) + ".." + itoa(MaxTestNum))
	}

	v := Variant{Type: TestSingleGPIO, Num: num}
	switch num {
	case 1:
		v.Desc = "~200us period using yielding time.Sleep"
		v.Strategy = CooperativeWait{D: 100 * time.Microsecond}
	case 2:
		v.Desc = "~20us period using yielding time.Sleep"
		v.Strategy = CooperativeWait{D: 10 * time.Microsecond}
	case 3:
		v.Desc = "~2us period using yielding time.Sleep"
		v.Strategy = CooperativeWait{D: time.Microsecond}
	case 4:
		v.Desc = "200us period using blocking spin wait"
		v.Strategy = BlockingSpin{D: 100 * time.Microsecond}
	case 5:
		v.Desc = "20us period using blocking spin wait"
		v.Strategy = BlockingSpin{D: 10 * time.Microsecond}
	case 6:
		v.Desc = "4us period using blocking spin wait"
		v.Strategy = BlockingSpin{D: 2 * time.Microsecond}
	case 7:
		v.Desc = "2us period using blocking spin wait"
		v.Strategy = BlockingSpin{D: time.Microsecond}
	case 8:
		v.Desc = "not near 200ns period using blocking spin wait"
		v.Strategy = BlockingSpin{D: 100 * time.Nanosecond}
	case 9:
		v.Desc = "~200us period using blocking spin wait then yield"
		v.Strategy = BlockingSpinThenYield{D: 100 * time.Microsecond}
	case 10:
		v.Desc = "~20us period using blocking spin wait then yield"
		v.Strategy = BlockingSpinThenYield{D: 10 * time.Microsecond}
	case 11:
		v.Desc = "~2us period using blocking spin wait then yield"
		v.Strategy = BlockingSpinThenYield{D: time.Microsecond}
	case 12:
		v.Desc = "\"2 cycle\" delay using blocking cycle spin"
		v.Strategy = CycleSpin{N: 2}
	case 13:
		v.Desc = "As fast as possible with no delay and machine GPIO functions"
		v.Strategy = NoDelay{}
	case 14:
		v.Desc = "Using same cycle-counted loop for both Pico and Pico 2"
		v.Raw, v.hasRaw = RawShared200, true
		v.Divergent = true
	case 15:
		v.Desc = "200ns period using per-board cycle-counted loops"
		v.Raw, v.hasRaw = RawCalibrated200, true
	case 16:
		v.Desc = "80ns period using per-board cycle-counted loops"
		v.Raw, v.hasRaw = Raw80, true
		v.Drive = Drive2mA
	case 17:
		v.Desc = "Minimum period using same cycle-counted loop for both boards"
		v.Raw, v.hasRaw = RawMin, true
		v.Drive = Drive2mA
		v.Divergent = true
	case 18:
		v.Desc = "Minimum period using same cycle-counted loop for both boards"
		v.Raw, v.hasRaw = RawMin, true
		v.Drive = Drive12mA
		v.Divergent = true
	case 19:
		v.Desc = "20us period using absolute deadline waits"
		v.Strategy = &DeadlineWait{Half: 10 * time.Microsecond}
	default:
		return Variant{}, errors.New("single-gpio test " + itoa(num) + " not implemented")
	}

	if v.Strategy != nil && !DelayAvailable() {
		return Variant{}, errors.New("delay driver not registered on " +
			ActivePlatform().Name())
	}
	if v.hasRaw && !RawAvailable() {
		return Variant{}, errors.New("cycle-counted loops not registered on " +
			ActivePlatform().Name())
	}
	return v, nil
}

func selectPIOWave(num int) (Variant, error) {
	if num != 1 {
		return Variant{}, errors.New("pio wave test " + itoa(num) + " not implemented")
	}
	if !WaveAvailable() {
		return Variant{}, errors.New("pio wave output not available on " +
			ActivePlatform().Name())
	}
	return Variant{
		Type:       TestPIOWave,
		Num:        num,
		Desc:       "200ns period square wave from a PIO state machine",
		WavePeriod: 200 * time.Nanosecond,
		hasWave:    true,
	}, nil
}
