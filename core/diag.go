package core

// DiagWriter emits one human-readable status line. Targets point it at the
// USB serial console; the default swallows output so the core never depends
// on a console existing.
type DiagWriter func(string)

var diagPrintln DiagWriter = func(string) {}

// SetDiagWriter sets the platform-specific diagnostic output function.
func SetDiagWriter(w DiagWriter) {
	diagPrintln = w
}

// Diag writes one diagnostic line.
func Diag(msg string) {
	diagPrintln(msg)
}

// AnnounceStartup prints the startup identification block: firmware name,
// board and clock speed, test number and description, and for divergent
// tests the nominal period of both boards with the active one marked.
func AnnounceStartup(v Variant) {
	p := ActivePlatform()

	Diag("picobench")
	Diag(p.Name() + " clock speed: " + utoa(p.ClockHz()) + " Hz")
	if v.Type == TestPIOWave {
		Diag("PIO Wave Timing test #" + itoa(v.Num))
	} else {
		Diag("Single GPIO Timing test #" + itoa(v.Num))
	}
	Diag(": Using GPIO " + itoa(OutputPin))
	Diag(": " + v.Desc)

	if v.Divergent && v.hasRaw {
		for _, b := range []Platform{Pico, Pico2} {
			line := ": " + utoa(RawLoopBudget(v.Raw, b).PeriodNanos(b)) +
				"ns period on the " + b.Name()
			if b == p {
				line += "  <== selected"
			}
			Diag(line)
		}
	}

	switch v.Drive {
	case Drive2mA:
		Diag(": Low drive strength (2mA)")
	case Drive12mA:
		Diag(": High drive strength (12mA)")
	}
	Diag(": Starting")
}
