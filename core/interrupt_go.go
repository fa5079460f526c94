//go:build !tinygo

package core

// State stands in for the interrupt state on host Go builds.
type State uintptr

// disableInterrupts is a no-op under host Go; tests exercise the toggle
// engine without real interrupt masking.
func disableInterrupts() State {
	return 0
}
