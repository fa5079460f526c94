//go:build tinygo

package core

import "runtime/interrupt"

// disableInterrupts masks interrupts for the raw toggle loops. The state is
// returned for symmetry but the loops never exit, so it is never restored.
func disableInterrupts() interrupt.State {
	return interrupt.Disable()
}
