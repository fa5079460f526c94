//go:build rp2350

package main

import "picobench/core"

// Test selection for this build. Edit and reflash to run a different test.
// Single-GPIO tests 1-19 are implemented; 20-25 are reserved and refuse to
// start. The PIO wave category is not wired on this board.
var selected = core.Selection{
	Type: core.TestSingleGPIO,
	Num:  15,
}

// statusDisplay also shows the selection on an SSD1306 over I2C0 when true.
const statusDisplay = false
