//go:build tinygo

// Package status renders the active test on a small SSD1306 OLED, for rigs
// where the board sits under a probe and the serial console is not
// attached. Purely informational; it runs once before the toggle loop
// starts and never touches the test pin.
package status

import (
	"image/color"
	"machine"
	"strconv"
	"time"

	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	width   = 128
	height  = 64
	address = 0x3C
)

// Show initializes the display on I2C0 and writes the board name, test
// number and description. Errors are swallowed: a missing display must not
// keep a timing test from running.
func Show(num int, board, desc string) {
	err := machine.I2C0.Configure(machine.I2CConfig{Frequency: 400 * machine.KHz})
	if err != nil {
		return
	}
	// The display needs a moment after a cold boot before it accepts
	// configuration.
	time.Sleep(time.Second)

	display := ssd1306.NewI2C(machine.I2C0)
	display.Configure(ssd1306.Config{
		Width:    width,
		Height:   height,
		Address:  address,
		VccState: ssd1306.SWITCHCAPVCC,
	})
	display.ClearDisplay()

	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	tinyfont.WriteLine(&display, &proggy.TinySZ8pt7b, 0, 12, board, white)
	tinyfont.WriteLine(&display, &proggy.TinySZ8pt7b, 0, 26, "test #"+strconv.Itoa(num), white)
	for i, line := range wrap(desc, 25) {
		tinyfont.WriteLine(&display, &proggy.TinySZ8pt7b, 0, int16(40+i*12), line, white)
	}
	display.Display()
}

// wrap breaks s into lines of at most n characters on rune boundaries.
func wrap(s string, n int) []string {
	var lines []string
	runes := []rune(s)
	for len(runes) > n {
		lines = append(lines, string(runes[:n]))
		runes = runes[n:]
	}
	if len(runes) > 0 {
		lines = append(lines, string(runes))
	}
	return lines
}
