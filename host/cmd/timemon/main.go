// timemon streams the firmware's diagnostic lines from the board's serial
// console, timestamping each one. It is a convenience for bench setups; the
// measurement itself happens on the oscilloscope.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"picobench/host/serial"
)

var (
	device     = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud       = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	timestamps = flag.Bool("timestamps", true, "Prefix each line with the host receive time")
)

func main() {
	flag.Parse()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud

	port, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	fmt.Printf("Listening on %s (reset the board to catch the startup block)\n", *device)

	scanner := bufio.NewScanner(port)
	for scanner.Scan() {
		if *timestamps {
			fmt.Printf("[%s] %s\n", time.Now().Format("15:04:05.000"), scanner.Text())
		} else {
			fmt.Println(scanner.Text())
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: read failed: %v\n", err)
		os.Exit(1)
	}
}
