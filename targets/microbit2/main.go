//go:build microbit_v2

// Firmware for the BBC micro:bit v2 that lights an indicator on edge
// connector pin P1 and parks.
//
//	tinygo flash -target=microbit-v2 -serial=rtt ./targets/microbit2
package main

import (
	"redled/core"
)

// ledPin is P0_03, routed to edge connector pin P1 (physical pin 1 on a
// Kitronik edge breakout).
const ledPin core.GPIOPin = 3

func main() {
	core.SetDebugWriter(DebugPrintln)
	core.SetGPIODriver(NewNRFGPIODriver())

	seq := &core.Sequencer{
		LED:             ledPin,
		InitDiagnostics: InitDiagnostics,
	}
	seq.Run()
}
