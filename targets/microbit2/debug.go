//go:build microbit_v2

package main

import (
	"machine"
)

// InitDiagnostics brings up the diagnostic channel. The transport is chosen
// at build time with TinyGo's -serial flag: rtt for a debug probe, uart for
// the interface chip's USB serial port. Neither path can fail here.
func InitDiagnostics() {
	machine.InitSerial()
}

// DebugPrintln writes a line to the diagnostic channel
func DebugPrintln(s string) {
	machine.Serial.Write([]byte(s))
	machine.Serial.Write([]byte("\r\n"))
}
