package core

// ResetHardware returns the package to its power-on state between tests.
func ResetHardware() {
	peripheralsTaken = false
	gpioDriver = nil
	debugPrintln = func(s string) {}
	debugEnabled = false
}
