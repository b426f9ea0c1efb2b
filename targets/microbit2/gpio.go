//go:build microbit_v2

package main

import (
	"machine"

	"redled/core"
)

// NRFGPIODriver implements the GPIODriver interface for the nRF52833
type NRFGPIODriver struct{}

// NewNRFGPIODriver creates a new nRF52833 GPIO driver
func NewNRFGPIODriver() *NRFGPIODriver {
	return &NRFGPIODriver{}
}

// ConfigurePushPull configures a port-0 pin as a standard-drive output.
// The level is latched before the direction changes so the pin never
// glitches to the opposite state.
func (d *NRFGPIODriver) ConfigurePushPull(pin core.GPIOPin, initial core.Level) {
	machinePin := d.pinNumberToMachinePin(pin)
	machinePin.Set(bool(initial))
	machinePin.Configure(machine.PinConfig{Mode: machine.PinOutput})
}

// SetPin drives the pin to the given level. GPIO writes on the nRF52 cannot
// fail once the pin is an output.
func (d *NRFGPIODriver) SetPin(pin core.GPIOPin, level core.Level) error {
	d.pinNumberToMachinePin(pin).Set(bool(level))
	return nil
}

// GetPin reads the current pin level
func (d *NRFGPIODriver) GetPin(pin core.GPIOPin) core.Level {
	return core.Level(d.pinNumberToMachinePin(pin).Get())
}

// pinNumberToMachinePin converts a port-0 index to a machine.Pin.
// Port 0 starts at P0_00, so the index maps directly.
func (d *NRFGPIODriver) pinNumberToMachinePin(pin core.GPIOPin) machine.Pin {
	return machine.P0_00 + machine.Pin(pin)
}
