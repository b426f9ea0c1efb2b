package core

// P0PinCount is the number of pins on GPIO port 0
const P0PinCount = 32

// Pin is an unconfigured pin handle carved from port 0
type Pin struct {
	pin        GPIOPin
	configured bool
}

// OutputPin is a pin in push-pull output mode
type OutputPin struct {
	pin GPIOPin
}

// P0Parts holds the individual pins of port 0
type P0Parts struct {
	pins [P0PinCount]Pin
}

// SplitP0 splits the owned port-0 block into its pins. Splitting the same
// block twice panics: each physical pin has a single handle.
func SplitP0(port *PortP0) *P0Parts {
	if port.split {
		panic("port 0 already split")
	}
	port.split = true

	parts := &P0Parts{}
	for i := range parts.pins {
		parts.pins[i].pin = GPIOPin(i)
	}
	return parts
}

// Pin returns the handle for P0_n
func (p *P0Parts) Pin(n GPIOPin) *Pin {
	if n >= P0PinCount {
		panic("port 0 pin out of range")
	}
	return &p.pins[n]
}

// Number returns the port-0 pin index
func (p *Pin) Number() GPIOPin {
	return p.pin
}

// IntoPushPullOutput configures the pin as a push-pull output driving the
// given initial level.
func (p *Pin) IntoPushPullOutput(initial Level) *OutputPin {
	if p.configured {
		panic("pin already configured")
	}
	p.configured = true

	MustGPIO().ConfigurePushPull(p.pin, initial)
	return &OutputPin{pin: p.pin}
}

// Number returns the port-0 pin index
func (o *OutputPin) Number() GPIOPin {
	return o.pin
}

// SetHigh drives the pin high
func (o *OutputPin) SetHigh() error {
	return MustGPIO().SetPin(o.pin, High)
}

// SetLow drives the pin low
func (o *OutputPin) SetLow() error {
	return MustGPIO().SetPin(o.pin, Low)
}

// IsSetHigh reads back the output level
func (o *OutputPin) IsSetHigh() bool {
	return MustGPIO().GetPin(o.pin) == High
}
