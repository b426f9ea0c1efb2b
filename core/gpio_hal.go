package core

// GPIOPin identifies a hardware GPIO pin number
type GPIOPin uint32

// Level is the logic level of a digital pin
type Level bool

const (
	Low  Level = false
	High Level = true
)

func (l Level) String() string {
	if l {
		return "high"
	}
	return "low"
}

// GPIODriver is the abstract GPIO interface that core code uses.
// Platform-specific implementations handle actual hardware control.
type GPIODriver interface {
	// ConfigurePushPull puts a pin in push-pull output mode and drives
	// the given initial level. The hardware accepts any requested mode.
	ConfigurePushPull(pin GPIOPin, initial Level)

	// SetPin drives the pin to the given level
	SetPin(pin GPIOPin, level Level) error

	// GetPin reads back the current pin level
	GetPin(pin GPIOPin) Level
}

// Global singleton used by core code.
var gpioDriver GPIODriver

// SetGPIODriver is called by target-specific code to register its driver.
func SetGPIODriver(d GPIODriver) {
	gpioDriver = d
}

// MustGPIO returns the configured driver or panics if missing.
func MustGPIO() GPIODriver {
	if gpioDriver == nil {
		panic("GPIO driver not configured")
	}
	return gpioDriver
}
