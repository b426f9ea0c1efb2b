package core

// PortP0 is the port-0 GPIO register block. It can only be reached through
// an owned Peripherals value.
type PortP0 struct {
	split bool
}

// Peripherals is the set of on-chip peripherals. Only one value ever
// exists per process.
type Peripherals struct {
	P0 *PortP0
}

var peripheralsTaken bool

// TakePeripherals grants ownership of the peripheral set. It succeeds
// exactly once; every later call returns ErrPeripheralsAlreadyOwned.
func TakePeripherals() (*Peripherals, error) {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	if peripheralsTaken {
		return nil, ErrPeripheralsAlreadyOwned
	}
	peripheralsTaken = true

	return &Peripherals{P0: &PortP0{}}, nil
}

// PeripheralsTaken reports whether the peripheral set has been claimed.
func PeripheralsTaken() bool {
	return peripheralsTaken
}
