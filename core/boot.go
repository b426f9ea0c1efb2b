package core

// BootState tracks the progress of the boot sequence
type BootState uint8

const (
	StateUninitialized BootState = iota
	StatePeripheralsOwned
	StatePinConfigured
	StateActive
	StateIdle
	StateHalted
)

func (s BootState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StatePeripheralsOwned:
		return "peripherals-owned"
	case StatePinConfigured:
		return "pin-configured"
	case StateActive:
		return "active"
	case StateIdle:
		return "idle"
	case StateHalted:
		return "halted"
	default:
		return "unknown"
	}
}

// Sequencer drives the board from reset to a lit indicator and then parks.
// The hooks default to the platform implementations; tests replace them so
// that Run can return.
type Sequencer struct {
	// LED is the port-0 index of the indicator pin
	LED GPIOPin

	// InitDiagnostics brings up the diagnostic channel. Must not fail.
	InitDiagnostics func()

	// Wait is one iteration of the idle loop
	Wait func()

	// Halt stops the device after a fatal diagnostic has been written
	Halt func()

	state BootState
	led   *OutputPin
}

// State returns the current boot state
func (s *Sequencer) State() BootState {
	return s.state
}

// LEDPin returns the configured indicator pin, or nil before configuration
func (s *Sequencer) LEDPin() *OutputPin {
	return s.led
}

func (s *Sequencer) enter(state BootState) {
	s.state = state
	DebugPrintln("boot: " + state.String())
}

// Boot takes the peripherals, configures the indicator pin low and drives
// it high. It stops at the first failing step.
func (s *Sequencer) Boot() (*OutputPin, error) {
	p, err := TakePeripherals()
	if err != nil {
		return nil, err
	}
	s.enter(StatePeripheralsOwned)

	gpio := SplitP0(p.P0)

	// Initial level is explicit; the pin must not float during setup.
	s.led = gpio.Pin(s.LED).IntoPushPullOutput(Low)
	s.enter(StatePinConfigured)

	if err := s.led.SetHigh(); err != nil {
		DebugPrintln("boot: set high: " + err.Error())
		return nil, ErrOutputActivationFailed
	}
	s.enter(StateActive)

	return s.led, nil
}

// Run executes the whole boot sequence. With the default hooks it never
// returns: it either idles forever with the indicator lit or halts after
// writing a diagnostic.
func (s *Sequencer) Run() {
	if s.InitDiagnostics != nil {
		s.InitDiagnostics()
	}

	if _, err := s.Boot(); err != nil {
		s.fail(err)
		return
	}

	s.enter(StateIdle)
	wait := s.Wait
	if wait == nil {
		wait = waitForEvent
	}
	for {
		wait()
	}
}

func (s *Sequencer) fail(err error) {
	Diagnostic(err.Error())
	s.enter(StateHalted)

	halt := s.Halt
	if halt == nil {
		halt = haltForever
	}
	halt()
}
