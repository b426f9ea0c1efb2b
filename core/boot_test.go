package core_test

import (
	"errors"
	"runtime"
	"testing"

	"redled/core"
	"redled/sim"
)

const ledPin = core.GPIOPin(3)

type bench struct {
	gpio    *sim.GPIO
	channel *sim.Channel
	halts   int
	seq     *core.Sequencer
}

func newBench(t *testing.T) *bench {
	t.Helper()
	core.ResetHardware()

	b := &bench{gpio: sim.NewGPIO(), channel: &sim.Channel{}}
	core.SetGPIODriver(b.gpio)
	core.SetDebugWriter(b.channel.Writer())

	b.seq = &core.Sequencer{
		LED:             ledPin,
		InitDiagnostics: b.channel.Init,
		Halt:            func() { b.halts++ },
		Wait:            func() { t.Fatalf("idle loop entered unexpectedly") },
	}
	return b
}

func TestBootActivatesLED(t *testing.T) {
	b := newBench(t)

	led, err := b.seq.Boot()
	if err != nil {
		t.Fatalf("Boot failed: %v", err)
	}
	if led.Number() != ledPin {
		t.Errorf("expected LED on pin %d, got %d", ledPin, led.Number())
	}
	if !led.IsSetHigh() {
		t.Errorf("LED should be high after Boot")
	}
	if b.seq.State() != core.StateActive {
		t.Errorf("expected state %v, got %v", core.StateActive, b.seq.State())
	}

	expected := []sim.Call{
		{Op: "configure", Pin: ledPin, Level: core.Low},
		{Op: "set", Pin: ledPin, Level: core.High},
	}
	calls := b.gpio.Calls()
	if len(calls) != len(expected) {
		t.Fatalf("expected calls %v, got %v", expected, calls)
	}
	for i := range expected {
		if calls[i] != expected[i] {
			t.Errorf("call %d: expected %v, got %v", i, expected[i], calls[i])
		}
	}
}

func TestRunIdlesWithLEDHigh(t *testing.T) {
	b := newBench(t)

	const iterations = 100
	waits := 0
	lowReads := 0
	done := make(chan struct{})

	b.seq.Wait = func() {
		if b.seq.State() != core.StateIdle {
			t.Errorf("Wait called in state %v", b.seq.State())
		}
		if !b.seq.LEDPin().IsSetHigh() {
			lowReads++
		}
		waits++
		if waits == iterations {
			close(done)
			runtime.Goexit()
		}
	}

	go b.seq.Run()
	<-done

	if lowReads != 0 {
		t.Errorf("LED read low %d times while idling", lowReads)
	}
	if b.channel.InitCount() != 1 {
		t.Errorf("diagnostic channel initialized %d times", b.channel.InitCount())
	}
	if n := len(b.channel.Lines()); n != 0 {
		t.Errorf("successful boot should write no diagnostics, got %q", b.channel.Lines())
	}
	if b.gpio.SetCount() != 1 {
		t.Errorf("expected exactly one pin write, got %d", b.gpio.SetCount())
	}
	for _, c := range b.gpio.Calls() {
		if c.Op == "set" && c.Level == core.Low {
			t.Errorf("LED was driven low: %v", c)
		}
	}
	if b.halts != 0 {
		t.Errorf("Halt called on a successful boot")
	}
}

func TestRunHaltsWhenPeripheralsOwned(t *testing.T) {
	b := newBench(t)

	if _, err := core.TakePeripherals(); err != nil {
		t.Fatalf("TakePeripherals failed: %v", err)
	}

	b.seq.Run()

	lines := b.channel.Lines()
	if len(lines) != 1 || lines[0] != "Couldn't initialize peripherals." {
		t.Errorf("expected peripherals diagnostic, got %q", lines)
	}
	if b.halts != 1 {
		t.Errorf("expected one halt, got %d", b.halts)
	}
	if b.seq.State() != core.StateHalted {
		t.Errorf("expected state %v, got %v", core.StateHalted, b.seq.State())
	}
	if b.gpio.ConfigureCount() != 0 || b.gpio.SetCount() != 0 {
		t.Errorf("no pin calls expected after halt, got %v", b.gpio.Calls())
	}
}

func TestRunHaltsWhenActivationFails(t *testing.T) {
	b := newBench(t)
	b.gpio.RejectWrites(ledPin)

	b.seq.Run()

	lines := b.channel.Lines()
	if len(lines) != 1 || lines[0] != "Could not set the LED high" {
		t.Errorf("expected activation diagnostic, got %q", lines)
	}
	if b.halts != 1 {
		t.Errorf("expected one halt, got %d", b.halts)
	}
	if b.seq.State() != core.StateHalted {
		t.Errorf("expected state %v, got %v", core.StateHalted, b.seq.State())
	}
	if b.gpio.ConfigureCount() != 1 {
		t.Errorf("expected one configure call, got %d", b.gpio.ConfigureCount())
	}
	if b.gpio.SetCount() != 1 {
		t.Errorf("expected a single activation attempt, got %d", b.gpio.SetCount())
	}
	if b.gpio.Level(ledPin) != core.Low {
		t.Errorf("LED should stay low after a failed activation")
	}
}

func TestBootActivationError(t *testing.T) {
	b := newBench(t)
	b.gpio.RejectWrites(ledPin)

	led, err := b.seq.Boot()
	if led != nil {
		t.Errorf("Boot should not return a pin on failure")
	}
	var fatal *core.FatalError
	if !errors.As(err, &fatal) {
		t.Fatalf("expected *FatalError, got %T", err)
	}
	if fatal != core.ErrOutputActivationFailed {
		t.Errorf("expected ErrOutputActivationFailed, got %v", fatal)
	}
	if fatal.State != core.StatePinConfigured {
		t.Errorf("expected failure in %v, got %v", core.StatePinConfigured, fatal.State)
	}
}

func TestBootTrace(t *testing.T) {
	b := newBench(t)
	core.SetDebugEnabled(true)

	if _, err := b.seq.Boot(); err != nil {
		t.Fatalf("Boot failed: %v", err)
	}

	expected := []string{"boot: peripherals-owned", "boot: pin-configured", "boot: active"}
	lines := b.channel.Lines()
	if len(lines) != len(expected) {
		t.Fatalf("expected trace %q, got %q", expected, lines)
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("trace line %d: expected %q, got %q", i, expected[i], lines[i])
		}
	}
}

func TestBootStateString(t *testing.T) {
	testCases := []struct {
		state    core.BootState
		expected string
	}{
		{core.StateUninitialized, "uninitialized"},
		{core.StatePeripheralsOwned, "peripherals-owned"},
		{core.StatePinConfigured, "pin-configured"},
		{core.StateActive, "active"},
		{core.StateIdle, "idle"},
		{core.StateHalted, "halted"},
		{core.BootState(99), "unknown"},
	}

	for _, tc := range testCases {
		if got := tc.state.String(); got != tc.expected {
			t.Errorf("BootState(%d).String() = %q, expected %q", tc.state, got, tc.expected)
		}
	}
}
