// Package sim provides simulated hardware for exercising the boot sequence
// without a board.
package sim

import (
	"errors"
	"strconv"

	"golang.org/x/exp/slices"

	"redled/core"
)

// ErrWriteRejected is returned by SetPin on a pin marked with RejectWrites
var ErrWriteRejected = errors.New("sim: pin rejected write")

// Call is one recorded driver invocation
type Call struct {
	Op    string // "configure" or "set"
	Pin   core.GPIOPin
	Level core.Level
}

func (c Call) String() string {
	return c.Op + "(" + strconv.Itoa(int(c.Pin)) + ", " + c.Level.String() + ")"
}

// GPIO is a simulated GPIO bank implementing core.GPIODriver
type GPIO struct {
	levels     map[core.GPIOPin]core.Level
	outputs    map[core.GPIOPin]bool
	rejected   []core.GPIOPin
	calls      []Call
	configures int
	sets       int
	reads      int
}

// NewGPIO returns a simulated bank with every pin low and unconfigured
func NewGPIO() *GPIO {
	return &GPIO{
		levels:  make(map[core.GPIOPin]core.Level),
		outputs: make(map[core.GPIOPin]bool),
	}
}

// RejectWrites makes every later SetPin on pin fail
func (g *GPIO) RejectWrites(pin core.GPIOPin) {
	if !slices.Contains(g.rejected, pin) {
		g.rejected = append(g.rejected, pin)
	}
}

func (g *GPIO) ConfigurePushPull(pin core.GPIOPin, initial core.Level) {
	g.configures++
	g.calls = append(g.calls, Call{Op: "configure", Pin: pin, Level: initial})
	g.outputs[pin] = true
	g.levels[pin] = initial
}

func (g *GPIO) SetPin(pin core.GPIOPin, level core.Level) error {
	g.sets++
	g.calls = append(g.calls, Call{Op: "set", Pin: pin, Level: level})
	if slices.Contains(g.rejected, pin) {
		return ErrWriteRejected
	}
	g.levels[pin] = level
	return nil
}

func (g *GPIO) GetPin(pin core.GPIOPin) core.Level {
	g.reads++
	return g.levels[pin]
}

// IsOutput reports whether pin was put in push-pull output mode
func (g *GPIO) IsOutput(pin core.GPIOPin) bool {
	return g.outputs[pin]
}

// Level returns the simulated level without counting a read
func (g *GPIO) Level(pin core.GPIOPin) core.Level {
	return g.levels[pin]
}

// Calls returns a snapshot of the mutating calls in order
func (g *GPIO) Calls() []Call {
	return slices.Clone(g.calls)
}

// ConfigureCount is the number of ConfigurePushPull calls
func (g *GPIO) ConfigureCount() int {
	return g.configures
}

// SetCount is the number of SetPin calls, including rejected ones
func (g *GPIO) SetCount() int {
	return g.sets
}

// ReadCount is the number of GetPin calls
func (g *GPIO) ReadCount() int {
	return g.reads
}
