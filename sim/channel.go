package sim

import (
	"golang.org/x/exp/slices"

	"redled/core"
)

// Channel records what the firmware writes to its diagnostic channel
type Channel struct {
	lines []string
	inits int
}

// Init counts diagnostic channel bring-ups. Use it as
// Sequencer.InitDiagnostics.
func (c *Channel) Init() {
	c.inits++
}

// Writer returns a core.DebugWriter appending to the channel
func (c *Channel) Writer() core.DebugWriter {
	return func(s string) {
		c.lines = append(c.lines, s)
	}
}

// Lines returns a copy of every line written so far
func (c *Channel) Lines() []string {
	return slices.Clone(c.lines)
}

// InitCount is the number of Init calls
func (c *Channel) InitCount() int {
	return c.inits
}
