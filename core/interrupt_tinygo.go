//go:build tinygo

package core

import (
	"device/arm"
	"runtime/interrupt"
)

// disableInterrupts disables interrupts and returns the previous state
func disableInterrupts() interrupt.State {
	return interrupt.Disable()
}

// restoreInterrupts restores the interrupt state
func restoreInterrupts(state interrupt.State) {
	interrupt.Restore(state)
}

// waitForEvent sleeps the core until the next event. Nothing is enabled to
// wake it, so the loop around it stays parked in low power.
func waitForEvent() {
	arm.Asm("wfi")
}

// haltForever masks interrupts and locks up
func haltForever() {
	arm.DisableInterrupts()
	for {
		arm.Asm("wfi")
	}
}
