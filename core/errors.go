package core

// FatalError is an unrecoverable boot failure. Message is the exact text
// sent over the diagnostic channel before the device halts.
type FatalError struct {
	State   BootState // state the sequencer was in when the step failed
	Message string
}

func (e *FatalError) Error() string {
	return e.Message
}

// Each fallible boot step has its own error and its own message.
var (
	ErrPeripheralsAlreadyOwned = &FatalError{
		State:   StateUninitialized,
		Message: "Couldn't initialize peripherals.",
	}
	ErrOutputActivationFailed = &FatalError{
		State:   StatePinConfigured,
		Message: "Could not set the LED high",
	}
)

var fatalErrors = []*FatalError{
	ErrPeripheralsAlreadyOwned,
	ErrOutputActivationFailed,
}

// ParseDiagnostic maps a line read from the diagnostic channel back to the
// fatal condition that produced it. Surrounding whitespace and line
// endings are ignored.
func ParseDiagnostic(line string) (*FatalError, bool) {
	line = trimSpace(line)
	for _, e := range fatalErrors {
		if line == e.Message {
			return e, true
		}
	}
	return nil, false
}

// trimSpace strips ASCII whitespace without pulling in the strings package
func trimSpace(s string) string {
	start, end := 0, len(s)
	for start < end && isSpace(s[start]) {
		start++
	}
	for end > start && isSpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
