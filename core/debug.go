package core

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

var (
	// debugPrintln is the global debug print function (can be set by platform code)
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	// debugEnabled controls whether trace output is active.
	// Fatal diagnostics are always written.
	debugEnabled bool = false
)

// SetDebugWriter sets the platform-specific debug output function.
// Passing nil restores the no-op writer.
func SetDebugWriter(writer DebugWriter) {
	if writer == nil {
		writer = func(s string) {}
	}
	debugPrintln = writer
}

// SetDebugEnabled enables or disables trace output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether trace output is enabled
func IsDebugEnabled() bool {
	return debugEnabled
}

// DebugPrintln writes a trace message using the platform-specific writer
func DebugPrintln(msg string) {
	if debugEnabled {
		debugPrintln(msg)
	}
}

// Diagnostic writes a message regardless of the trace setting
func Diagnostic(msg string) {
	debugPrintln(msg)
}
