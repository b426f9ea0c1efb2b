// Package monitor follows the firmware's diagnostic channel from the host
// and recognizes the fatal boot messages.
package monitor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"redled/core"
)

// Report summarizes what was observed on the diagnostic channel
type Report struct {
	Lines []string         // every non-empty line, in order
	Fatal *core.FatalError // first fatal diagnostic, nil if none
}

// Halted reports whether the board announced a fatal halt
func (r *Report) Halted() bool {
	return r.Fatal != nil
}

// Monitor reads diagnostic lines from a board
type Monitor struct {
	// Out receives a copy of every line, nil to stay quiet
	Out io.Writer

	// Follow keeps reading past EOF. Serial ports with a read timeout
	// report EOF whenever no data arrived in time.
	Follow bool
}

// Watch reads lines until the first fatal diagnostic, EOF (unless
// following) or context cancellation. The report is valid even when an
// error is returned.
func (m *Monitor) Watch(ctx context.Context, r io.Reader) (*Report, error) {
	report := &Report{}
	reader := bufio.NewReader(r)
	var partial strings.Builder

	for {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		chunk, err := reader.ReadString('\n')
		partial.WriteString(chunk)

		complete := strings.HasSuffix(chunk, "\n")
		if complete || (err != nil && !m.Follow) {
			if m.handleLine(report, partial.String()) {
				return report, nil
			}
			partial.Reset()
		}

		if err != nil {
			if !errors.Is(err, io.EOF) {
				return report, fmt.Errorf("reading diagnostic channel: %w", err)
			}
			if !m.Follow {
				return report, nil
			}
		}
	}
}

// handleLine records one line and returns true when it is fatal
func (m *Monitor) handleLine(report *Report, raw string) bool {
	line := strings.TrimSpace(raw)
	if line == "" {
		return false
	}

	report.Lines = append(report.Lines, line)
	if m.Out != nil {
		fmt.Fprintln(m.Out, line)
	}

	if fatal, ok := core.ParseDiagnostic(line); ok {
		report.Fatal = fatal
		return true
	}
	return false
}
