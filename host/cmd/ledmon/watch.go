package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"redled/host/monitor"
	"redled/host/serial"
)

// errHalted signals a fatal diagnostic; its message is already printed
var errHalted = errors.New("board halted")

var (
	device  string
	baud    int
	timeout time.Duration
	quiet   bool

	rootCmd = &cobra.Command{
		Use:           "ledmon",
		Short:         "Observe the indicator firmware's diagnostic channel",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Print diagnostic lines until the board halts",
		Long: "Open the micro:bit interface chip serial port and print every diagnostic line. " +
			"Exits with status 1 when the board reports a fatal boot failure.",
		RunE: runWatch,
	}
)

func init() {
	defaults := serial.DefaultConfig("/dev/ttyACM0")

	watchCmd.Flags().StringVarP(&device, "device", "d", defaults.Device, "Serial device path")
	watchCmd.Flags().IntVarP(&baud, "baud", "b", defaults.Baud, "Baud rate")
	watchCmd.Flags().DurationVarP(&timeout, "timeout", "t", 0, "Stop watching after this long (0 = until interrupted)")
	watchCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only report the outcome")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := serial.DefaultConfig(device)
	cfg.Baud = baud

	port, err := serial.Open(cfg)
	if err != nil {
		return err
	}
	defer port.Close()

	if err := port.Flush(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", device, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s at %d baud...\n", device, baud)
	return watch(ctx, port, cmd.OutOrStdout(), quiet)
}

// watch follows r and turns the outcome into the command's exit status
func watch(ctx context.Context, r io.Reader, out io.Writer, quiet bool) error {
	m := &monitor.Monitor{Follow: true}
	if !quiet {
		m.Out = out
	}

	report, err := m.Watch(ctx, r)
	if report.Halted() {
		fmt.Fprintf(out, "HALTED in state %s: %s\n", report.Fatal.State, report.Fatal.Message)
		return errHalted
	}
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	fmt.Fprintf(out, "No fatal diagnostics (%d lines)\n", len(report.Lines))
	return nil
}
