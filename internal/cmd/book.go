package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hallward/usher/internal/booking"
	"github.com/hallward/usher/internal/config"
	"github.com/hallward/usher/internal/ledger"
	"github.com/hallward/usher/internal/logging"
	"github.com/hallward/usher/internal/store"
)

var bookCmd = &cobra.Command{
	Use:   "book <seat> <count>",
	Short: "Reserve a contiguous block of seats",
	Long: `Reserve <count> contiguous seats starting at <seat>, where <seat> is a
row letter immediately followed by a zero-based seat index, e.g. A0.

Prints SUCCESS when the whole block was free and is now reserved, FAIL
otherwise. A failed booking changes nothing.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReservation(cmd, "book", args)
	},
}

var cancelCmd = &cobra.Command{
	Use:   "cancel <seat> <count>",
	Short: "Free a contiguous block of reserved seats",
	Long: `Free <count> contiguous seats starting at <seat>. The whole block must
currently be reserved.

Prints SUCCESS when the block was released, FAIL otherwise. A failed
cancellation changes nothing.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReservation(cmd, "cancel", args)
	},
}

func init() {
	rootCmd.AddCommand(bookCmd)
	rootCmd.AddCommand(cancelCmd)
}

// runReservation performs one book or cancel operation end to end: parse
// arguments, load state, mutate, persist, print the verdict. Every failure
// collapses to a FAIL line; the reasons only reach the debug log.
func runReservation(cmd *cobra.Command, op string, args []string) error {
	cfg := config.Get()
	logger := newLogger(cfg).WithOperation(op)
	defer func() { _ = logger.Close() }()

	seat, err := ledger.ParseSeat(args[0])
	if err != nil {
		logger.Debug("rejected seat label", "label", args[0])
		cmd.Println("FAIL")
		return nil
	}
	count, err := strconv.Atoi(args[1])
	if err != nil {
		logger.Debug("rejected seat count", "count", args[1])
		cmd.Println("FAIL")
		return nil
	}

	st := store.New(cfg.State.Path, cfg.Layout(), logger)
	mgr, err := booking.New(st, logger)
	if err != nil {
		logger.Error("failed to load reservation state", "error", err)
		cmd.Println("FAIL")
		return nil
	}

	if op == "book" {
		err = mgr.Book(seat, count)
	} else {
		err = mgr.Cancel(seat, count)
	}
	if err != nil {
		cmd.Println("FAIL")
		return nil
	}

	cmd.Println("SUCCESS")
	return nil
}

// newLogger builds the configured logger, degrading to a no-op logger when
// the log directory cannot be opened. Logging never blocks an operation.
func newLogger(cfg *config.Config) *logging.Logger {
	logger, err := logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level)
	if err != nil {
		return logging.NopLogger()
	}
	return logger
}
