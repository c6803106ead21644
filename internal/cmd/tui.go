package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hallward/usher/internal/booking"
	"github.com/hallward/usher/internal/config"
	"github.com/hallward/usher/internal/store"
	"github.com/hallward/usher/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive seat picker",
	Long: `Open a full-screen picker over the seat grid. Move the cursor with the
arrow keys, press space to start a contiguous selection, then b to book
or c to cancel it. Changes persist immediately.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	logger := newLogger(cfg).WithOperation("tui")
	defer func() { _ = logger.Close() }()

	st := store.New(cfg.State.Path, cfg.Layout(), logger)
	mgr, err := booking.New(st, logger)
	if err != nil {
		return fmt.Errorf("failed to load reservation state: %w", err)
	}

	return tui.New(mgr).Run()
}
