package cmd

import (
	"fmt"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"

	"github.com/hallward/usher/internal/booking"
	"github.com/hallward/usher/internal/config"
	"github.com/hallward/usher/internal/ledger"
	"github.com/hallward/usher/internal/seatmap"
	"github.com/hallward/usher/internal/store"
)

var statusRowsPattern string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current seat map",
	Long: `Render the reservation grid: one line per row, free seats as dots and
reserved seats as blocks.

The --rows flag filters which rows are shown using a glob over the row
letter, e.g. --rows 'A' or --rows '[A-D]'.`,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().StringVar(&statusRowsPattern, "rows", "", "glob filter over row letters")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	logger := newLogger(cfg).WithOperation("status")
	defer func() { _ = logger.Close() }()

	st := store.New(cfg.State.Path, cfg.Layout(), logger)
	mgr, err := booking.New(st, logger)
	if err != nil {
		return fmt.Errorf("failed to load reservation state: %w", err)
	}

	rows, err := filterRows(mgr.Rows(), statusRowsPattern)
	if err != nil {
		return err
	}

	cmd.Print(seatmap.Render(rows, seatmap.Options{
		Title:      fmt.Sprintf("Seat map (%s)", st.Path()),
		ShowLegend: true,
	}))
	return nil
}

// filterRows keeps the rows whose letter matches the glob pattern.
// An empty pattern keeps everything.
func filterRows(rows []ledger.RowState, pattern string) ([]ledger.RowState, error) {
	if pattern == "" {
		return rows, nil
	}

	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad --rows pattern %q: %w", pattern, err)
	}

	var out []ledger.RowState
	for _, r := range rows {
		if g.Match(string(r.Row)) {
			out = append(out, r)
		}
	}
	return out, nil
}
