package cmd

import (
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/hallward/usher/internal/config"
	"github.com/hallward/usher/internal/seatmap"
	"github.com/hallward/usher/internal/store"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live seat map that follows the state file",
	Long: `Render the seat map and re-render it whenever the state file changes,
until interrupted. Useful next to a box-office terminal booking seats
from other shells.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	logger := newLogger(cfg).WithOperation("watch")
	defer func() { _ = logger.Close() }()

	st := store.New(cfg.State.Path, cfg.Layout(), logger)

	// Watch the parent directory: editors and our own save path may replace
	// the file rather than write it in place.
	dir := filepath.Dir(st.Path())
	base := filepath.Base(st.Path())

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := renderOnce(cmd, st); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("state file changed", "op", event.Op.String())
			if err := renderOnce(cmd, st); err != nil {
				return err
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)
		}
	}
}

// renderOnce clears the terminal and draws the current grid.
func renderOnce(cmd *cobra.Command, st *store.Store) error {
	l, err := st.Load()
	if err != nil {
		return fmt.Errorf("failed to load reservation state: %w", err)
	}

	// ANSI home + clear keeps the grid pinned in place between redraws.
	cmd.Print("\033[H\033[2J")
	cmd.Print(seatmap.Render(l.Rows(), seatmap.Options{
		Title:      fmt.Sprintf("Seat map (%s), watching, ctrl-c to stop", st.Path()),
		ShowLegend: true,
	}))
	return nil
}
