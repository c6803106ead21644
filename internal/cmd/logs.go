package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hallward/usher/internal/config"
	"github.com/hallward/usher/internal/logging"
)

var (
	logsLevel     string
	logsOperation string
	logsContains  string
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show the debug log left by previous invocations",
	Long: `Aggregate and filter the JSON debug log. Requires logging.dir to be
configured; without it invocations log to stderr and leave no trail.`,
	RunE: runLogs,
}

func init() {
	logsCmd.Flags().StringVar(&logsLevel, "level", "", "minimum level (DEBUG, INFO, WARN, ERROR)")
	logsCmd.Flags().StringVar(&logsOperation, "operation", "", "filter to one operation (book, cancel, ...)")
	logsCmd.Flags().StringVar(&logsContains, "contains", "", "filter to messages containing a substring")
	rootCmd.AddCommand(logsCmd)
}

func runLogs(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	if cfg.Logging.Dir == "" {
		return fmt.Errorf("logging.dir is not configured, nothing to read")
	}

	entries, err := logging.AggregateLogs(cfg.Logging.Dir)
	if err != nil {
		return err
	}

	entries = logging.FilterLogs(entries, logging.LogFilter{
		Level:           logsLevel,
		Operation:       logsOperation,
		MessageContains: logsContains,
	})
	if len(entries) == 0 {
		cmd.Println("no matching log entries")
		return nil
	}

	cmd.Print(logging.FormatText(entries))
	return nil
}
