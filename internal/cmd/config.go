package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hallward/usher/internal/config"
	"github.com/hallward/usher/internal/logging"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify usher configuration",
	Long: `View or modify usher configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  usher config set state.path /var/lib/usher/reservations.txt
  usher config set logging.level DEBUG

Valid keys:
  theater.first_row  - Lowest row letter (default A)
  theater.last_row   - Highest row letter (default T)
  theater.row_size   - Seats per row (default 8)
  state.path         - Reservation state file
  logging.level      - DEBUG, INFO, WARN or ERROR
  logging.dir        - Directory for debug.log; empty logs to stderr`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/usher/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	cmd.Println("Current configuration:")
	cmd.Println()

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		cmd.Printf("Config file: %s\n", viper.ConfigFileUsed())
	} else {
		cmd.Printf("Config file: (none - using defaults)\n")
	}
	cmd.Println()

	cmd.Println("theater:")
	cmd.Printf("  first_row: %s\n", cfg.Theater.FirstRow)
	cmd.Printf("  last_row: %s\n", cfg.Theater.LastRow)
	cmd.Printf("  row_size: %d\n", cfg.Theater.RowSize)

	cmd.Println("state:")
	cmd.Printf("  path: %s\n", cfg.State.Path)

	cmd.Println("logging:")
	cmd.Printf("  level: %s\n", cfg.Logging.Level)
	cmd.Printf("  dir: %s\n", cfg.Logging.Dir)

	return nil
}

// settableKeys are the config keys the set subcommand accepts.
var settableKeys = map[string]bool{
	"theater.first_row": true,
	"theater.last_row":  true,
	"theater.row_size":  true,
	"state.path":        true,
	"logging.level":     true,
	"logging.dir":       true,
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	if !settableKeys[key] {
		return fmt.Errorf("unknown config key: %s", key)
	}
	if key == "logging.level" {
		up := strings.ToUpper(value)
		// ParseLevel maps anything unrecognized to INFO.
		if logging.ParseLevel(up) != up {
			return fmt.Errorf("invalid logging.level %q, valid: %v", value, logging.ValidLevels())
		}
		value = up
	}

	viper.Set(key, value)

	if err := os.MkdirAll(config.ConfigDir(), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := viper.WriteConfigAs(config.ConfigFile()); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	cmd.Printf("Set %s = %s in %s\n", key, value, config.ConfigFile())
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := config.WriteDefault()
	if err != nil {
		return err
	}
	cmd.Printf("Created config file: %s\n", path)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	cmd.Println(config.ConfigFile())
	return nil
}
