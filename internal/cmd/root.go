// Package cmd wires the usher command tree.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hallward/usher/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "usher",
	Short: "Theater seat reservation ledger",
	Long: `Usher books and cancels contiguous blocks of seats in a fixed
theater layout, persisting reservation state to a flat file guarded by an
OS advisory lock. Each invocation loads the state, performs one operation
and exits, printing SUCCESS or FAIL.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command. Every failed invocation, malformed
// arguments included, collapses to a FAIL line on stdout.
func Execute() error {
	return execute(rootCmd)
}

func execute(root *cobra.Command) error {
	if err := root.Execute(); err != nil {
		root.PrintErrln("usher:", err)
		fmt.Fprintln(root.OutOrStdout(), "FAIL")
		return err
	}
	return nil
}

func init() {
	// BOOK, Book and book are the same action.
	cobra.EnableCaseInsensitive = true
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/usher/config.yaml)")
	rootCmd.PersistentFlags().String("state", "", "reservation state file (overrides state.path)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("state.path", rootCmd.PersistentFlags().Lookup("state"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/usher")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("USHER")
	// Replace dots with underscores for nested keys in env vars
	// e.g., USHER_STATE_PATH for state.path
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
