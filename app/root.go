// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var configPath string // Path to the configuration directory

var rootCmd = &cobra.Command{
	Use:   "settings-seeder",
	Short: "settings-seeder inserts default user settings into the user_setting table",
	Long: `settings-seeder reads user setting definitions from a YAML file and
inserts them into the user_setting table. Existing rows are never overwritten.`,
	Args:          cobra.OnlyValidArgs,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./etc/", "Path to the directory holding main.toml")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
