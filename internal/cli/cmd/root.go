package cmd

import (
	"github.com/spf13/cobra"
)

// RegisterCommands adds all available commands to the root command
func RegisterCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(NewRunCommand())
	rootCmd.AddCommand(NewBuildsCommand())
	rootCmd.AddCommand(NewLogsCommand())
	rootCmd.AddCommand(NewHistoryCommand())
	rootCmd.AddCommand(NewStatsCommand())
	rootCmd.AddCommand(NewResetCommand())
}
