package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ynaht/ynaht/cmd/ynaht/commands"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "ynaht",
		Short: "You Need A Hour Tracker",
		Long:  "Plan wake-to-sleep days, track activities and goals, and sync across devices",
	}

	rootCmd.AddCommand(commands.NewDayCmd())
	rootCmd.AddCommand(commands.NewActivityCmd())
	rootCmd.AddCommand(commands.NewTimerCmd())
	rootCmd.AddCommand(commands.NewGoalCmd())
	rootCmd.AddCommand(commands.NewBacklogCmd())
	rootCmd.AddCommand(commands.NewStatusCmd())
	rootCmd.AddCommand(commands.NewExportCmd())
	rootCmd.AddCommand(commands.NewSyncCmd())
	rootCmd.AddCommand(commands.NewSettingsCmd())
	rootCmd.AddCommand(commands.NewResetCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
