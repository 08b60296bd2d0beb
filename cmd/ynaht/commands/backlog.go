package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/ynaht/ynaht/internal/engine"
	"github.com/ynaht/ynaht/internal/metrics"
	"github.com/ynaht/ynaht/internal/timeutil"
)

// NewBacklogCmd creates the backlog command.
func NewBacklogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backlog",
		Short: "Manage postponed activities",
	}
	cmd.AddCommand(newBacklogListCmd())
	cmd.AddCommand(newBacklogRestoreCmd())
	cmd.AddCommand(newBacklogRemoveCmd())
	return cmd
}

func newBacklogListCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List backlog items for the current week",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.Close()

			state := app.Store.State()
			items := state.Backlog
			if !all {
				items = metrics.ThisWeeksBacklog(state, time.Now())
			}
			if len(items) == 0 {
				fmt.Println("Backlog is empty.")
				return nil
			}
			for _, item := range items {
				fmt.Printf("- %s [%s] %s, postponed %dx (week of %s)\n",
					item.ActivityName, item.CategoryID,
					timeutil.FormatMinutes(item.PlannedMinutes),
					item.PostponedCount, item.WeekOf)
				fmt.Printf("  id: %s\n", item.ID)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Include items from other weeks")
	return cmd
}

func newBacklogRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore ITEM_ID",
		Short: "Add a backlog item back into the active day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.Close()

			state := app.Store.State()
			if _, err := requireSession(state); err != nil {
				return err
			}
			for _, item := range state.Backlog {
				if item.ID == args[0] {
					app.Dispatch(engine.AddFromBacklog{BacklogItemID: item.ID})
					fmt.Printf("Restored %q into today's plan.\n", item.ActivityName)
					return nil
				}
			}
			return fmt.Errorf("no backlog item with ID %q", args[0])
		},
	}
}

func newBacklogRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove ITEM_ID",
		Aliases: []string{"rm"},
		Short:   "Discard a backlog item",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.Close()

			state := app.Store.State()
			for _, item := range state.Backlog {
				if item.ID == args[0] {
					app.Dispatch(engine.RemoveFromBacklog{BacklogItemID: item.ID})
					fmt.Printf("Removed %q from the backlog.\n", item.ActivityName)
					return nil
				}
			}
			return fmt.Errorf("no backlog item with ID %q", args[0])
		},
	}
}
