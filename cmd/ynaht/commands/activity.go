package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ynaht/ynaht/internal/engine"
	"github.com/ynaht/ynaht/internal/metrics"
	"github.com/ynaht/ynaht/internal/models"
	"github.com/ynaht/ynaht/internal/timeutil"
	"github.com/ynaht/ynaht/internal/validation"
)

// NewActivityCmd creates the activity management command.
func NewActivityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "activity",
		Aliases: []string{"act"},
		Short:   "Manage the active day's activities",
	}
	cmd.AddCommand(newActivityAddCmd())
	cmd.AddCommand(newActivityListCmd())
	cmd.AddCommand(newActivityDoneCmd())
	cmd.AddCommand(newActivityDeleteCmd())
	cmd.AddCommand(newActivityMoveCmd())
	cmd.AddCommand(newActivityPostponeCmd())
	return cmd
}

func newActivityAddCmd() *cobra.Command {
	var minutes int
	var category, notes string
	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add an activity to the active day",
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
			name := validation.SanitizeText(args[0])
			if name == "" {
				return fmt.Errorf("activity name is required")
			}
			if category != "" {
				if _, ok := models.CategoryByID(category); !ok {
					return fmt.Errorf("unknown category %q (one of: %s)", category, categoryIDs())
				}
			} else {
				category = models.FallbackCategoryID
			}

			// Fill in the planned time from history when not given
			if minutes <= 0 {
				if suggestion := metrics.SuggestionFor(state, name); suggestion != nil {
					minutes = suggestion.AverageMinutes
					fmt.Printf("Using your average for %q: %s (%d time(s) before)\n",
						suggestion.Name, timeutil.FormatMinutes(minutes), suggestion.Occurrences)
				} else {
					return fmt.Errorf("--minutes is required for a new activity")
				}
			}

			app.Dispatch(engine.AddActivity{
				Name:           name,
				PlannedMinutes: minutes,
				CategoryID:     category,
				Notes:          validation.SanitizeText(notes),
			})
			fmt.Printf("Added %q (%s, %s).\n", name, category, timeutil.FormatMinutes(minutes))
			return nil
		},
	}
	cmd.Flags().IntVarP(&minutes, "minutes", "m", 0, "Planned minutes (defaults to your historical average)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category ID")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	return cmd
}

func newActivityListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the active day's activities",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.Close()

			session, err := requireSession(app.Store.State())
			if err != nil {
				return err
			}
			if len(session.Activities) == 0 {
				fmt.Println("No activities yet.")
				return nil
			}
			for _, a := range session.Activities {
				mark := " "
				if a.Completed {
					mark = "x"
				}
				line := fmt.Sprintf("[%s] %d. %s [%s] %s", mark, a.Order+1, a.Name, a.CategoryID,
					timeutil.FormatMinutes(a.PlannedMinutes))
				if a.ActualMinutes != nil {
					line += fmt.Sprintf(" (actual %s, %s)",
						timeutil.FormatMinutes(*a.ActualMinutes),
						timeutil.VarianceText(a.PlannedMinutes, *a.ActualMinutes))
				}
				if a.Timer != nil {
					line += fmt.Sprintf(" [timer %s]", a.Timer.Phase)
				}
				fmt.Println(line)
				fmt.Printf("      id: %s\n", a.ID)
			}
			return nil
		},
	}
}

func newActivityDoneCmd() *cobra.Command {
	var actual int
	cmd := &cobra.Command{
		Use:     "done ACTIVITY",
		Aliases: []string{"complete"},
		Short:   "Mark an activity complete",
		Long:    "Mark an activity complete, recording actual minutes. Without --actual the planned minutes are taken as actual.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.Close()

			session, err := requireSession(app.Store.State())
			if err != nil {
				return err
			}
			activity, err := findActivity(session, args[0])
			if err != nil {
				return err
			}
			action := engine.CompleteActivity{ActivityID: activity.ID}
			if cmd.Flags().Changed("actual") {
				action.ActualMinutes = &actual
			}
			app.Dispatch(action)
			fmt.Printf("Completed %q.\n", activity.Name)
			return nil
		},
	}
	cmd.Flags().IntVar(&actual, "actual", 0, "Actual minutes spent")
	return cmd
}

func newActivityDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete ACTIVITY",
		Aliases: []string{"rm"},
		Short:   "Delete an activity from the active day",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.Close()

			session, err := requireSession(app.Store.State())
			if err != nil {
				return err
			}
			activity, err := findActivity(session, args[0])
			if err != nil {
				return err
			}
			app.Dispatch(engine.DeleteActivity{ActivityID: activity.ID})
			fmt.Printf("Deleted %q.\n", activity.Name)
			return nil
		},
	}
}

func newActivityMoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move ACTIVITY up|down",
		Short: "Move an activity up or down in the day's order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.Close()

			session, err := requireSession(app.Store.State())
			if err != nil {
				return err
			}
			activity, err := findActivity(session, args[0])
			if err != nil {
				return err
			}
			var direction engine.MoveDirection
			switch strings.ToLower(args[1]) {
			case "up":
				direction = engine.MoveUp
			case "down":
				direction = engine.MoveDown
			default:
				return fmt.Errorf("direction must be 'up' or 'down'")
			}
			app.Dispatch(engine.MoveActivity{ActivityID: activity.ID, Direction: direction})
			fmt.Printf("Moved %q %s.\n", activity.Name, direction)
			return nil
		},
	}
	return cmd
}

func newActivityPostponeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "postpone ACTIVITY",
		Short: "Move an activity to this week's backlog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.Close()

			session, err := requireSession(app.Store.State())
			if err != nil {
				return err
			}
			activity, err := findActivity(session, args[0])
			if err != nil {
				return err
			}
			app.Dispatch(engine.MoveToBacklog{ActivityID: activity.ID})
			fmt.Printf("Moved %q to the backlog.\n", activity.Name)
			return nil
		},
	}
}

func categoryIDs() string {
	ids := make([]string, len(models.DefaultCategories))
	for i, c := range models.DefaultCategories {
		ids[i] = c.ID
	}
	return strings.Join(ids, ", ")
}
