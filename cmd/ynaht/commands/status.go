package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/ynaht/ynaht/internal/metrics"
	"github.com/ynaht/ynaht/internal/timeutil"
)

// NewStatusCmd creates the day status command.
func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the day's time budget, goals, and nudges",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.Close()

			state := app.Store.State()
			now := time.Now()

			session := state.CurrentSession()
			if session == nil {
				fmt.Println("No active day. Run 'ynaht day start' to begin.")
				return nil
			}

			budget := metrics.Budget(state, now)
			fmt.Printf("Day: %s - %s\n",
				session.WakeTime.Format("3:04 PM"),
				session.PlannedSleepTime.Format("3:04 PM"))
			fmt.Printf("Budget: %s available, %s allocated, %s until sleep, %s free\n",
				timeutil.FormatMinutes(budget.TotalAvailableMinutes),
				timeutil.FormatMinutes(budget.AllocatedMinutes),
				timeutil.FormatMinutes(budget.RemainingMinutes),
				timeutil.FormatMinutes(budget.FreeMinutes))

			if morning := metrics.MorningNudgeFor(state, now); morning != nil {
				fmt.Printf("\nGood morning! It's %s.\n", morning.DayOfWeek)
				for _, s := range morning.Suggestions {
					fmt.Printf("  Consider: %s [%s] %s (%s)\n",
						s.Name, s.CategoryID, timeutil.FormatMinutes(s.SuggestedMinutes), s.Reason)
				}
				if len(morning.Suggestions) == 0 {
					fmt.Println("  All goals are on pace.")
				}
			}

			if triage := metrics.Triage(state, now); triage != nil {
				fmt.Printf("\nTriage: only %s left before sleep, %s of work remains.\n",
					timeutil.FormatMinutes(triage.RemainingMinutes),
					timeutil.FormatMinutes(triage.TotalIncompleteMinutes))
				for _, a := range triage.IncompleteActivities {
					fmt.Printf("  - %s (%s)\n", a.Name, timeutil.FormatMinutes(a.PlannedMinutes))
				}
			} else if evening := metrics.EveningNudgeFor(state, now); evening != nil {
				fmt.Printf("\n%s\n", evening.Message)
				for _, s := range evening.SuggestedActivities {
					fmt.Printf("  Suggestion: %s [%s] %s (%s)\n",
						s.Name, s.CategoryID, timeutil.FormatMinutes(s.SuggestedMinutes), s.Reason)
				}
			}

			syncStatus := app.Sync.Status()
			if syncStatus.HasUnsynced {
				fmt.Println("\nSync: unsynced changes pending.")
			}
			return nil
		},
	}
}
