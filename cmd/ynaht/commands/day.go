package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/ynaht/ynaht/internal/engine"
	"github.com/ynaht/ynaht/internal/export"
	"github.com/ynaht/ynaht/internal/timeutil"
)

// NewDayCmd creates the day lifecycle command.
func NewDayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day",
		Short: "Manage the current wake-to-sleep day",
	}
	cmd.AddCommand(newDayStartCmd())
	cmd.AddCommand(newDaySetupCmd())
	cmd.AddCommand(newDaySleepCmd())
	cmd.AddCommand(newDayEndCmd())
	return cmd
}

func newDayStartCmd() *cobra.Command {
	var wake, sleep string
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a new day",
		Long:  "Open a new day session. Defaults to the configured wake and sleep times; a sleep time at or before wake rolls to the next calendar day.",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.Close()

			now := time.Now()
			settings := app.Store.State().Settings
			if wake == "" {
				wake = settings.DefaultWakeTime
			}
			if sleep == "" {
				sleep = settings.DefaultSleepTime
			}
			wakeAt, err := parseClock(now, wake)
			if err != nil {
				return err
			}
			sleepAt, err := parseClock(now, sleep)
			if err != nil {
				return err
			}
			sleepAt = timeutil.NormalizeSleepTime(wakeAt, sleepAt)

			state := app.Dispatch(engine.StartNewDay{WakeTime: wakeAt, PlannedSleepTime: sleepAt})
			session := state.CurrentSession()
			fmt.Printf("Started day: %s - %s (%s available)\n",
				session.WakeTime.Format("3:04 PM"),
				session.PlannedSleepTime.Format("3:04 PM"),
				timeutil.FormatMinutes(timeutil.MinutesBetween(session.WakeTime, session.PlannedSleepTime)))
			fmt.Println("Add activities, then run 'ynaht day setup' to finish morning setup.")
			return nil
		},
	}
	cmd.Flags().StringVar(&wake, "wake", "", "Wake time (HH:mm, default from settings)")
	cmd.Flags().StringVar(&sleep, "sleep", "", "Planned sleep time (HH:mm, default from settings)")
	return cmd
}

func newDaySetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Mark morning setup complete",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.Close()

			if _, err := requireSession(app.Store.State()); err != nil {
				return err
			}
			state := app.Dispatch(engine.CompleteMorningSetup{})
			session := state.CurrentSession()
			fmt.Printf("Morning setup complete: %d activities planned.\n", len(session.Activities))
			return nil
		},
	}
}

func newDaySleepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sleep TIME",
		Short: "Update the planned sleep time for the active day",
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
			sleepAt, err := parseClock(session.WakeTime, args[0])
			if err != nil {
				return err
			}
			sleepAt = timeutil.NormalizeSleepTime(session.WakeTime, sleepAt)
			app.Dispatch(engine.UpdateSleepTime{PlannedSleepTime: sleepAt})
			fmt.Printf("Planned sleep time is now %s.\n", sleepAt.Format("3:04 PM"))
			return nil
		},
	}
	return cmd
}

func newDayEndCmd() *cobra.Command {
	var summary bool
	cmd := &cobra.Command{
		Use:   "end",
		Short: "End the active day",
		Long:  "Close the active session, stamp the actual sleep time, and mark it reconciled.",
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
			sessionID := session.ID
			state := app.Dispatch(engine.EndDay{})
			ended := state.DaySessions[sessionID]
			fmt.Println("Day ended. Sleep well.")
			if summary && ended != nil {
				fmt.Println()
				fmt.Print(export.SessionSummary(ended))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&summary, "summary", false, "Print the day summary after ending")
	return cmd
}
