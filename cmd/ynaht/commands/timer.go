package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/ynaht/ynaht/internal/engine"
	"github.com/ynaht/ynaht/internal/timeutil"
)

// NewTimerCmd creates the activity timer command.
func NewTimerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Time an activity",
	}
	cmd.AddCommand(newTimerStartCmd())
	cmd.AddCommand(newTimerPauseCmd())
	cmd.AddCommand(newTimerResumeCmd())
	cmd.AddCommand(newTimerStopCmd())
	return cmd
}

func timerAction(use, short string, build func(activityID string) engine.Action, done func(name string, elapsed int)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " ACTIVITY",
		Short: short,
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
			elapsed := 0
			if activity.Timer != nil {
				elapsed = timeutil.RoundSecondsToMinutes(activity.Timer.ElapsedSeconds(time.Now()))
			}
			app.Dispatch(build(activity.ID))
			done(activity.Name, elapsed)
			return nil
		},
	}
}

func newTimerStartCmd() *cobra.Command {
	return timerAction("start", "Start the timer for an activity",
		func(id string) engine.Action { return engine.StartTimer{ActivityID: id} },
		func(name string, _ int) {
			fmt.Printf("Timer running for %q.\n", name)
		})
}

func newTimerPauseCmd() *cobra.Command {
	return timerAction("pause", "Pause a running timer",
		func(id string) engine.Action { return engine.PauseTimer{ActivityID: id} },
		func(name string, elapsed int) {
			fmt.Printf("Timer paused for %q (%s so far).\n", name, timeutil.FormatMinutes(elapsed))
		})
}

func newTimerResumeCmd() *cobra.Command {
	return timerAction("resume", "Resume a paused timer",
		func(id string) engine.Action { return engine.ResumeTimer{ActivityID: id} },
		func(name string, elapsed int) {
			fmt.Printf("Timer running again for %q (%s banked).\n", name, timeutil.FormatMinutes(elapsed))
		})
}

func newTimerStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop ACTIVITY",
		Short: "Stop the timer and complete the activity",
		Long:  "Stop the timer, rounding elapsed time to minutes (at least one), and mark the activity complete with that as its actual time.",
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
			if activity.Timer == nil {
				return fmt.Errorf("no timer on %q", activity.Name)
			}
			minutes := timeutil.RoundSecondsToMinutes(activity.Timer.ElapsedSeconds(time.Now()))
			app.Dispatch(engine.StopTimer{ActivityID: activity.ID, ActualMinutes: minutes})
			fmt.Printf("Stopped timer for %q: %s recorded (%s).\n",
				activity.Name,
				timeutil.FormatMinutes(minutes),
				timeutil.VarianceText(activity.PlannedMinutes, minutes))
			return nil
		},
	}
}
