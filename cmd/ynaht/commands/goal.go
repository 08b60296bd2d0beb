package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/ynaht/ynaht/internal/engine"
	"github.com/ynaht/ynaht/internal/metrics"
	"github.com/ynaht/ynaht/internal/models"
	"github.com/ynaht/ynaht/internal/validation"
)

// NewGoalCmd creates the goal management command.
func NewGoalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage recurring goals",
	}
	cmd.AddCommand(newGoalAddCmd())
	cmd.AddCommand(newGoalListCmd())
	cmd.AddCommand(newGoalDeleteCmd())
	return cmd
}

func newGoalAddCmd() *cobra.Command {
	var targetType, frequency, pattern, category string
	var target int
	var hours bool
	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a recurring goal",
		Long:  "Add a goal matched against activity names. Count goals target occurrences; duration goals target minutes (or hours with --hours).",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := validation.SanitizeText(args[0])
			if name == "" {
				return fmt.Errorf("goal name is required")
			}
			if err := validation.ValidateTargetType(targetType); err != nil {
				return err
			}
			if err := validation.ValidateGoalFrequency(frequency); err != nil {
				return err
			}
			if target <= 0 {
				return fmt.Errorf("--target must be positive")
			}
			if pattern == "" {
				pattern = name
			}
			if category != "" {
				if _, ok := models.CategoryByID(category); !ok {
					return fmt.Errorf("unknown category %q (one of: %s)", category, categoryIDs())
				}
			}
			value := target
			if models.GoalTargetType(targetType) == models.TargetDuration && hours {
				value = target * 60
			}

			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.Close()

			app.Dispatch(engine.AddGoal{
				Name:            name,
				CategoryID:      category,
				TargetType:      models.GoalTargetType(targetType),
				TargetValue:     value,
				Frequency:       models.GoalFrequency(frequency),
				ActivityPattern: strings.ToLower(pattern),
			})
			fmt.Printf("Added %s goal %q: %s.\n", frequency, name, goalTarget(models.GoalTargetType(targetType), value))
			return nil
		},
	}
	cmd.Flags().IntVarP(&target, "target", "t", 0, "Target value (required)")
	cmd.Flags().StringVar(&targetType, "type", "count", "Target type: count or duration")
	cmd.Flags().StringVarP(&frequency, "frequency", "f", "weekly", "Frequency: daily, weekly, or monthly")
	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "Activity name pattern to match (defaults to the goal name)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category ID")
	cmd.Flags().BoolVar(&hours, "hours", false, "Interpret a duration target as hours")
	return cmd
}

func newGoalListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List goals and progress for the current period",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.Close()

			state := app.Store.State()
			progress := metrics.GoalProgressAll(state, time.Now())
			if len(progress) == 0 {
				fmt.Println("No active goals.")
				return nil
			}
			for _, gp := range progress {
				fmt.Printf("%-10s %s (%s): %s, %.0f%%\n",
					"["+string(gp.Status)+"]",
					gp.Goal.Name,
					gp.Goal.Frequency,
					goalProgressText(gp),
					gp.Percentage)
				fmt.Printf("           id: %s  pattern: %q\n", gp.Goal.ID, gp.Goal.ActivityPattern)
			}
			return nil
		},
	}
}

func newGoalDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete GOAL_ID",
		Aliases: []string{"rm"},
		Short:   "Delete a goal",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.Close()

			state := app.Store.State()
			for _, g := range state.Goals {
				if g.ID == args[0] {
					app.Dispatch(engine.DeleteGoal{GoalID: g.ID})
					fmt.Printf("Deleted goal %q.\n", g.Name)
					return nil
				}
			}
			return fmt.Errorf("no goal with ID %q", args[0])
		},
	}
}

func goalTarget(tt models.GoalTargetType, value int) string {
	if tt == models.TargetDuration {
		return fmt.Sprintf("%d min", value)
	}
	return fmt.Sprintf("%d times", value)
}

func goalProgressText(gp models.GoalProgress) string {
	if gp.Goal.TargetType == models.TargetDuration {
		return fmt.Sprintf("%d/%d min", gp.CurrentValue, gp.TargetValue)
	}
	return fmt.Sprintf("%d/%d times", gp.CurrentValue, gp.TargetValue)
}
