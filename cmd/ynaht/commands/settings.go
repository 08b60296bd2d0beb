package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ynaht/ynaht/internal/engine"
	"github.com/ynaht/ynaht/internal/models"
	"github.com/ynaht/ynaht/internal/validation"
)

// NewSettingsCmd creates the settings command.
func NewSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change preferences",
	}
	cmd.AddCommand(newSettingsShowCmd())
	cmd.AddCommand(newSettingsSetCmd())
	return cmd
}

func newSettingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.Close()

			s := app.Store.State().Settings
			weekStart := "Sunday"
			if s.WeekStartsOn == 1 {
				weekStart = "Monday"
			}
			fmt.Printf("Default wake time:   %s\n", s.DefaultWakeTime)
			fmt.Printf("Default sleep time:  %s\n", s.DefaultSleepTime)
			fmt.Printf("Week starts on:      %s\n", weekStart)
			fmt.Printf("Productivity buffer: %d%%\n", s.ProductivityBuffer)
			if s.LastExportedAt != nil {
				fmt.Printf("Last exported:       %s\n", s.LastExportedAt.Local().Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}

func newSettingsSetCmd() *cobra.Command {
	var wake, sleep, weekStart string
	var buffer int
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := models.SettingsPatch{}
			if cmd.Flags().Changed("wake") {
				if err := validation.ValidateClockTime(wake); err != nil {
					return err
				}
				patch.DefaultWakeTime = &wake
			}
			if cmd.Flags().Changed("sleep") {
				if err := validation.ValidateClockTime(sleep); err != nil {
					return err
				}
				patch.DefaultSleepTime = &sleep
			}
			if cmd.Flags().Changed("week-start") {
				var day int
				switch weekStart {
				case "sunday":
					day = 0
				case "monday":
					day = 1
				default:
					return fmt.Errorf("--week-start must be 'sunday' or 'monday'")
				}
				patch.WeekStartsOn = &day
			}
			if cmd.Flags().Changed("buffer") {
				if buffer < 0 || buffer > 100 {
					return fmt.Errorf("--buffer must be between 0 and 100")
				}
				patch.ProductivityBuffer = &buffer
			}
			if patch == (models.SettingsPatch{}) {
				return fmt.Errorf("nothing to change (see --help for flags)")
			}

			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.Close()

			app.Dispatch(engine.UpdateSettings{Patch: patch})
			fmt.Println("Settings updated.")
			return nil
		},
	}
	cmd.Flags().StringVar(&wake, "wake", "", "Default wake time (HH:mm)")
	cmd.Flags().StringVar(&sleep, "sleep", "", "Default sleep time (HH:mm)")
	cmd.Flags().StringVar(&weekStart, "week-start", "", "First day of the week: sunday or monday")
	cmd.Flags().IntVar(&buffer, "buffer", 0, "Productivity buffer percent")
	return cmd
}
