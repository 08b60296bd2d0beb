package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/ynaht/ynaht/internal/engine"
	"github.com/ynaht/ynaht/internal/export"
	"github.com/ynaht/ynaht/internal/models"
)

// NewExportCmd creates the export command.
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export data as JSON, CSV, or a day summary",
	}
	cmd.AddCommand(newExportJSONCmd())
	cmd.AddCommand(newExportCSVCmd())
	cmd.AddCommand(newExportSummaryCmd())
	return cmd
}

func writeExport(out string, content []byte) error {
	if out == "" || out == "-" {
		fmt.Print(string(content))
		return nil
	}
	if err := os.WriteFile(out, content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Printf("Wrote %s.\n", out)
	return nil
}

// stampExported records the export time in settings.
func stampExported(app *App) {
	now := time.Now()
	app.Dispatch(engine.UpdateSettings{Patch: models.SettingsPatch{LastExportedAt: &now}})
}

func newExportJSONCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "json",
		Short: "Export all sessions and goals as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.Close()

			data, err := export.JSON(app.Store.State())
			if err != nil {
				return fmt.Errorf("encode export: %w", err)
			}
			if err := writeExport(out, data); err != nil {
				return err
			}
			stampExported(app)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	return cmd
}

func newExportCSVCmd() *cobra.Command {
	var out string
	var session bool
	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Export activities as CSV",
		Long:  "Export every session's activities as CSV, or only the active session's (with notes) using --session.",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.Close()

			state := app.Store.State()
			var content string
			if session {
				current, err := requireSession(state)
				if err != nil {
					return err
				}
				content = export.SessionCSV(current)
			} else {
				content = export.AllSessionsCSV(state)
			}
			if err := writeExport(out, []byte(content+"\n")); err != nil {
				return err
			}
			stampExported(app)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	cmd.Flags().BoolVar(&session, "session", false, "Export only the active session, including notes")
	return cmd
}

func newExportSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print a plain text summary of the active day",
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
			fmt.Print(export.SessionSummary(session))
			return nil
		},
	}
}
