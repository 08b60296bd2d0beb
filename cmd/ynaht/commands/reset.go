package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// NewResetCmd creates the reset command.
func NewResetCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Wipe all local data",
		Long:  "Delete the local state, offline queue, and user ID. The remote copy is untouched; a new user ID is generated on next use.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Print("This deletes all local data. Type 'yes' to continue: ")
				reader := bufio.NewReader(os.Stdin)
				answer, _ := reader.ReadString('\n')
				if strings.TrimSpace(answer) != "yes" {
					fmt.Println("Aborted.")
					return nil
				}
			}

			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Local.Wipe(); err != nil {
				return fmt.Errorf("wipe local data: %w", err)
			}
			fmt.Println("Local data wiped.")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")
	return cmd
}
