package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/ynaht/ynaht/internal/engine"
	"github.com/ynaht/ynaht/internal/models"
)

// NewSyncCmd creates the sync command.
func NewSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Sync with the remote store",
	}
	cmd.AddCommand(newSyncNowCmd())
	cmd.AddCommand(newSyncPullCmd())
	cmd.AddCommand(newSyncStatusCmd())
	cmd.AddCommand(newSyncLinkCmd())
	return cmd
}

func newSyncNowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Push the current state immediately",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Sync.Save(app.Store.State(), true); err != nil {
				return fmt.Errorf("push failed (change queued for retry): %w", err)
			}
			if err := app.Sync.FlushQueue(context.Background()); err != nil {
				return fmt.Errorf("queue flush failed: %w", err)
			}
			status := app.Sync.Status()
			if status.LastSyncedAt != nil {
				fmt.Printf("Synced at %s.\n", status.LastSyncedAt.Local().Format(time.Kitchen))
			} else {
				fmt.Println("Synced.")
			}
			return nil
		},
	}
}

func newSyncPullCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Fetch the remote state and load it",
		Long:  "Fetch the remote copy and load it locally. A queued offline write newer than the remote copy wins and is pushed back up.",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.Close()

			state, err := app.Sync.Pull(context.Background())
			load, msg, fatal := pullOutcome(state, err)
			if fatal != nil {
				return fatal
			}
			if msg != "" {
				fmt.Println(msg)
			}
			if !load {
				return nil
			}
			next := app.Store.Dispatch(engine.LoadState{State: state})
			if err := app.Local.SaveState(next); err != nil {
				return fmt.Errorf("save state: %w", err)
			}
			fmt.Printf("Pulled remote state: %d day(s), %d goal(s).\n",
				len(next.DaySessions), len(next.Goals))
			return nil
		},
	}
}

// pullOutcome decides what to do with a Pull result. A fetch failure is
// only fatal when no queued offline copy came back with it; otherwise the
// queued copy is loaded and the failure reported as a status line.
func pullOutcome(state *models.AppState, err error) (load bool, msg string, fatal error) {
	if err != nil {
		if state == nil {
			return false, "", fmt.Errorf("pull failed: %w", err)
		}
		return true, fmt.Sprintf("Pull failed (%v); loading the queued offline copy.", err), nil
	}
	if state == nil {
		return false, "No remote state yet; keeping local data.", nil
	}
	return true, "", nil
}

func newSyncStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show sync status",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.Close()

			userID, _ := app.Local.ExistingUserID()
			status := app.Sync.Status()
			fmt.Printf("User ID: %s\n", userID)
			if status.HasUnsynced {
				fmt.Println("Unsynced changes: yes (queued offline)")
			} else {
				fmt.Println("Unsynced changes: no")
			}
			if status.LastSyncedAt != nil {
				fmt.Printf("Last synced: %s\n", status.LastSyncedAt.Local().Format(time.RFC1123))
			}
			if status.LastError != "" {
				fmt.Printf("Last error: %s\n", status.LastError)
			}
			return nil
		},
	}
}

func newSyncLinkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "link USER_ID",
		Short: "Link this device to an existing user ID",
		Long:  "Adopt the user ID from another device and pull its state. The local state is replaced by the remote copy.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Local.SetUserID(args[0]); err != nil {
				return err
			}
			fmt.Printf("Linked to user %s.\n", args[0])
			fmt.Println("Run 'ynaht sync pull' to fetch that user's data.")
			return nil
		},
	}
}
