package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var archiveCmd = &cobra.Command{
	Use:   "archive [key]",
	Short: "Move an application to the archive, or restore it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbh, err := openDB()
		if err != nil {
			return err
		}
		defer dbh.Close()

		app, err := findApplication(dbh, args[0])
		if err != nil {
			return err
		}

		changed, err := newOps(dbh).ToggleArchived(app)
		if err != nil {
			return err
		}
		if !changed {
			fmt.Println("Cancelled.")
			return nil
		}
		if app.ArchivedAt == nil {
			fmt.Printf("Archived %q.\n", app.Title)
		} else {
			fmt.Printf("Restored %q from the archive.\n", app.Title)
		}
		return nil
	},
}
