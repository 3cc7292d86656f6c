package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rejectCmd = &cobra.Command{
	Use:   "reject [key]",
	Short: "Toggle the rejected status of an application",
	Long: `The first rejection of a record prompts for a reason; entering '.'
records the rejection without one. Toggling afterwards only flips the
rejection date and keeps the stored reason.`,
	Args: cobra.ExactArgs(1),
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

		changed, err := newOps(dbh).ToggleRejected(app)
		if err != nil {
			return err
		}
		if !changed {
			fmt.Println("Cancelled.")
			return nil
		}
		if app.RejectedAt == nil {
			fmt.Printf("Marked %q as rejected.\n", app.Title)
		} else {
			fmt.Printf("Cleared rejected status of %q.\n", app.Title)
		}
		return nil
	},
}
