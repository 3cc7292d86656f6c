package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pwalczyk/jobtrack/internal/render"
)

var applyCmd = &cobra.Command{
	Use:   "apply [key]",
	Short: "Toggle the applied status of an application",
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

		changed, err := newOps(dbh).ToggleApplied(app)
		if err != nil {
			return err
		}
		if !changed {
			fmt.Println("Cancelled.")
			return nil
		}
		if app.AppliedAt == nil {
			fmt.Printf("Marked %q as applied.\n", app.Title)
		} else {
			fmt.Printf("Cleared applied status of %q (was %s).\n", app.Title, render.FormatDateTime(*app.AppliedAt))
		}
		return nil
	},
}
