package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [key]",
	Short: "Permanently delete an application",
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

		deleted, err := newOps(dbh).Delete(app)
		if err != nil {
			return err
		}
		if !deleted {
			fmt.Println("Cancelled.")
			return nil
		}
		fmt.Printf("Deleted %q.\n", app.Title)
		return nil
	},
}
