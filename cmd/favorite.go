package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var favoriteCmd = &cobra.Command{
	Use:     "favorite [key]",
	Aliases: []string{"fav"},
	Short:   "Toggle the favorite mark of an application",
	Args:    cobra.ExactArgs(1),
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

		if _, err := newOps(dbh).ToggleFavorite(app); err != nil {
			return err
		}
		if app.FavoriteAt == nil {
			fmt.Printf("Favorited %q.\n", app.Title)
		} else {
			fmt.Printf("Unfavorited %q.\n", app.Title)
		}
		return nil
	},
}
