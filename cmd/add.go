package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pwalczyk/jobtrack/internal/lifecycle"
	"github.com/pwalczyk/jobtrack/internal/model"
	"github.com/pwalczyk/jobtrack/internal/render"
)

var (
	addDescription string
	addLocation    string
	addTags        string
	addURL         string
	addURL2        string
)

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new application",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.TrimSpace(strings.Join(args, " "))
		if title == "" {
			return fmt.Errorf("title must not be empty")
		}

		dbh, err := openDB()
		if err != nil {
			return err
		}
		defer dbh.Close()

		form := lifecycle.Form{
			Title:       title,
			Description: addDescription,
			Location:    addLocation,
			Tags:        model.ParseTags(addTags),
			URL:         addURL,
		}
		if addURL2 != "" {
			form.URL2 = &addURL2
		}

		app, err := newOps(dbh).Save(form, nil)
		if err != nil {
			return err
		}
		fmt.Printf("Saved %q (%s).\n", app.Title, render.FormatDateTime(app.CreatedAt))
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Free-text description")
	addCmd.Flags().StringVarP(&addLocation, "location", "l", "", "Location (stored lowercase)")
	addCmd.Flags().StringVarP(&addTags, "tags", "t", "", "Comma separated tags")
	addCmd.Flags().StringVarP(&addURL, "url", "u", "", "Posting URL")
	addCmd.Flags().StringVar(&addURL2, "url2", "", "Secondary URL")
}
