package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pwalczyk/jobtrack/internal/lifecycle"
	"github.com/pwalczyk/jobtrack/internal/model"
	"github.com/pwalczyk/jobtrack/internal/render"
)

var (
	editTitle       string
	editDescription string
	editLocation    string
	editTags        string
	editURL         string
	editURL2        string
	editCreatedAt   string
)

var editCmd = &cobra.Command{
	Use:   "edit [key]",
	Short: "Edit an existing application",
	Long: `Only the supplied flags change; everything else is preserved.
Changing --created-at rekeys the record (the old key is removed in the same
transaction).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		if !flags.Changed("title") && !flags.Changed("description") && !flags.Changed("location") &&
			!flags.Changed("tags") && !flags.Changed("url") && !flags.Changed("url2") &&
			!flags.Changed("created-at") {
			return fmt.Errorf("nothing to update - specify at least one field to edit")
		}

		dbh, err := openDB()
		if err != nil {
			return err
		}
		defer dbh.Close()

		app, err := findApplication(dbh, args[0])
		if err != nil {
			return err
		}

		form := lifecycle.Form{
			Title:       app.Title,
			Description: app.Description,
			Location:    app.Location,
			Tags:        app.Tags,
			URL:         app.URL,
			URL2:        app.URL2,
		}
		if flags.Changed("title") {
			if editTitle == "" {
				return fmt.Errorf("title must not be empty")
			}
			form.Title = editTitle
		}
		if flags.Changed("description") {
			form.Description = editDescription
		}
		if flags.Changed("location") {
			form.Location = editLocation
		}
		if flags.Changed("tags") {
			form.Tags = model.ParseTags(editTags)
		}
		if flags.Changed("url") {
			form.URL = editURL
		}
		if flags.Changed("url2") {
			if editURL2 == "" {
				form.URL2 = nil
			} else {
				form.URL2 = &editURL2
			}
		}
		if flags.Changed("created-at") {
			t, err := render.ParseFlexibleDate(editCreatedAt)
			if err != nil {
				return fmt.Errorf("invalid --created-at %q: %w", editCreatedAt, err)
			}
			form.CreatedAt = &t
		}

		saved, err := newOps(dbh).Save(form, &app)
		if err != nil {
			return err
		}
		fmt.Printf("Updated %q (%s).\n", saved.Title, render.FormatDateTime(saved.CreatedAt))
		return nil
	},
}

func init() {
	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVarP(&editDescription, "description", "d", "", "New description")
	editCmd.Flags().StringVarP(&editLocation, "location", "l", "", "New location")
	editCmd.Flags().StringVarP(&editTags, "tags", "t", "", "New comma separated tags")
	editCmd.Flags().StringVarP(&editURL, "url", "u", "", "New posting URL")
	editCmd.Flags().StringVar(&editURL2, "url2", "", "New secondary URL (empty clears it)")
	editCmd.Flags().StringVar(&editCreatedAt, "created-at", "", "New creation date (rekeys the record)")
}
