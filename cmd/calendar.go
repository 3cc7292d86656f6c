package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pwalczyk/jobtrack/internal/calendar"
	"github.com/pwalczyk/jobtrack/internal/db"
	"github.com/pwalczyk/jobtrack/internal/render"
)

var calendarNoColor bool

var calendarCmd = &cobra.Command{
	Use:     "calendar [YYYY-MM]",
	Aliases: []string{"cal"},
	Short:   "Show the month calendar of created applications",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		year, month := now.Year(), now.Month()
		if len(args) == 1 {
			ref, err := time.Parse("2006-01", args[0])
			if err != nil {
				return fmt.Errorf("invalid month %q, want YYYY-MM: %w", args[0], err)
			}
			year, month = ref.Year(), ref.Month()
		}

		dbh, err := openDB()
		if err != nil {
			return err
		}
		defer dbh.Close()

		apps, err := db.GetAllApplications(dbh)
		if err != nil {
			return err
		}

		grid := calendar.MonthGrid(apps, year, month)

		renderConfig := render.DefaultRenderConfig()
		renderConfig.Language = loadSettings().Language
		if calendarNoColor {
			renderConfig.Color = false
		}
		fmt.Print(render.NewRenderer(renderConfig).RenderCalendar(grid, year, month))
		return nil
	},
}

func init() {
	calendarCmd.Flags().BoolVar(&calendarNoColor, "no-color", false, "Disable colored output")
}
