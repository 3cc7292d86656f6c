package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pwalczyk/jobtrack/internal/db"
	"github.com/pwalczyk/jobtrack/internal/query"
	"github.com/pwalczyk/jobtrack/internal/render"
	"github.com/pwalczyk/jobtrack/internal/settings"
)

var (
	listArchived bool
	listSearch   string
	listApplied  bool
	listRejected bool
	listFavorite bool
	listFormat   string
	listNoColor  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List applications (filtered view)",
	Long: `Examples:
	jobtrack list                       # active view with last-used filters
	jobtrack list --archived            # archived view
	jobtrack list --search berlin       # search titles, tags, location, dates
	jobtrack list --applied=false       # hide applied-only records
	jobtrack list --favorite            # favorites only`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := settings.NewService()
		if err != nil {
			return err
		}
		cfg, err := svc.Load()
		if err != nil {
			return err
		}

		// flags override the persisted last-used filters
		filters := query.Filters{
			SearchTerm: cfg.Filters.SearchTerm,
			IsApplied:  cfg.Filters.IsApplied,
			IsRejected: cfg.Filters.IsRejected,
			IsFavorite: cfg.Filters.IsFavorite,
		}
		flags := cmd.Flags()
		if flags.Changed("search") {
			filters.SearchTerm = listSearch
		}
		if flags.Changed("applied") {
			filters.IsApplied = listApplied
		}
		if flags.Changed("rejected") {
			filters.IsRejected = listRejected
		}
		if flags.Changed("favorite") {
			filters.IsFavorite = listFavorite
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
		view := query.FilterAndSort(apps, listArchived, filters)

		renderConfig := render.DefaultRenderConfig()
		renderConfig.Language = cfg.Language
		if listNoColor {
			renderConfig.Color = false
		}
		if listFormat != "" {
			renderConfig.Format = render.OutputFormat(listFormat)
		}

		out, err := render.NewRenderer(renderConfig).RenderApplications(view, listArchived)
		if err != nil {
			return err
		}
		fmt.Print(out)

		// remember the filters for the next invocation
		return svc.SetFilters(settings.Filters{
			SearchTerm: filters.SearchTerm,
			IsApplied:  filters.IsApplied,
			IsRejected: filters.IsRejected,
			IsFavorite: filters.IsFavorite,
		})
	},
}

func init() {
	listCmd.Flags().BoolVarP(&listArchived, "archived", "a", false, "Show the archived view")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Search term")
	listCmd.Flags().BoolVar(&listApplied, "applied", true, "Include applied records")
	listCmd.Flags().BoolVar(&listRejected, "rejected", true, "Include rejected records")
	listCmd.Flags().BoolVar(&listFavorite, "favorite", false, "Favorites only")
	listCmd.Flags().StringVar(&listFormat, "format", "default", "Output format: default, json, quiet")
	listCmd.Flags().BoolVar(&listNoColor, "no-color", false, "Disable colored output")
}
