// Package query is the pure in-memory view over the application set.
package query

import (
	"sort"
	"strings"
	"time"

	"github.com/pwalczyk/jobtrack/internal/model"
)

// Filters mirrors the persisted filter settings.
type Filters struct {
	SearchTerm string
	IsApplied  bool
	IsRejected bool
	IsFavorite bool
}

// FilterAndSort partitions by archived status, applies the status filters
// (active view only), matches the search term and sorts newest first. The
// input slice is never mutated.
func FilterAndSort(apps []model.JobApplication, archived bool, f Filters) []model.JobApplication {
	out := make([]model.JobApplication, 0, len(apps))
	for _, app := range apps {
		if app.Archived() != archived {
			continue
		}
		if !archived && !matchesStatus(app, f) {
			continue
		}
		if !matchesSearch(app, f.SearchTerm) {
			continue
		}
		out = append(out, app)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// matchesStatus composes the applied/rejected filters; the favorite filter
// is a hard AND on top of that combination.
func matchesStatus(app model.JobApplication, f Filters) bool {
	applied := app.AppliedAt != nil
	rejected := app.RejectedAt != nil

	var keep bool
	switch {
	case f.IsApplied && f.IsRejected:
		keep = true
	case f.IsApplied && !f.IsRejected:
		keep = applied && !rejected
	case !f.IsApplied && f.IsRejected:
		keep = rejected
	case !applied && !rejected:
		keep = true
	}

	if f.IsFavorite && app.FavoriteAt == nil {
		return false
	}
	return keep
}

// matchesSearch does a case-insensitive substring match across the text
// fields, the tags and the display-formatted dates, so searching by a date
// as it is shown works.
func matchesSearch(app model.JobApplication, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)

	haystacks := []string{
		strings.ToLower(app.Title),
		strings.ToLower(app.Description),
		strings.ToLower(app.Location),
		strings.ToLower(app.URL),
		formatForSearch(&app.CreatedAt),
		formatForSearch(app.AppliedAt),
		formatForSearch(app.RejectedAt),
	}
	for _, h := range haystacks {
		if strings.Contains(h, needle) {
			return true
		}
	}
	for _, tag := range app.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func formatForSearch(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Local().Format(model.DisplayDateTime)
}
