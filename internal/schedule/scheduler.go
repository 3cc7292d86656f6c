package schedule

import (
	"context"
	"strings"
	"time"

	"github.com/pwalczyk/jobtrack/internal/settings"
)

// NextAt computes the next occurrence of the reminder time that falls on a
// configured workday.
func NextAt(now time.Time, cfg settings.Reminder) time.Time {
	loc := cfg.Location()
	now = now.In(loc)

	// parse "HH:MM"
	hour, min := 9, 0
	if len(cfg.Time) >= 4 {
		if t, err := time.ParseInLocation("15:04", cfg.Time, loc); err == nil {
			hour = t.Hour()
			min = t.Minute()
		}
	}

	workdays := map[string]bool{}
	for _, d := range cfg.Workdays {
		d = strings.TrimSpace(d)
		if len(d) >= 3 {
			workdays[strings.ToLower(d[:3])] = true
		}
	}
	isWorkday := func(t time.Time) bool {
		return workdays[strings.ToLower(t.Weekday().String()[:3])]
	}

	cand := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, loc)
	if !now.Before(cand) {
		cand = cand.Add(24 * time.Hour)
	}
	for !isWorkday(cand) {
		cand = cand.Add(24 * time.Hour)
	}
	return cand
}

// RunConfigured runs the reminder callback at the configured schedule until
// ctx is canceled.
func RunConfigured(ctx context.Context, cfg settings.Reminder, f func()) {
	next := NextAt(time.Now(), cfg)
	t := time.NewTimer(time.Until(next))
	for {
		select {
		case <-ctx.Done():
			if !t.Stop() {
				select {
				case <-t.C:
				default:
				}
			}
			return
		case <-t.C:
			f()
			next = NextAt(time.Now(), cfg)
			t.Reset(time.Until(next))
		}
	}
}
