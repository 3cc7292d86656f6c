// Package calendar buckets applications by creation date for the month view.
package calendar

import (
	"time"

	"github.com/pwalczyk/jobtrack/internal/model"
)

// Totals holds the three mutually exclusive per-day buckets.
type Totals struct {
	Pending  int
	Sent     int
	Rejected int
}

// Created is the overall count for the bucket.
func (t Totals) Created() int { return t.Pending + t.Sent + t.Rejected }

func (t Totals) add(o Totals) Totals {
	t.Pending += o.Pending
	t.Sent += o.Sent
	t.Rejected += o.Rejected
	return t
}

// Day is one grid cell. InMonth is false for the padding days borrowed from
// the adjacent months.
type Day struct {
	Date    time.Time
	InMonth bool
	Totals  Totals
}

// Week is a row of seven grid cells, Monday first.
type Week [7]Day

func dayKey(t time.Time) string { return t.Local().Format("2006-01-02") }

// CountByDay buckets all records by the calendar date of their creation.
// Rejection takes priority over applied in the classification.
func CountByDay(apps []model.JobApplication) map[string]Totals {
	counts := make(map[string]Totals)
	for _, app := range apps {
		key := dayKey(app.CreatedAt)
		t := counts[key]
		switch app.Status() {
		case model.StatusRejected:
			t.Rejected++
		case model.StatusSent:
			t.Sent++
		default:
			t.Pending++
		}
		counts[key] = t
	}
	return counts
}

// MonthGrid lays out the given month as Monday-first weeks, padded with
// zero-count days from the adjacent months. Navigation is stateless: callers
// pass whatever reference month they want rendered.
func MonthGrid(apps []model.JobApplication, year int, month time.Month) []Week {
	counts := CountByDay(apps)

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)

	// Monday-first offset: Sunday pads six leading days.
	lead := int(first.Weekday()) - 1
	if lead < 0 {
		lead = 6
	}

	var weeks []Week
	var week Week
	idx := 0

	push := func(date time.Time, inMonth bool) {
		cell := Day{Date: date, InMonth: inMonth}
		if inMonth {
			cell.Totals = counts[dayKey(date)]
		}
		week[idx] = cell
		idx++
		if idx == 7 {
			weeks = append(weeks, week)
			week = Week{}
			idx = 0
		}
	}

	for i := lead; i > 0; i-- {
		push(first.AddDate(0, 0, -i), false)
	}
	for d := 1; d <= last.Day(); d++ {
		push(time.Date(year, month, d, 0, 0, 0, 0, time.Local), true)
	}
	for next := last.AddDate(0, 0, 1); idx != 0; next = next.AddDate(0, 0, 1) {
		push(next, false)
	}

	return weeks
}

// WeekTotals sums one grid row.
func WeekTotals(w Week) Totals {
	var t Totals
	for _, day := range w {
		t = t.add(day.Totals)
	}
	return t
}

// MonthTotals sums every in-month day of the grid, ignoring padding cells.
func MonthTotals(weeks []Week) Totals {
	var t Totals
	for _, w := range weeks {
		for _, day := range w {
			if day.InMonth {
				t = t.add(day.Totals)
			}
		}
	}
	return t
}
