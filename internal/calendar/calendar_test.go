package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pwalczyk/jobtrack/internal/calendar"
	"github.com/pwalczyk/jobtrack/internal/model"
)

func onDay(day int, hour int) time.Time {
	return time.Date(2024, time.January, day, hour, 0, 0, 0, time.Local)
}

func TestCountByDayBucketsAreMutuallyExclusive(t *testing.T) {
	day := onDay(10, 9)
	pending := model.JobApplication{CreatedAt: day, Title: "p"}
	sent := model.JobApplication{CreatedAt: day.Add(time.Hour), Title: "s", AppliedAt: model.TimePtr(day)}
	rejected := model.JobApplication{
		CreatedAt:  day.Add(2 * time.Hour),
		Title:      "r",
		AppliedAt:  model.TimePtr(day),
		RejectedAt: model.TimePtr(day), // rejection wins over applied
	}

	counts := calendar.CountByDay([]model.JobApplication{pending, sent, rejected})
	got := counts["2024-01-10"]
	assert.Equal(t, calendar.Totals{Pending: 1, Sent: 1, Rejected: 1}, got)
	assert.Equal(t, 3, got.Created())
}

func TestMonthGridIsMondayFirstWithPadding(t *testing.T) {
	// January 2024 starts on a Monday and ends on a Wednesday.
	weeks := calendar.MonthGrid(nil, 2024, time.January)
	require.Len(t, weeks, 5)

	first := weeks[0][0]
	assert.Equal(t, time.Monday, first.Date.Weekday())
	assert.True(t, first.InMonth)
	assert.Equal(t, 1, first.Date.Day())

	lastWeek := weeks[len(weeks)-1]
	assert.Equal(t, 31, lastWeek[2].Date.Day())
	assert.True(t, lastWeek[2].InMonth)
	// trailing padding comes from February
	assert.False(t, lastWeek[3].InMonth)
	assert.Equal(t, time.February, lastWeek[3].Date.Month())
}

func TestMonthGridLeadingPadding(t *testing.T) {
	// March 2024 starts on a Friday: four leading padding days.
	weeks := calendar.MonthGrid(nil, 2024, time.March)
	require.NotEmpty(t, weeks)

	week := weeks[0]
	for i := 0; i < 4; i++ {
		assert.False(t, week[i].InMonth, "cell %d", i)
		assert.Equal(t, time.February, week[i].Date.Month())
	}
	assert.True(t, week[4].InMonth)
	assert.Equal(t, 1, week[4].Date.Day())
	assert.Equal(t, time.Monday, week[0].Date.Weekday())
}

func TestWeekAndMonthTotalsEqualSumOfDays(t *testing.T) {
	apps := []model.JobApplication{
		{CreatedAt: onDay(1, 9), Title: "a"},
		{CreatedAt: onDay(2, 9), Title: "b", AppliedAt: model.TimePtr(onDay(2, 10))},
		{CreatedAt: onDay(8, 9), Title: "c", RejectedAt: model.TimePtr(onDay(9, 9))},
		{CreatedAt: onDay(31, 9), Title: "d"},
	}

	weeks := calendar.MonthGrid(apps, 2024, time.January)

	// first week holds Jan 1-7
	assert.Equal(t, calendar.Totals{Pending: 1, Sent: 1}, calendar.WeekTotals(weeks[0]))
	// second week holds Jan 8-14
	assert.Equal(t, calendar.Totals{Rejected: 1}, calendar.WeekTotals(weeks[1]))

	total := calendar.MonthTotals(weeks)
	assert.Equal(t, calendar.Totals{Pending: 2, Sent: 1, Rejected: 1}, total)

	var sum calendar.Totals
	for _, w := range weeks {
		wt := calendar.WeekTotals(w)
		sum = calendar.Totals{
			Pending:  sum.Pending + wt.Pending,
			Sent:     sum.Sent + wt.Sent,
			Rejected: sum.Rejected + wt.Rejected,
		}
	}
	assert.Equal(t, total, sum)
}

func TestMonthTotalsIgnorePaddingDays(t *testing.T) {
	// created on Jan 31, which appears as padding in February's grid
	apps := []model.JobApplication{{CreatedAt: onDay(31, 9), Title: "jan"}}

	weeks := calendar.MonthGrid(apps, 2024, time.February)
	assert.Equal(t, calendar.Totals{}, calendar.MonthTotals(weeks))
}
