package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pwalczyk/jobtrack/internal/schedule"
	"github.com/pwalczyk/jobtrack/internal/settings"
)

func TestNextAtSameDayBeforeReminderTime(t *testing.T) {
	cfg := settings.Default().Reminder
	// Wednesday, well before 09:00
	now := time.Date(2024, 1, 10, 7, 30, 0, 0, time.Local)

	next := schedule.NextAt(now, cfg)
	assert.Equal(t, time.Date(2024, 1, 10, 9, 0, 0, 0, time.Local), next)
}

func TestNextAtRollsToNextDayAfterReminderTime(t *testing.T) {
	cfg := settings.Default().Reminder
	// Wednesday, past 09:00
	now := time.Date(2024, 1, 10, 10, 0, 0, 0, time.Local)

	next := schedule.NextAt(now, cfg)
	assert.Equal(t, time.Date(2024, 1, 11, 9, 0, 0, 0, time.Local), next)
}

func TestNextAtSkipsTheWeekend(t *testing.T) {
	cfg := settings.Default().Reminder
	// Friday afternoon: next workday slot is Monday
	now := time.Date(2024, 1, 12, 15, 0, 0, 0, time.Local)

	next := schedule.NextAt(now, cfg)
	assert.Equal(t, time.Date(2024, 1, 15, 9, 0, 0, 0, time.Local), next)
	assert.Equal(t, time.Monday, next.Weekday())
}

func TestNextAtHonorsCustomTimeAndWorkdays(t *testing.T) {
	cfg := settings.Reminder{Time: "18:30", Workdays: []string{"Sat", "Sun"}}
	// Wednesday: next slot is Saturday evening
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.Local)

	next := schedule.NextAt(now, cfg)
	assert.Equal(t, time.Date(2024, 1, 13, 18, 30, 0, 0, time.Local), next)
}
