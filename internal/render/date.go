package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/pwalczyk/jobtrack/internal/model"
)

// FormatDateTime renders a timestamp the way the list shows it.
func FormatDateTime(t time.Time) string { return t.Local().Format(model.DisplayDateTime) }

// ParseFlexibleDate parses the date forms the edit and add commands accept:
// the display formats, RFC3339 and a few common date layouts, plus "today"
// and "yesterday".
func ParseFlexibleDate(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, fmt.Errorf("empty date input")
	}

	now := time.Now()
	switch strings.ToLower(input) {
	case "now":
		return now, nil
	case "today":
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local), nil
	case "yesterday":
		y := now.AddDate(0, 0, -1)
		return time.Date(y.Year(), y.Month(), y.Day(), 0, 0, 0, 0, time.Local), nil
	}

	formats := []string{
		model.DisplayDateTime,
		model.DisplayDate,
		"2006-01-02 15:04",
		"2006-01-02",
		time.RFC3339Nano,
		time.RFC3339,
	}
	for _, format := range formats {
		if t, err := time.ParseInLocation(format, input, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", input)
}
