package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/pwalczyk/jobtrack/internal/calendar"
	"github.com/pwalczyk/jobtrack/internal/i18n"
)

// RenderCalendar draws the month grid with per-day counts, a weekly totals
// column and the month summary line.
func (r *Renderer) RenderCalendar(weeks []calendar.Week, year int, month time.Month) string {
	tr := i18n.Translator(r.config.Language)

	var b strings.Builder
	b.WriteString(r.styles.Title.Render(fmt.Sprintf("%s %d", month, year)))
	b.WriteString("\n")

	for _, wd := range strings.Fields(tr("calendar.weekdays")) {
		b.WriteString(fmt.Sprintf("%-12s", wd))
	}
	b.WriteString(tr("calendar.week"))
	b.WriteString("\n")
	b.WriteString(r.styles.Separator.Render(strings.Repeat("─", 12*7+8)))
	b.WriteString("\n")

	for _, week := range weeks {
		for _, day := range week {
			b.WriteString(r.renderDayCell(day))
		}
		b.WriteString(r.renderTotalsCell(calendar.WeekTotals(week)))
		b.WriteString("\n")
	}

	totals := calendar.MonthTotals(weeks)
	b.WriteString(r.styles.Separator.Render(strings.Repeat("─", 12*7+8)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s: %d  %s: %s  %s: %s  %s: %s\n",
		tr("calendar.created"), totals.Created(),
		tr("calendar.pending"), r.styles.Pending.Render(fmt.Sprintf("%d", totals.Pending)),
		tr("calendar.applied"), r.styles.Sent.Render(fmt.Sprintf("%d", totals.Sent)),
		tr("calendar.rejected"), r.styles.Rejected.Render(fmt.Sprintf("%d", totals.Rejected)),
	))
	return b.String()
}

func (r *Renderer) renderDayCell(day calendar.Day) string {
	num := fmt.Sprintf("%2d", day.Date.Day())
	if !day.InMonth {
		return r.styles.Meta.Render(num) + strings.Repeat(" ", 10)
	}

	cell := num + " " + r.totalsTriple(day.Totals)
	// pad on the raw width so ANSI codes don't skew alignment
	pad := 12 - 3 - tripleWidth(day.Totals)
	if pad < 0 {
		pad = 0
	}
	return cell + strings.Repeat(" ", pad)
}

func (r *Renderer) renderTotalsCell(t calendar.Totals) string {
	if t.Created() == 0 {
		return r.styles.Meta.Render("-")
	}
	return r.totalsTriple(t)
}

// totalsTriple prints the non-zero buckets in their status colors, matching
// the day-cell markup of the month view.
func (r *Renderer) totalsTriple(t calendar.Totals) string {
	var parts []string
	if t.Pending > 0 {
		parts = append(parts, r.styles.Pending.Render(fmt.Sprintf("%d", t.Pending)))
	}
	if t.Sent > 0 {
		parts = append(parts, r.styles.Sent.Render(fmt.Sprintf("%d", t.Sent)))
	}
	if t.Rejected > 0 {
		parts = append(parts, r.styles.Rejected.Render(fmt.Sprintf("%d", t.Rejected)))
	}
	return strings.Join(parts, " ")
}

func tripleWidth(t calendar.Totals) int {
	w := 0
	for _, n := range []int{t.Pending, t.Sent, t.Rejected} {
		if n > 0 {
			if w > 0 {
				w++
			}
			w += len(fmt.Sprintf("%d", n))
		}
	}
	return w
}
