package chart

import (
	"fmt"
	"time"

	"github.com/julianstephens/dayjournal/internal/constants"
	"github.com/julianstephens/dayjournal/internal/insights"
)

// Month builds the chart for a monthly series; today is highlighted when it falls in the month.
func Month(year int, month time.Month, values []int, today time.Time) Chart {
	labels := make([]string, len(values))
	for i := range values {
		labels[i] = fmt.Sprintf("%02d", i+1)
	}

	highlight := -1
	if today.Year() == year && today.Month() == month {
		highlight = today.Day() - 1
	}

	total := 0
	for _, v := range values {
		total += v
	}
	return Chart{
		Title:     insights.FormatMonth(year, month),
		Labels:    labels,
		Values:    values,
		Highlight: highlight,
		Footer:    fmt.Sprintf("Total %d glasses", total),
	}
}

// Week builds the Monday..Sunday chart with the weekly mean in the footer.
func Week(week insights.Week, today time.Time) Chart {
	labels := make([]string, len(week.Values))
	highlight := -1
	todayStr := today.Format(constants.DateFormat)
	for i, date := range week.Dates() {
		day := week.Start.AddDate(0, 0, i)
		labels[i] = day.Format("Mon 02.01")
		if date == todayStr {
			highlight = i
		}
	}

	end := week.Start.AddDate(0, 0, 6)
	return Chart{
		Title:     fmt.Sprintf("Week %s - %s", week.Start.Format("02.01"), end.Format("02.01.2006")),
		Labels:    labels,
		Values:    week.Values[:],
		Highlight: highlight,
		Footer:    fmt.Sprintf("Mean %.2f glasses/day", week.Mean),
	}
}
