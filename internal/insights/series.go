// Package insights derives charted series from stored journal entries.
package insights

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/julianstephens/dayjournal/internal/constants"
	"github.com/julianstephens/dayjournal/internal/journal"
	"github.com/julianstephens/dayjournal/internal/logger"
	"github.com/julianstephens/dayjournal/internal/models"
)

// EntryReader is the slice of the entry store the aggregator needs.
type EntryReader interface {
	Get(ctx context.Context, date string) (models.JournalEntry, bool, error)
}

// Week is the water series for one Monday-to-Sunday week.
type Week struct {
	Start  time.Time
	Values [7]int
	Mean   float64
}

// Sum returns the total water intake of the week.
func (w Week) Sum() int {
	total := 0
	for _, v := range w.Values {
		total += v
	}
	return total
}

// Dates returns the seven YYYY-MM-DD dates covered by the week.
func (w Week) Dates() [7]string {
	var dates [7]string
	for i := range dates {
		dates[i] = w.Start.AddDate(0, 0, i).Format(constants.DateFormat)
	}
	return dates
}

type Aggregator struct {
	entries EntryReader
	limit   int
}

func NewAggregator(entries EntryReader) *Aggregator {
	return &Aggregator{entries: entries, limit: constants.SeriesReadConcurrency}
}

// DaysIn returns the number of days in month of year.
func DaysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthlySeries returns one water value per day of the month; index i is day i+1.
// Days without an entry are 0.
func (a *Aggregator) MonthlySeries(ctx context.Context, year int, month time.Month) ([]int, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("month %d out of range", month)
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	values := make([]int, DaysIn(year, month))
	if err := a.fill(ctx, first, values); err != nil {
		return nil, err
	}
	return values, nil
}

// WeekStart returns the Monday of the ISO week containing ref, at midnight UTC.
func WeekStart(ref time.Time) time.Time {
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// WeeklySeries returns Monday..Sunday water values for the week containing ref.
// Mean is always the sum divided by 7, whether or not every day has an entry.
func (a *Aggregator) WeeklySeries(ctx context.Context, ref time.Time) (Week, error) {
	week := Week{Start: WeekStart(ref)}
	if err := a.fill(ctx, week.Start, week.Values[:]); err != nil {
		return Week{}, err
	}
	week.Mean = float64(week.Sum()) / 7
	return week, nil
}

// fill reads len(values) consecutive days starting at first into values.
// Each read owns one index so no synchronization is needed beyond the group.
func (a *Aggregator) fill(ctx context.Context, first time.Time, values []int) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.limit)

	for i := range values {
		date := first.AddDate(0, 0, i).Format(constants.DateFormat)
		g.Go(func() error {
			entry, found, err := a.entries.Get(gctx, date)
			switch {
			case errors.Is(err, journal.ErrMalformedRecord):
				logger.Warn("Counting malformed journal record as zero", "date", date, "error", err)
				return nil
			case err != nil:
				return fmt.Errorf("series read %s: %w", date, err)
			case found:
				values[i] = entry.WaterIntake
			}
			return nil
		})
	}
	return g.Wait()
}

// MonthName returns the English month name, e.g. "February".
func MonthName(month time.Month) string {
	return month.String()
}

// FormatMonth renders a chart title such as "February 2024".
func FormatMonth(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", MonthName(month), year)
}

// ParseMonth parses a YYYY-MM argument.
func ParseMonth(s string) (int, time.Month, error) {
	t, err := time.Parse(constants.MonthFormat, s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q, expected YYYY-MM", s)
	}
	return t.Year(), t.Month(), nil
}
