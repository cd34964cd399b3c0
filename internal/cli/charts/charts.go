package charts

import (
	"time"

	"github.com/julianstephens/dayjournal/internal/cli"
	"github.com/julianstephens/dayjournal/internal/constants"
	"github.com/julianstephens/dayjournal/internal/insights"
	"github.com/julianstephens/dayjournal/internal/preferences"
	"github.com/julianstephens/dayjournal/internal/tui/components/chart"
)

func chartStyle(ctx *cli.Context) chart.Style {
	return chart.Style{
		Palette:    preferences.Palette(ctx.Prefs.ColorTheme),
		Appearance: ctx.Prefs.Appearance,
	}
}

// MonthCmd charts daily water intake for one month.
type MonthCmd struct {
	Month string `arg:"" optional:"" help:"Month as YYYY-MM. Defaults to the current month."`
}

func (c *MonthCmd) Run(ctx *cli.Context) error {
	now := ctx.Now()
	year, month := now.Year(), now.Month()
	if c.Month != "" {
		var err error
		if year, month, err = insights.ParseMonth(c.Month); err != nil {
			return err
		}
	}

	values, err := ctx.Aggregator.MonthlySeries(ctx.Ctx, year, month)
	if err != nil {
		return err
	}
	ctx.Printf("%s", chart.Month(year, month, values, now).Render(chartStyle(ctx)))
	return nil
}

// WeekCmd charts Monday..Sunday of the week containing a date.
type WeekCmd struct {
	Date string `arg:"" optional:"" help:"Any date in the week (YYYY-MM-DD, today or yesterday). Defaults to today."`
}

func (c *WeekCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	ref, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return err
	}

	week, err := ctx.Aggregator.WeeklySeries(ctx.Ctx, ref)
	if err != nil {
		return err
	}
	ctx.Printf("%s", chart.Week(week, ctx.Now()).Render(chartStyle(ctx)))
	return nil
}
