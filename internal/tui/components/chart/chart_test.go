package chart

import (
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/dayjournal/internal/constants"
	"github.com/julianstephens/dayjournal/internal/insights"
)

var testStyle = Style{Palette: constants.ThemeColors["blue"], Appearance: constants.AppearanceLight}

func TestCells(t *testing.T) {
	tests := []struct {
		value, scale, want int
	}{
		{0, 8, 0},
		{-2, 8, 0},
		{4, 8, barWidth / 2},
		{8, 8, barWidth},
		{12, 8, barWidth},
		{3, 0, 0},
	}
	for _, tt := range tests {
		if got := cells(tt.value, tt.scale); got != tt.want {
			t.Errorf("cells(%d, %d) = %d, want %d", tt.value, tt.scale, got, tt.want)
		}
	}
}

func TestScaleGrowsWithLargeValues(t *testing.T) {
	if got := (Chart{Values: []int{1, 2}}).Scale(); got != constants.MaxWaterIntake {
		t.Errorf("expected scale %d, got %d", constants.MaxWaterIntake, got)
	}
	if got := (Chart{Values: []int{1, 12}}).Scale(); got != 12 {
		t.Errorf("expected scale 12, got %d", got)
	}
}

func TestRenderOneRowPerValue(t *testing.T) {
	c := Chart{
		Title:     "Test",
		Labels:    []string{"a", "b", "c"},
		Values:    []int{0, 4, 8},
		Highlight: -1,
		Footer:    "done",
	}
	out := c.Render(testStyle)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected title, 3 rows and footer, got %d lines:\n%s", len(lines), out)
	}
	if n := strings.Count(lines[3], fullCell); n != barWidth {
		t.Errorf("a full day should fill the bar, got %d cells", n)
	}
	if strings.Contains(lines[1], fullCell) {
		t.Errorf("an empty day should draw no filled cells: %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], " 4") {
		t.Errorf("row should end with its value: %q", lines[2])
	}
}

func TestMonthChart(t *testing.T) {
	values := make([]int, 29)
	values[0], values[14], values[28] = 3, 8, 1
	today := time.Date(2024, time.February, 15, 12, 0, 0, 0, time.Local)

	c := Month(2024, time.February, values, today)
	if c.Title != "February 2024" {
		t.Errorf("unexpected title %q", c.Title)
	}
	if len(c.Labels) != 29 || c.Labels[0] != "01" || c.Labels[28] != "29" {
		t.Errorf("unexpected labels %v", c.Labels)
	}
	if c.Highlight != 14 {
		t.Errorf("expected today highlighted at 14, got %d", c.Highlight)
	}
	if c.Footer != "Total 12 glasses" {
		t.Errorf("unexpected footer %q", c.Footer)
	}

	other := Month(2024, time.March, make([]int, 31), today)
	if other.Highlight != -1 {
		t.Errorf("no highlight expected outside the current month, got %d", other.Highlight)
	}
}

func TestWeekChart(t *testing.T) {
	week := insights.Week{
		Start:  time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC),
		Values: [7]int{2, 0, 0, 5, 0, 0, 7},
		Mean:   2,
	}
	c := Week(week, time.Date(2024, time.March, 14, 8, 0, 0, 0, time.Local))

	if c.Labels[0] != "Mon 11.03" || c.Labels[6] != "Sun 17.03" {
		t.Errorf("unexpected labels %v", c.Labels)
	}
	if c.Highlight != 3 {
		t.Errorf("expected Thursday highlighted, got %d", c.Highlight)
	}
	if c.Footer != "Mean 2.00 glasses/day" {
		t.Errorf("unexpected footer %q", c.Footer)
	}
	if c.Title != "Week 11.03 - 17.03.2024" {
		t.Errorf("unexpected title %q", c.Title)
	}
}
