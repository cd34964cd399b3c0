// Package chart renders water-intake series as horizontal bar charts.
package chart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/dayjournal/internal/constants"
)

const (
	barWidth  = 24
	fullCell  = "█"
	emptyCell = "░"
)

// Style carries the user's palette (300/500/700 shades) and appearance.
type Style struct {
	Palette    [3]string
	Appearance string
}

func (s Style) textColor() lipgloss.TerminalColor {
	light, dark := lipgloss.Color("#374151"), lipgloss.Color("#e5e7eb")
	switch s.Appearance {
	case constants.AppearanceDark:
		return dark
	case constants.AppearanceAuto:
		return lipgloss.AdaptiveColor{Light: "#374151", Dark: "#e5e7eb"}
	default:
		return light
	}
}

// Chart is one bar per label. Highlight is the index drawn in the darkest shade, or -1.
type Chart struct {
	Title     string
	Labels    []string
	Values    []int
	Highlight int
	Footer    string
}

// Scale returns the value that fills a whole bar. It never drops below the daily maximum.
func (c Chart) Scale() int {
	scale := constants.MaxWaterIntake
	for _, v := range c.Values {
		scale = max(scale, v)
	}
	return scale
}

// cells returns how many of barWidth cells value fills.
func cells(value, scale int) int {
	if value <= 0 || scale <= 0 {
		return 0
	}
	return min(barWidth, value*barWidth/scale)
}

func (c Chart) Render(style Style) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(style.Palette[2]))
	labelStyle := lipgloss.NewStyle().Foreground(style.textColor())
	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(style.Palette[1]))
	highlightStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(style.Palette[2])).Bold(true)
	trackStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(style.Palette[0]))

	labelWidth := 0
	for _, l := range c.Labels {
		labelWidth = max(labelWidth, lipgloss.Width(l))
	}

	scale := c.Scale()
	var b strings.Builder
	if c.Title != "" {
		b.WriteString(titleStyle.Render(c.Title))
		b.WriteString("\n")
	}
	for i, v := range c.Values {
		label := ""
		if i < len(c.Labels) {
			label = c.Labels[i]
		}
		filled := cells(v, scale)

		bs := barStyle
		if i == c.Highlight {
			bs = highlightStyle
		}
		fmt.Fprintf(&b, "%s %s%s %d\n",
			labelStyle.Width(labelWidth).Render(label),
			bs.Render(strings.Repeat(fullCell, filled)),
			trackStyle.Render(strings.Repeat(emptyCell, barWidth-filled)),
			v,
		)
	}
	if c.Footer != "" {
		b.WriteString(labelStyle.Render(c.Footer))
		b.WriteString("\n")
	}
	return b.String()
}
