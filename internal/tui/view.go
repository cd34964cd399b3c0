package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/dayjournal/internal/cli"
	"github.com/julianstephens/dayjournal/internal/tui/components/chart"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateDay:
		content = docStyle.Render(m.viewDay())
	case StateMonth:
		content = docStyle.Render(chart.Month(m.ref.Year(), m.ref.Month(), m.month, m.ctx.Now()).Render(m.chartStyle()))
	case StateWeek:
		content = docStyle.Render(chart.Week(m.week, m.ctx.Now()).Render(m.chartStyle()))
	case StateHistory:
		content = docStyle.Render(m.historyModel.View())
	case StateEditing:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	parts := []string{m.viewTabs(), content}
	if m.status != "" {
		parts = append(parts, statusStyle.Render(m.status))
	}
	parts = append(parts, m.help.View(m))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs() string {
	var tabs []string
	active := m.state
	if active >= StateEditing {
		active = m.previousState
	}
	for i, title := range tabTitles {
		if active == SessionState(i) {
			tabs = append(tabs, activeTabStyle(m.palette()[1]).Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewDay() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.palette()[2])).
		Render(m.ref.Format("Monday, ") + cli.DisplayDate(m.date()))
	return lipgloss.JoinVertical(lipgloss.Left, title, "", m.dayModel.View())
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, max(m.height-4, 5),
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Delete the entry for "+cli.DisplayDate(m.deleteDate)+"?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
