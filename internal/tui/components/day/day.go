package day

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/dayjournal/internal/constants"
	"github.com/julianstephens/dayjournal/internal/models"
)

var (
	fieldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(12)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// Model shows one day's entry in a scrollable viewport.
type Model struct {
	viewport viewport.Model
	Entry    models.JournalEntry
	Found    bool
	Accent   string
	width    int
	height   int
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height)}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

func (m *Model) SetEntry(entry models.JournalEntry, found bool) {
	m.Entry = entry
	m.Found = found
	m.Render()
}

func (m *Model) Render() {
	m.viewport.SetContent(Content(m.Entry, m.Found, m.Accent))
}

// Content renders an entry the way the day tab shows it.
func Content(e models.JournalEntry, found bool, accent string) string {
	if !found {
		return emptyStyle.Render("Nothing written for this day yet. Press 'e' to start.")
	}

	water := lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).
		Render(strings.Repeat("💧", e.WaterIntake)) +
		strings.Repeat("·", max(0, constants.MaxWaterIntake-e.WaterIntake))

	rows := []struct{ field, value string }{
		{"Feelings", strings.Join(e.Feelings, ", ")},
		{"Self-love", e.SelfLove},
		{"Self-care", strings.Join(e.SelfCare, ", ")},
		{"Gratitude", strings.Join(e.GratitudeItems(), "\n")},
		{"Water", fmt.Sprintf("%s %d/%d", water, e.WaterIntake, constants.MaxWaterIntake)},
	}

	var b strings.Builder
	for _, r := range rows {
		value := r.value
		if value == "" {
			value = emptyStyle.Render("-")
		} else {
			value = valueStyle.Render(value)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, fieldStyle.Render(r.field), value))
		b.WriteString("\n")
	}
	return b.String()
}
