package history

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/dayjournal/internal/constants"
	"github.com/julianstephens/dayjournal/internal/models"
)

type OpenEntryMsg struct {
	Date string
}

type EditEntryMsg struct {
	Date string
}

type DeleteEntryMsg struct {
	Date string
}

type Item struct {
	Entry models.JournalEntry
}

func (i Item) Title() string {
	t, err := time.Parse(constants.DateFormat, i.Entry.Date)
	if err != nil {
		return i.Entry.Date
	}
	return t.Format("Mon " + constants.DisplayDateFormat)
}

func (i Item) Description() string {
	desc := fmt.Sprintf("💧 %d", i.Entry.WaterIntake)
	if len(i.Entry.Feelings) > 0 {
		desc += " | " + strings.Join(i.Entry.Feelings, " ")
	}
	return desc
}

func (i Item) FilterValue() string {
	return i.Entry.Date + " " + strings.Join(i.Entry.Feelings, " ") + " " + i.Entry.SelfLove
}

type KeyMap struct {
	Open   key.Binding
	Edit   key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func items(entries []models.JournalEntry) []list.Item {
	out := make([]list.Item, len(entries))
	for i, e := range entries {
		out[i] = Item{Entry: e}
	}
	return out
}

func New(entries []models.JournalEntry, width, height int) Model {
	l := list.New(items(entries), list.NewDefaultDelegate(), width, height)
	l.Title = "History"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Open, keys.Edit, keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Open, keys.Edit, keys.Delete}
	}

	return Model{list: l, keys: keys}
}

func (m *Model) SetEntries(entries []models.JournalEntry) {
	m.list.SetItems(items(entries))
}

// Len returns the number of listed entries.
func (m Model) Len() int {
	return len(m.list.Items())
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		i, ok := m.list.SelectedItem().(Item)
		if !ok {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Open):
			return m, func() tea.Msg { return OpenEntryMsg{Date: i.Entry.Date} }
		case key.Matches(msg, m.keys.Edit):
			return m, func() tea.Msg { return EditEntryMsg{Date: i.Entry.Date} }
		case key.Matches(msg, m.keys.Delete):
			return m, func() tea.Msg { return DeleteEntryMsg{Date: i.Entry.Date} }
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No entries yet.\n  Press 'e' on the Day tab to write one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
