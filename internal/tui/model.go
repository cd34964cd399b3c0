package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/dayjournal/internal/cli"
	"github.com/julianstephens/dayjournal/internal/constants"
	"github.com/julianstephens/dayjournal/internal/insights"
	"github.com/julianstephens/dayjournal/internal/preferences"
	"github.com/julianstephens/dayjournal/internal/tui/components/chart"
	"github.com/julianstephens/dayjournal/internal/tui/components/day"
	"github.com/julianstephens/dayjournal/internal/tui/components/entryform"
	"github.com/julianstephens/dayjournal/internal/tui/components/history"
)

type SessionState int

const (
	StateDay SessionState = iota
	StateMonth
	StateWeek
	StateHistory
	StateEditing
	StateConfirmDelete
)

var tabTitles = []string{"Day", "Month", "Week", "History"}

type Model struct {
	ctx           *cli.Context
	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model
	dayModel      day.Model
	historyModel  history.Model
	form          *huh.Form
	entryForm     *entryform.Model
	editDate      string
	deleteDate    string
	ref           time.Time // the focused day
	month         []int
	week          insights.Week
	status        string
	quitting      bool
	width         int
	height        int
}

func NewModel(ctx *cli.Context) Model {
	now := ctx.Now()
	m := Model{
		ctx:          ctx,
		state:        StateDay,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		dayModel:     day.New(0, 0),
		historyModel: history.New(nil, 0, 0),
		ref:          time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local),
	}
	m.dayModel.Accent = m.palette()[1]
	m.refresh()
	return m
}

func (m Model) palette() [3]string {
	return preferences.Palette(m.ctx.Prefs.ColorTheme)
}

func (m Model) chartStyle() chart.Style {
	return chart.Style{Palette: m.palette(), Appearance: m.ctx.Prefs.Appearance}
}

func (m Model) date() string {
	return m.ref.Format(constants.DateFormat)
}

// refresh reloads everything the tabs show for the focused day.
func (m *Model) refresh() {
	c := m.ctx
	m.status = ""

	entry, found, err := c.Journal.Get(c.Ctx, m.date())
	if err != nil {
		m.status = "⚠ " + err.Error()
	}
	m.dayModel.SetEntry(entry, found)

	if m.month, err = c.Aggregator.MonthlySeries(c.Ctx, m.ref.Year(), m.ref.Month()); err != nil {
		m.status = "⚠ " + err.Error()
	}
	if m.week, err = c.Aggregator.WeeklySeries(c.Ctx, m.ref); err != nil {
		m.status = "⚠ " + err.Error()
	}

	entries, err := c.Journal.ListAll(c.Ctx)
	if err != nil {
		m.status = "⚠ " + err.Error()
	}
	m.historyModel.SetEntries(entries)
}

// shiftMonth moves t by n months, clamping the day to the target month's length.
func shiftMonth(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	d := min(t.Day(), insights.DaysIn(first.Year(), first.Month()))
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, t.Location())
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateDay:
		keys = append(keys, m.keys.Prev, m.keys.Next, m.keys.Edit, m.keys.WaterUp, m.keys.WaterDown)
	case StateMonth, StateWeek:
		keys = append(keys, m.keys.Prev, m.keys.Next, m.keys.Week)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Prev, m.keys.Next, m.keys.Today, m.keys.Week}

	var actions []key.Binding
	if m.state == StateDay {
		actions = []key.Binding{m.keys.Edit, m.keys.WaterUp, m.keys.WaterDown, m.keys.Delete}
	}
	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}
