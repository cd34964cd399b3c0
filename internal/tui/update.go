package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/dayjournal/internal/cli"
	"github.com/julianstephens/dayjournal/internal/constants"
	"github.com/julianstephens/dayjournal/internal/logger"
	"github.com/julianstephens/dayjournal/internal/tui/components/entryform"
	"github.com/julianstephens/dayjournal/internal/tui/components/history"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.dayModel.SetSize(msg.Width-4, msg.Height-6)
		m.historyModel.SetSize(msg.Width-4, msg.Height-6)
		return m, nil
	}

	switch m.state {
	case StateEditing:
		return m, m.updateEditing(msg)
	case StateConfirmDelete:
		m.updateConfirmDelete(msg)
		return m, nil
	}

	switch msg := msg.(type) {
	case history.OpenEntryMsg:
		m.focus(msg.Date)
		m.state = StateDay
		return m, nil
	case history.EditEntryMsg:
		return m, m.startEdit(msg.Date)
	case history.DeleteEntryMsg:
		m.confirmDelete(msg.Date)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % SessionState(len(tabTitles))
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + SessionState(len(tabTitles))) % SessionState(len(tabTitles))
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

		if m.state == StateHistory {
			var cmd tea.Cmd
			m.historyModel, cmd = m.historyModel.Update(msg)
			return m, cmd
		}

		switch {
		case key.Matches(msg, m.keys.Prev):
			m.move(-1)
		case key.Matches(msg, m.keys.Next):
			m.move(1)
		case key.Matches(msg, m.keys.Today):
			m.focus(m.ctx.Today())
		case key.Matches(msg, m.keys.Week):
			if m.state == StateWeek {
				m.state = StateMonth
			} else {
				m.state = StateWeek
			}
		case key.Matches(msg, m.keys.Edit):
			return m, m.startEdit(m.date())
		case key.Matches(msg, m.keys.WaterUp):
			m.addWater(1)
		case key.Matches(msg, m.keys.WaterDown):
			m.addWater(-1)
		case key.Matches(msg, m.keys.Delete):
			if m.state == StateDay && m.dayModel.Found {
				m.confirmDelete(m.date())
			}
		default:
			if m.state == StateDay {
				var cmd tea.Cmd
				m.dayModel, cmd = m.dayModel.Update(msg)
				return m, cmd
			}
		}
	}

	return m, nil
}

// move steps the focused day by one unit of the current tab.
func (m *Model) move(n int) {
	switch m.state {
	case StateMonth:
		m.ref = shiftMonth(m.ref, n)
	case StateWeek:
		m.ref = m.ref.AddDate(0, 0, 7*n)
	default:
		m.ref = m.ref.AddDate(0, 0, n)
	}
	m.refresh()
}

func (m *Model) focus(date string) {
	t, err := time.ParseInLocation(constants.DateFormat, date, time.Local)
	if err != nil {
		m.status = "⚠ " + err.Error()
		return
	}
	m.ref = t
	m.refresh()
}

func (m *Model) addWater(delta int) {
	c := m.ctx
	entry, err := c.Journal.GetEntry(c.Ctx, m.date())
	if err != nil {
		m.status = "⚠ " + err.Error()
		return
	}
	entry.WaterIntake = max(constants.MinWaterIntake, min(constants.MaxWaterIntake, entry.WaterIntake+delta))
	if err := c.Journal.Put(c.Ctx, entry); err != nil {
		m.status = "⚠ " + err.Error()
		return
	}
	m.refresh()
}

func (m *Model) startEdit(date string) tea.Cmd {
	entry, err := m.ctx.Journal.GetEntry(m.ctx.Ctx, date)
	if err != nil {
		m.status = "⚠ " + err.Error()
		return nil
	}
	m.editDate = date
	m.entryForm = entryform.NewModel(entry)
	m.form = entryform.New(cli.DisplayDate(date), m.entryForm)
	m.previousState = m.state
	m.state = StateEditing
	return m.form.Init()
}

func (m *Model) updateEditing(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.previousState
		return nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		entry, err := m.entryForm.Entry(m.editDate)
		if err == nil {
			err = m.ctx.Journal.Put(m.ctx.Ctx, entry)
		}
		if err != nil {
			// Stay in the form so the user can fix the input
			m.status = "⚠ " + err.Error()
			m.form.State = huh.StateNormal
			return cmd
		}
		logger.Debug("Saved entry from TUI", "date", m.editDate)
		m.state = m.previousState
		m.focus(m.editDate)
	case huh.StateAborted:
		m.state = m.previousState
	}
	return cmd
}

func (m *Model) confirmDelete(date string) {
	m.deleteDate = date
	m.previousState = m.state
	m.state = StateConfirmDelete
}

func (m *Model) updateConfirmDelete(msg tea.Msg) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return
	}
	switch keyMsg.String() {
	case "y", "Y":
		if err := m.ctx.Journal.Delete(m.ctx.Ctx, m.deleteDate); err != nil {
			m.status = "⚠ " + err.Error()
		} else {
			m.refresh()
		}
		m.deleteDate = ""
		m.state = m.previousState
	case "n", "N", "esc", "q":
		m.deleteDate = ""
		m.state = m.previousState
	}
}
