package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Uniqwrites1/bible-reader/internal/catalog"
	"github.com/Uniqwrites1/bible-reader/internal/models"
	"github.com/Uniqwrites1/bible-reader/internal/progress"
)

// Model browses a single plan day by day and toggles reading completion.
type Model struct {
	plan     models.ReadingPlan
	ledger   *progress.Ledger
	catalog  *catalog.Catalog
	record   models.ProgressRecord
	day      int // 1-based
	cursor   int // index into the day's visible sections
	keys     KeyMap
	help     help.Model
	err      error
	width    int
	height   int
	quitting bool
}

func NewModel(plan models.ReadingPlan, ledger *progress.Ledger, cat *catalog.Catalog) Model {
	day := 1
	if d, ok := plan.DayFor(time.Now().Format("2006-01-02")); ok {
		day = d
	}
	record, err := ledger.Record(plan.ID)

	return Model{
		plan:    plan,
		ledger:  ledger,
		catalog: cat,
		record:  record,
		day:     day,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		err:     err,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// daySections returns the current day's sections in catalog order.
func (m Model) daySections() []catalog.Section {
	daily := m.plan.Readings[m.day-1]
	var secs []catalog.Section
	for _, sec := range m.catalog.Sections() {
		if _, ok := daily.Sections[sec.ID]; ok {
			secs = append(secs, sec)
		}
	}
	return secs
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.PrevDay):
			if m.day > 1 {
				m.day--
				m.cursor = 0
			}
		case key.Matches(msg, m.keys.NextDay):
			if m.day < m.plan.Duration {
				m.day++
				m.cursor = 0
			}
		case key.Matches(msg, m.keys.Today):
			if d, ok := m.plan.DayFor(time.Now().Format("2006-01-02")); ok {
				m.day = d
				m.cursor = 0
			}
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.daySections())-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Toggle):
			m.toggleCurrent()
		}
	}

	return m, nil
}

func (m *Model) toggleCurrent() {
	secs := m.daySections()
	if m.cursor >= len(secs) {
		return
	}
	id := secs[m.cursor].ID

	var err error
	if m.record.Has(m.day, id) {
		err = m.ledger.MarkIncomplete(m.plan.ID, m.day, id)
	} else {
		err = m.ledger.MarkComplete(m.plan.ID, m.day, id)
	}
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.record, m.err = m.ledger.Record(m.plan.ID)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	daily := m.plan.Readings[m.day-1]
	header := titleStyle.Render(m.plan.Name) + "  " +
		subtleStyle.Render(fmt.Sprintf("day %d/%d — %s", m.day, m.plan.Duration, daily.Date))

	var rows []string
	secs := m.daySections()
	if len(secs) == 0 {
		rows = append(rows, subtleStyle.Render("  Nothing left to read — all sections finished."))
	}
	for i, sec := range secs {
		rng := daily.Sections[sec.ID]
		mark := "[ ]"
		style := itemStyle
		if m.record.Has(m.day, sec.ID) {
			mark = "[x]"
			style = doneStyle
		}
		line := fmt.Sprintf("%s %-14s %s", mark, sec.Name, rng.Reference)
		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = style.Render("  " + line)
		}
		rows = append(rows, line)
	}

	body := lipgloss.JoinVertical(lipgloss.Left, rows...)

	status := ""
	if m.err != nil {
		status = errorStyle.Render("error: " + m.err.Error())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		"",
		body,
		"",
		status,
		m.help.View(m.keys),
	)
}
