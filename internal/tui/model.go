// Package tui is the interactive day editor. It holds a transient
// copy of one day document and writes it back wholesale on save.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Vinillian/daily-tracker/internal/autocat"
	"github.com/Vinillian/daily-tracker/internal/models"
)

// tuiMode tracks which input mode we're in.
type tuiMode int

const (
	modeNormal   tuiMode = iota
	modeEditName         // renaming the current task
	modeEditTime         // editing the current task's time range
	modeAddTask          // typing a new task name
	modeAddNote          // typing a new note
)

// SaveFunc persists the edited day. Injected so the editor stays
// storage-agnostic.
type SaveFunc func(*models.Day) error

// position addresses one task inside the day.
type position struct {
	period models.Period
	index  int
}

// Model is the Bubbletea model for the day editor.
type Model struct {
	dateKey string
	day     *models.Day
	save    SaveFunc

	width  int
	height int

	// Cursor over the flattened task list. -1 when the day is empty.
	positions []position
	cursor    int

	mode  tuiMode
	input textinput.Model

	// addPeriod remembers which period a new task lands in.
	addPeriod models.Period

	dirty     bool
	statusMsg string
}

// New creates a day editor for the given day document.
func New(dateKey string, day *models.Day, save SaveFunc) Model {
	ti := textinput.New()
	ti.CharLimit = 200
	ti.Width = 50

	m := Model{
		dateKey:   dateKey,
		day:       day,
		save:      save,
		cursor:    -1,
		input:     ti,
		addPeriod: models.PeriodMorning,
	}
	m.rebuildPositions()
	if len(m.positions) > 0 {
		m.cursor = 0
	}
	return m
}

func (m *Model) rebuildPositions() {
	m.positions = m.positions[:0]
	for _, p := range models.Periods() {
		for i := range m.day.Tasks(p) {
			m.positions = append(m.positions, position{period: p, index: i})
		}
	}
	if m.cursor >= len(m.positions) {
		m.cursor = len(m.positions) - 1
	}
}

// current returns the task under the cursor, or nil.
func (m *Model) current() *models.Task {
	if m.cursor < 0 || m.cursor >= len(m.positions) {
		return nil
	}
	pos := m.positions[m.cursor]
	tasks := m.day.Tasks(pos.period)
	return &tasks[pos.index]
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		m.statusMsg = ""
		if m.mode != modeNormal {
			return m.updateInput(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		if m.dirty {
			if err := m.save(m.day); err != nil {
				m.statusMsg = "save failed: " + err.Error()
				return m, nil
			}
		}
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.positions)-1 {
			m.cursor++
		}

	case key.Matches(msg, keys.Toggle):
		if t := m.current(); t != nil {
			t.Status = t.Status.Next()
			if t.Status == models.StatusDone {
				t.Progress = 100
			}
			m.dirty = true
		}

	case key.Matches(msg, keys.More):
		if t := m.current(); t != nil {
			t.SetProgress(t.Progress + 5)
			m.dirty = true
		}

	case key.Matches(msg, keys.Less):
		if t := m.current(); t != nil {
			t.SetProgress(t.Progress - 5)
			m.dirty = true
		}

	case key.Matches(msg, keys.Category):
		if t := m.current(); t != nil {
			t.Category = nextCategory(t.Category)
			m.dirty = true
		}

	case key.Matches(msg, keys.EditName):
		if t := m.current(); t != nil {
			m.mode = modeEditName
			m.input.Placeholder = "Task name..."
			m.input.SetValue(t.Name)
			return m, m.input.Focus()
		}

	case key.Matches(msg, keys.EditTime):
		if t := m.current(); t != nil {
			m.mode = modeEditTime
			m.input.Placeholder = "07:00–08:00"
			m.input.SetValue(t.Time)
			return m, m.input.Focus()
		}

	case key.Matches(msg, keys.Add):
		m.mode = modeAddTask
		if t := m.current(); t != nil {
			m.addPeriod = m.positions[m.cursor].period
		}
		m.input.Placeholder = "New task name..."
		m.input.SetValue("")
		return m, m.input.Focus()

	case key.Matches(msg, keys.Delete):
		if m.cursor >= 0 && m.cursor < len(m.positions) {
			pos := m.positions[m.cursor]
			tasks := m.day.Tasks(pos.period)
			m.day.SetTasks(pos.period, append(tasks[:pos.index:pos.index], tasks[pos.index+1:]...))
			m.rebuildPositions()
			m.dirty = true
		}

	case key.Matches(msg, keys.Note):
		m.mode = modeAddNote
		m.input.Placeholder = "Note..."
		m.input.SetValue("")
		return m, m.input.Focus()

	case key.Matches(msg, keys.Save):
		if err := m.save(m.day); err != nil {
			m.statusMsg = "save failed: " + err.Error()
		} else {
			m.dirty = false
			m.statusMsg = "saved " + m.dateKey
		}
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		m.mode = modeNormal
		m.input.Blur()
		return m, nil

	case key.Matches(msg, keys.Confirm):
		value := m.input.Value()
		m.input.Blur()
		mode := m.mode
		m.mode = modeNormal
		return m.applyInput(mode, value), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) applyInput(mode tuiMode, value string) Model {
	switch mode {
	case modeEditName:
		if t := m.current(); t != nil && value != "" {
			t.Name = value
			m.dirty = true
		}

	case modeEditTime:
		if t := m.current(); t != nil {
			t.Time = value
			m.dirty = true
		}

	case modeAddTask:
		task, err := models.NewTask(value, "")
		if err != nil {
			m.statusMsg = err.Error()
			return m
		}
		task.Category = autocat.Categorize(task.Name)
		m.day.AddTask(m.addPeriod, task)
		m.rebuildPositions()
		for i, pos := range m.positions {
			if pos.period == m.addPeriod && pos.index == len(m.day.Tasks(m.addPeriod))-1 {
				m.cursor = i
				break
			}
		}
		m.dirty = true

	case modeAddNote:
		if value != "" {
			note := models.NewNote(value)
			m.day.Notes = append(m.day.Notes, note.Text)
			m.statusMsg = "note added at " + note.Time
			m.dirty = true
		}
	}
	return m
}

// nextCategory cycles through the fixed category set.
func nextCategory(current string) string {
	for i, cat := range models.Categories {
		if cat == current {
			return models.Categories[(i+1)%len(models.Categories)]
		}
	}
	return models.Categories[0]
}
