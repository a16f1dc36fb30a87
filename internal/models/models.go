package models

import (
	"strings"

	"github.com/google/uuid"

	trkerr "github.com/Vinillian/daily-tracker/internal/errors"
)

// Status represents the completion state of a task, stored as the
// same glyph the documents have always used on disk.
type Status string

const (
	StatusUnchecked Status = "☐"
	StatusDone      Status = "✅"
	StatusPartial   Status = "☑️"
	StatusFailed    Status = "❌"
)

// ParseStatus converts a string to a Status, defaulting to StatusUnchecked
// for unknown values.
func ParseStatus(s string) Status {
	switch Status(s) {
	case StatusUnchecked, StatusDone, StatusPartial, StatusFailed:
		return Status(s)
	default:
		return StatusUnchecked
	}
}

// Icon returns a colored indicator for the status.
func (s Status) Icon() string {
	switch s {
	case StatusDone:
		return "🟢"
	case StatusPartial:
		return "🟡"
	case StatusFailed:
		return "🔴"
	default:
		return "⚪"
	}
}

// Next cycles to the following status, wrapping back to unchecked.
func (s Status) Next() Status {
	switch s {
	case StatusUnchecked:
		return StatusDone
	case StatusDone:
		return StatusPartial
	case StatusPartial:
		return StatusFailed
	default:
		return StatusUnchecked
	}
}

// Period is one of the three fixed day segments tasks are grouped under.
// The values are the on-disk document keys.
type Period string

const (
	PeriodMorning Period = "Утро"
	PeriodMidday  Period = "День"
	PeriodEvening Period = "Вечер"
)

// Periods returns the three day periods in display order.
func Periods() []Period {
	return []Period{PeriodMorning, PeriodMidday, PeriodEvening}
}

// Icon returns the display icon for a period.
func (p Period) Icon() string {
	switch p {
	case PeriodMorning:
		return "🌅"
	case PeriodMidday:
		return "🌞"
	case PeriodEvening:
		return "🌇"
	default:
		return ""
	}
}

// ParsePeriod converts a string to a Period. Returns false for unknown values.
func ParsePeriod(s string) (Period, bool) {
	switch Period(s) {
	case PeriodMorning, PeriodMidday, PeriodEvening:
		return Period(s), true
	default:
		return "", false
	}
}

// DefaultCategory is assigned to tasks with no explicit or inferred category.
const DefaultCategory = "🏠 Быт"

// Categories is the closed set of task categories.
var Categories = []string{
	"🩺 Здоровье", "💼 Работа", "📚 Обучение",
	"🧘 Практики", "🏠 Быт", "🎭 Отдых",
	"👥 Общение", "💖 Отношения", "🌱 Развитие",
	"🎨 Творчество", "🏃 Спорт", "🙏 Духовное",
	"💰 Финансы", "🚀 Проекты", "🌍 Путешествия",
}

// Task is a single planned item within a day period.
type Task struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"задача"`
	Time     string `json:"время"`
	Status   Status `json:"статус"`
	Progress int    `json:"прогресс"`
	Category string `json:"категория,omitempty"`
}

// NewTask creates a task with a fresh identifier and default state.
// The name must not be empty or whitespace-only.
func NewTask(name, timeRange string) (Task, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Task{}, trkerr.Validation("task name cannot be empty")
	}
	return Task{
		ID:       uuid.NewString(),
		Name:     name,
		Time:     timeRange,
		Status:   StatusUnchecked,
		Progress: 0,
		Category: DefaultCategory,
	}, nil
}

// Validate checks the task's required fields and progress bounds.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return trkerr.Validation("task name cannot be empty")
	}
	if t.Progress < 0 || t.Progress > 100 {
		return trkerr.Validation("task progress must be between 0 and 100")
	}
	return nil
}

// SetProgress assigns progress clamped to [0,100].
func (t *Task) SetProgress(p int) {
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	t.Progress = p
}

// Day is one diary document: tasks grouped by period, the day's
// wellbeing state, and free-form notes.
type Day struct {
	Morning []Task   `json:"Утро"`
	Midday  []Task   `json:"День"`
	Evening []Task   `json:"Вечер"`
	State   DayState `json:"Состояние"`
	Notes   []string `json:"Заметки"`
}

// NewDay returns an empty day with all three periods present.
func NewDay() *Day {
	return &Day{
		Morning: []Task{},
		Midday:  []Task{},
		Evening: []Task{},
		State:   DayState{Values: []StateValue{}},
		Notes:   []string{},
	}
}

// Tasks returns the ordered task sequence for a period.
func (d *Day) Tasks(p Period) []Task {
	switch p {
	case PeriodMorning:
		return d.Morning
	case PeriodMidday:
		return d.Midday
	case PeriodEvening:
		return d.Evening
	default:
		return nil
	}
}

// SetTasks replaces the task sequence for a period.
func (d *Day) SetTasks(p Period, tasks []Task) {
	switch p {
	case PeriodMorning:
		d.Morning = tasks
	case PeriodMidday:
		d.Midday = tasks
	case PeriodEvening:
		d.Evening = tasks
	}
}

// AddTask appends a task to the given period.
func (d *Day) AddTask(p Period, t Task) {
	d.SetTasks(p, append(d.Tasks(p), t))
}

// AllTasks returns every task of the day in period order.
func (d *Day) AllTasks() []Task {
	all := make([]Task, 0, len(d.Morning)+len(d.Midday)+len(d.Evening))
	all = append(all, d.Morning...)
	all = append(all, d.Midday...)
	all = append(all, d.Evening...)
	return all
}

// CategoryProgress computes the rounded mean progress per category
// across all periods. Categories with no tasks are absent from the result.
func (d *Day) CategoryProgress() map[string]int {
	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, t := range d.AllTasks() {
		sums[t.Category] += t.Progress
		counts[t.Category]++
	}

	result := make(map[string]int, len(sums))
	for cat, sum := range sums {
		n := counts[cat]
		// Rounded, not truncated: the summary view has always shown
		// the nearest whole percent.
		result[cat] = (sum + n/2) / n
	}
	return result
}
