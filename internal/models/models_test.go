package models

import (
	"encoding/json"
	"testing"
)

func TestParseStatusDefaultsToUnchecked(t *testing.T) {
	tests := []struct {
		in   string
		want Status
	}{
		{"✅", StatusDone},
		{"☑️", StatusPartial},
		{"❌", StatusFailed},
		{"☐", StatusUnchecked},
		{"", StatusUnchecked},
		{"nonsense", StatusUnchecked},
	}
	for _, tt := range tests {
		if got := ParseStatus(tt.in); got != tt.want {
			t.Errorf("ParseStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStatusCycle(t *testing.T) {
	order := []Status{StatusUnchecked, StatusDone, StatusPartial, StatusFailed, StatusUnchecked}
	for i := 0; i < len(order)-1; i++ {
		if got := order[i].Next(); got != order[i+1] {
			t.Errorf("%q.Next() = %q, want %q", order[i], got, order[i+1])
		}
	}
}

func TestNewTask(t *testing.T) {
	task, err := NewTask("  Завтрак  ", "07:00–08:00")
	if err != nil {
		t.Fatalf("NewTask() error: %v", err)
	}
	if task.Name != "Завтрак" {
		t.Errorf("name not trimmed: %q", task.Name)
	}
	if task.ID == "" {
		t.Error("task has no identifier")
	}
	if task.Status != StatusUnchecked || task.Progress != 0 {
		t.Errorf("unexpected defaults: status %q progress %d", task.Status, task.Progress)
	}
	if task.Category != DefaultCategory {
		t.Errorf("category = %q, want %q", task.Category, DefaultCategory)
	}
}

func TestNewTaskRejectsEmptyName(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		if _, err := NewTask(name, ""); err == nil {
			t.Errorf("NewTask(%q) succeeded, want error", name)
		}
	}
}

func TestTaskValidateProgressBounds(t *testing.T) {
	for _, p := range []int{0, 1, 50, 99, 100} {
		task := Task{Name: "x", Progress: p}
		if err := task.Validate(); err != nil {
			t.Errorf("Validate() with progress %d: %v", p, err)
		}
	}
	for _, p := range []int{-1, -100, 101, 1000} {
		task := Task{Name: "x", Progress: p}
		if err := task.Validate(); err == nil {
			t.Errorf("Validate() with progress %d succeeded, want error", p)
		}
	}
}

func TestSetProgressClamps(t *testing.T) {
	var task Task
	task.SetProgress(150)
	if task.Progress != 100 {
		t.Errorf("SetProgress(150) = %d, want 100", task.Progress)
	}
	task.SetProgress(-5)
	if task.Progress != 0 {
		t.Errorf("SetProgress(-5) = %d, want 0", task.Progress)
	}
	task.SetProgress(42)
	if task.Progress != 42 {
		t.Errorf("SetProgress(42) = %d, want 42", task.Progress)
	}
}

func TestDayJSONShape(t *testing.T) {
	day := NewDay()
	task, _ := NewTask("Уборка", "10:00–11:00")
	day.AddTask(PeriodMorning, task)
	day.State.Set("💪 Энергия", "75%", ValuePercent)
	day.Notes = append(day.Notes, "хороший день")

	data, err := json.Marshal(day)
	if err != nil {
		t.Fatal(err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"Утро", "День", "Вечер", "Состояние", "Заметки"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("serialized day missing key %q", key)
		}
	}

	var tasks []map[string]any
	if err := json.Unmarshal(raw["Утро"], &tasks); err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 1 {
		t.Fatalf("morning has %d tasks, want 1", len(tasks))
	}
	for _, key := range []string{"задача", "время", "статус", "прогресс", "категория", "id"} {
		if _, ok := tasks[0][key]; !ok {
			t.Errorf("serialized task missing key %q", key)
		}
	}
}

func TestDayStateSetOverwritesInPlace(t *testing.T) {
	var s DayState
	s.Set("💪 Энергия", "50%", ValuePercent)
	s.Set("🧠 Фокус", "7/10", ValueScale)
	s.Set("💪 Энергия", "80%", ValuePercent)

	if len(s.Values) != 2 {
		t.Fatalf("got %d values, want 2 (no duplicates per category)", len(s.Values))
	}
	if v, ok := s.Get("💪 Энергия"); !ok || v != "80%" {
		t.Errorf("Get(Энергия) = %q, %v; want 80%%", v, ok)
	}
	if s.Values[0].Category != "💪 Энергия" {
		t.Error("overwrite changed value ordering")
	}
}

func TestCategoryProgressRoundedMean(t *testing.T) {
	day := NewDay()
	add := func(p Period, category string, progress int) {
		day.AddTask(p, Task{ID: "x", Name: "t", Category: category, Status: StatusUnchecked, Progress: progress})
	}
	add(PeriodMorning, "💼 Работа", 100)
	add(PeriodMidday, "💼 Работа", 33)
	add(PeriodEvening, "🏠 Быт", 10)

	got := day.CategoryProgress()
	// (100+33)/2 = 66.5, rounds to 67.
	if got["💼 Работа"] != 67 {
		t.Errorf("Работа progress = %d, want 67", got["💼 Работа"])
	}
	if got["🏠 Быт"] != 10 {
		t.Errorf("Быт progress = %d, want 10", got["🏠 Быт"])
	}
	if len(got) != 2 {
		t.Errorf("got %d categories, want 2", len(got))
	}
}
