package cmd

import (
	"strings"
	"testing"

	"github.com/Vinillian/daily-tracker/internal/models"
	"github.com/Vinillian/daily-tracker/internal/state"
)

func setupState(t *testing.T) *state.Service {
	t.Helper()
	svc, err := state.NewService(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return svc
}

func TestRunStateListSeeded(t *testing.T) {
	svc := setupState(t)

	output := captureStdout(t, func() {
		if err := runStateList(svc, false); err != nil {
			t.Errorf("runStateList() error: %v", err)
		}
	})
	for _, want := range []string{"💪 Энергия", "🧠 Фокус", "🛌 Качество сна"} {
		if !strings.Contains(output, want) {
			t.Errorf("list output missing %q:\n%s", want, output)
		}
	}
}

func TestRunStateAddAndDelete(t *testing.T) {
	svc := setupState(t)

	captureStdout(t, func() {
		err := runStateAdd(svc, models.StateCategory{
			Name:  "💧 Вода",
			Type:  models.ValuePercent,
			Order: 10,
		})
		if err != nil {
			t.Errorf("runStateAdd() error: %v", err)
		}
	})

	// Adding a name that already exists fails.
	if err := runStateAdd(svc, models.StateCategory{Name: "💧 Вода"}); err == nil {
		t.Error("runStateAdd() accepted a duplicate name")
	}

	captureStdout(t, func() {
		if err := runStateDelete(svc, "💧 Вода"); err != nil {
			t.Errorf("runStateDelete() error: %v", err)
		}
	})

	// Built-in defaults cannot be deleted.
	if err := runStateDelete(svc, "💪 Энергия"); err == nil {
		t.Error("runStateDelete() removed a built-in category")
	}
}

func TestRunStateReorder(t *testing.T) {
	svc := setupState(t)

	captureStdout(t, func() {
		if err := runStateReorder(svc, []string{"😌 Настроение", "💪 Энергия"}); err != nil {
			t.Errorf("runStateReorder() error: %v", err)
		}
	})

	categories, err := svc.LoadCategories()
	if err != nil {
		t.Fatal(err)
	}
	if len(categories) < 2 || categories[0].Name != "😌 Настроение" || categories[1].Name != "💪 Энергия" {
		t.Errorf("reordered categories = %+v", categories)
	}
}
