package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Vinillian/daily-tracker/internal/diary"
	"github.com/Vinillian/daily-tracker/internal/project"
)

func TestRunMigrate(t *testing.T) {
	dir := t.TempDir()
	diarySvc, err := diary.NewService(filepath.Join(dir, "diary"), filepath.Join(dir, "templates"))
	if err != nil {
		t.Fatal(err)
	}
	projectSvc, err := project.NewService(filepath.Join(dir, "projects"), filepath.Join(dir, "ptmpl"))
	if err != nil {
		t.Fatal(err)
	}

	// A legacy day without categories or identifiers.
	legacyDay := `{"Утро": [{"задача": "Уборка", "время": "", "статус": "☐", "прогресс": 0}]}`
	if err := os.WriteFile(filepath.Join(dir, "diary", "2025-03-01.json"), []byte(legacyDay), 0o644); err != nil {
		t.Fatal(err)
	}
	// A legacy flat project.
	legacyProject := `{"📋 План": {"Шаг 1": 40}}`
	if err := os.WriteFile(filepath.Join(dir, "projects", "hive.json"), []byte(legacyProject), 0o644); err != nil {
		t.Fatal(err)
	}

	output := captureStdout(t, func() {
		if err := runMigrate(diarySvc, projectSvc); err != nil {
			t.Errorf("runMigrate() error: %v", err)
		}
	})
	if !strings.Contains(output, "1 day(s) changed") {
		t.Errorf("migrate output: %q", output)
	}

	// The day file now carries category and identifier.
	data, err := os.ReadFile(filepath.Join(dir, "diary", "2025-03-01.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "категория") || !strings.Contains(string(data), "id") {
		t.Errorf("day not rewritten:\n%s", data)
	}

	// The project file is now sectioned.
	data, err = os.ReadFile(filepath.Join(dir, "projects", "hive.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "sections") {
		t.Errorf("project not rewritten:\n%s", data)
	}
}
