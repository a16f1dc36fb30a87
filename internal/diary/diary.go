// Package diary owns the day documents: load, save, create, copy,
// list, and the load-time migration that upgrades older document
// shapes to the current one.
package diary

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"

	"github.com/Vinillian/daily-tracker/internal/autocat"
	trkerr "github.com/Vinillian/daily-tracker/internal/errors"
	"github.com/Vinillian/daily-tracker/internal/fsjson"
	"github.com/Vinillian/daily-tracker/internal/models"
	"github.com/Vinillian/daily-tracker/internal/validate"
)

// Service reads and writes day documents under a diary directory,
// one JSON file per day named by its date key.
type Service struct {
	dataDir     string
	templateDir string
}

// NewService creates a diary service rooted at the given directories,
// creating the data directory if absent.
func NewService(dataDir, templateDir string) (*Service, error) {
	if err := fsjson.EnsureDir(dataDir); err != nil {
		return nil, err
	}
	return &Service{dataDir: dataDir, templateDir: templateDir}, nil
}

func (s *Service) dayPath(dateKey string) string {
	return filepath.Join(s.dataDir, dateKey+".json")
}

// Exists reports whether a day document is stored for the date key.
func (s *Service) Exists(dateKey string) bool {
	return fsjson.Exists(s.dayPath(dateKey))
}

// Load reads the day for a date key and runs the migration pass over
// it, so callers always see the current document shape.
func (s *Service) Load(dateKey string) (*models.Day, error) {
	path := s.dayPath(dateKey)
	if !fsjson.Exists(path) {
		return nil, trkerr.NotFound("day " + dateKey + " not found").
			WithHint("run `day create " + dateKey + "` to start it")
	}

	var day models.Day
	if err := fsjson.Load(path, &day); err != nil {
		return nil, err
	}
	Migrate(&day)
	return &day, nil
}

// Save validates the date key and overwrites the day's document in
// full. This is the only persistence primitive: every edit rewrites
// the whole file.
func (s *Service) Save(dateKey string, day *models.Day) error {
	if !validate.DateKey(dateKey) {
		return trkerr.Validation("invalid date key " + dateKey).
			WithHint("dates use the YYYY-MM-DD format")
	}
	for _, t := range day.AllTasks() {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return fsjson.Save(s.dayPath(dateKey), day)
}

// Create returns a new day for the date key. With a template name it
// loads the template document and migrates it; otherwise the day is
// empty. The caller persists it with Save.
func (s *Service) Create(dateKey, templateName string) (*models.Day, error) {
	if !validate.DateKey(dateKey) {
		return nil, trkerr.Validation("invalid date key " + dateKey).
			WithHint("dates use the YYYY-MM-DD format")
	}

	if templateName == "" {
		return models.NewDay(), nil
	}

	templatePath := filepath.Join(s.templateDir, templateName+".json")
	if !fsjson.Exists(templatePath) {
		return nil, trkerr.NotFound("template " + templateName + " not found")
	}

	var day models.Day
	if err := fsjson.Load(templatePath, &day); err != nil {
		return nil, err
	}
	// Templates go through the same migration as stored days, so they
	// need not be pre-migrated.
	Migrate(&day)
	return &day, nil
}

// SaveTemplate stores an existing day document verbatim as a reusable
// template; Create runs templates through the migration pass, so no
// normalization happens here.
func (s *Service) SaveTemplate(dateKey, name string) error {
	if !validate.Filename(name) {
		return trkerr.Validation("invalid template name " + name).
			WithHint("template names cannot contain path separators")
	}
	if !s.Exists(dateKey) {
		return trkerr.NotFound("day " + dateKey + " not found")
	}
	if err := fsjson.EnsureDir(s.templateDir); err != nil {
		return err
	}
	return fsjson.CopyFile(s.dayPath(dateKey), filepath.Join(s.templateDir, name+".json"))
}

// Copy carries the source day's task structure over to the target
// date: identity, name, time and category survive, completion does
// not. State and notes start empty.
func (s *Service) Copy(sourceKey, targetKey string) error {
	day, err := s.Load(sourceKey)
	if err != nil {
		return err
	}

	for _, p := range models.Periods() {
		tasks := day.Tasks(p)
		for i := range tasks {
			tasks[i].Progress = 0
			tasks[i].Status = models.StatusUnchecked
		}
	}
	day.State = models.DayState{Values: []models.StateValue{}}
	day.Notes = []string{}

	return s.Save(targetKey, day)
}

// List returns all stored date keys, most recent first.
func (s *Service) List() ([]string, error) {
	stems, err := fsjson.ListStems(s.dataDir, ".json")
	if err != nil {
		return nil, err
	}
	sort.Sort(sort.Reverse(sort.StringSlice(stems)))
	return stems, nil
}

// Delete removes a day document. Removing an absent day is a no-op.
func (s *Service) Delete(dateKey string) error {
	path := s.dayPath(dateKey)
	if !fsjson.Exists(path) {
		return nil
	}
	if err := os.Remove(path); err != nil {
		return trkerr.WrapIO("deleting "+path, err)
	}
	return nil
}

// MigrateAll rewrites every stored day through the migration pass and
// returns the date keys whose documents changed shape.
func (s *Service) MigrateAll() ([]string, error) {
	keys, err := s.List()
	if err != nil {
		return nil, err
	}

	var changed []string
	for _, key := range keys {
		path := s.dayPath(key)
		var day models.Day
		if err := fsjson.Load(path, &day); err != nil {
			return changed, err
		}
		if !Migrate(&day) {
			continue
		}
		if err := s.Save(key, &day); err != nil {
			return changed, err
		}
		changed = append(changed, key)
	}
	return changed, nil
}

// Migrate upgrades a decoded day to the current shape: the three
// periods, state and notes are always present, every task has a
// category (auto-suggested from its name when missing) and a stable
// identifier, and progress is clamped. It reports whether anything
// changed; re-running it on a migrated day is a no-op.
func Migrate(day *models.Day) bool {
	changed := false

	if day.Morning == nil {
		day.Morning = []models.Task{}
		changed = true
	}
	if day.Midday == nil {
		day.Midday = []models.Task{}
		changed = true
	}
	if day.Evening == nil {
		day.Evening = []models.Task{}
		changed = true
	}
	if day.State.Values == nil {
		day.State.Values = []models.StateValue{}
		changed = true
	}
	if day.Notes == nil {
		day.Notes = []string{}
		changed = true
	}

	for _, p := range models.Periods() {
		tasks := day.Tasks(p)
		for i := range tasks {
			if tasks[i].Category == "" {
				tasks[i].Category = autocat.Categorize(tasks[i].Name)
				changed = true
			}
			if tasks[i].ID == "" {
				tasks[i].ID = uuid.NewString()
				changed = true
			}
			if tasks[i].Status == "" {
				tasks[i].Status = models.StatusUnchecked
				changed = true
			}
			if tasks[i].Progress < 0 || tasks[i].Progress > 100 {
				tasks[i].SetProgress(tasks[i].Progress)
				changed = true
			}
		}
	}
	return changed
}
