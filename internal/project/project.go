// Package project owns the project documents and the one-way upgrade
// of the legacy flat document shape into sectioned form.
package project

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	trkerr "github.com/Vinillian/daily-tracker/internal/errors"
	"github.com/Vinillian/daily-tracker/internal/fsjson"
	"github.com/Vinillian/daily-tracker/internal/models"
	"github.com/Vinillian/daily-tracker/internal/validate"
)

// Service reads and writes project documents under a projects
// directory, one JSON file per project named by the project name.
type Service struct {
	dataDir     string
	templateDir string
}

// NewService creates a project service rooted at the given
// directories, creating the data directory if absent.
func NewService(dataDir, templateDir string) (*Service, error) {
	if err := fsjson.EnsureDir(dataDir); err != nil {
		return nil, err
	}
	return &Service{dataDir: dataDir, templateDir: templateDir}, nil
}

func (s *Service) projectPath(name string) string {
	return filepath.Join(s.dataDir, name+".json")
}

// Exists reports whether a project document is stored under the name.
func (s *Service) Exists(name string) bool {
	return fsjson.Exists(s.projectPath(name))
}

// Load reads a project by name, upgrading legacy flat documents to
// the sectioned shape on the way in.
func (s *Service) Load(name string) (*models.Project, error) {
	path := s.projectPath(name)
	if !fsjson.Exists(path) {
		return nil, trkerr.NotFound("project " + name + " not found")
	}

	raw, err := fsjson.LoadRaw(path)
	if err != nil {
		return nil, err
	}
	return Migrate(raw, name)
}

// Save validates the project name as a filename and overwrites the
// document in full.
func (s *Service) Save(name string, p *models.Project) error {
	if !validate.Filename(name) {
		return trkerr.Validation("invalid project name " + name).
			WithHint(`project names may not contain / \ : * ? " < > |`)
	}
	if err := p.Validate(); err != nil {
		return err
	}
	return fsjson.Save(s.projectPath(name), p)
}

// Create returns a new project. With a template name the template
// document is loaded, migrated, and renamed to the new project;
// otherwise a seeded empty project is returned. The caller persists
// it with Save.
func (s *Service) Create(name, templateName string) (*models.Project, error) {
	if !validate.Filename(name) {
		return nil, trkerr.Validation("invalid project name " + name).
			WithHint(`project names may not contain / \ : * ? " < > |`)
	}

	if templateName == "" {
		return emptyProject(name), nil
	}

	templatePath := filepath.Join(s.templateDir, templateName+".json")
	if !fsjson.Exists(templatePath) {
		return nil, trkerr.NotFound("project template " + templateName + " not found")
	}

	raw, err := fsjson.LoadRaw(templatePath)
	if err != nil {
		return nil, err
	}
	p, err := Migrate(raw, name)
	if err != nil {
		return nil, err
	}
	p.Metadata.Name = name
	return p, nil
}

// Delete removes a project document. Deleting an absent project is a
// no-op.
func (s *Service) Delete(name string) error {
	path := s.projectPath(name)
	if !fsjson.Exists(path) {
		return nil
	}
	if err := os.Remove(path); err != nil {
		return trkerr.WrapIO("deleting "+path, err)
	}
	return nil
}

// List returns all stored project names, descending.
func (s *Service) List() ([]string, error) {
	stems, err := fsjson.ListStems(s.dataDir, ".json")
	if err != nil {
		return nil, err
	}
	sort.Sort(sort.Reverse(sort.StringSlice(stems)))
	return stems, nil
}

func emptyProject(name string) *models.Project {
	return &models.Project{
		Metadata: models.ProjectMetadata{
			Name:        name,
			Version:     "v1.0.0",
			Date:        "{{дата}}",
			Description: "Новый проект",
		},
		Sections: []models.ProjectSection{
			{
				Name: "📋 Планирование",
				Tasks: []models.ProjectTask{
					{Name: "Определение требований", Progress: 0},
					{Name: "Проектирование архитектуры", Progress: 0},
				},
			},
		},
		Overall: models.ProjectOverall{
			WebMode: "❌ Not supported",
		},
	}
}

// Migrate parses a raw project document, upgrading the legacy flat
// shape when needed. A document with a top-level "sections" key is
// current-format and parsed as-is; otherwise every other top-level
// object of task-name to numeric progress becomes a section, in the
// order the document lists its keys. Migration only ever upgrades.
func Migrate(raw []byte, name string) (*models.Project, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, trkerr.WrapValidation("migrating project "+name, err)
	}

	if _, ok := probe["sections"]; ok {
		var p models.Project
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, trkerr.WrapValidation("migrating project "+name, err)
		}
		if p.Sections == nil {
			p.Sections = []models.ProjectSection{}
		}
		return &p, nil
	}

	p := &models.Project{
		Metadata: models.ProjectMetadata{
			Name:    name,
			Version: "v1.0.0",
			Date:    "{{дата}}",
		},
		Sections: []models.ProjectSection{},
	}
	if rawMeta, ok := probe["metadata"]; ok {
		if err := json.Unmarshal(rawMeta, &p.Metadata); err != nil {
			return nil, trkerr.WrapValidation("migrating project "+name, err)
		}
		if p.Metadata.Name == "" {
			p.Metadata.Name = name
		}
	}
	if rawOverall, ok := probe["overall"]; ok {
		if err := json.Unmarshal(rawOverall, &p.Overall); err != nil {
			return nil, trkerr.WrapValidation("migrating project "+name, err)
		}
	}

	keys, err := topLevelKeys(raw)
	if err != nil {
		return nil, trkerr.WrapValidation("migrating project "+name, err)
	}

	for _, key := range keys {
		if key == "metadata" || key == "overall" {
			continue
		}
		var flat map[string]any
		if err := json.Unmarshal(probe[key], &flat); err != nil {
			// Not an object; skip it.
			continue
		}

		// Task order inside the section follows the document too.
		taskNames, err := topLevelKeys(probe[key])
		if err != nil {
			return nil, trkerr.WrapValidation("migrating project "+name, err)
		}

		tasks := make([]models.ProjectTask, 0, len(flat))
		for _, taskName := range taskNames {
			progress, ok := flat[taskName].(float64)
			if !ok {
				// Only numeric entries are task progress values.
				continue
			}
			tasks = append(tasks, models.ProjectTask{
				Name:     taskName,
				Progress: int(progress),
			})
		}
		if len(tasks) > 0 {
			p.Sections = append(p.Sections, models.ProjectSection{Name: key, Tasks: tasks})
		}
	}

	return p, nil
}

// topLevelKeys returns the top-level object keys of a JSON document
// in the order they appear. encoding/json maps drop ordering, so the
// keys are scanned off the token stream instead.
func topLevelKeys(raw []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("document is not a JSON object")
	}

	var keys []string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", keyTok)
		}
		keys = append(keys, key)

		if err := skipValue(dec); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	d, ok := tok.(json.Delim)
	if !ok || (d != '{' && d != '[') {
		return nil
	}

	for dec.More() {
		if d == '{' {
			if _, err := dec.Token(); err != nil { // key
				return err
			}
		}
		if err := skipValue(dec); err != nil {
			return err
		}
	}
	_, err = dec.Token() // closing delimiter
	return err
}
