package models

import (
	"strings"

	trkerr "github.com/Vinillian/daily-tracker/internal/errors"
)

// ProjectTask is a single tracked item within a project section.
type ProjectTask struct {
	Name     string `json:"название"`
	Progress int    `json:"прогресс"`
}

// Validate checks the task's name and progress bounds.
func (t *ProjectTask) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return trkerr.Validation("project task name cannot be empty")
	}
	if t.Progress < 0 || t.Progress > 100 {
		return trkerr.Validation("project task progress must be between 0 and 100")
	}
	return nil
}

// ProjectSection is a named group of project tasks. The name is the
// identity key within its project.
type ProjectSection struct {
	Name  string        `json:"название"`
	Tasks []ProjectTask `json:"задачи"`
}

// Progress returns the truncating integer average of the section's
// task progress, or 0 for an empty section.
func (s *ProjectSection) Progress() int {
	if len(s.Tasks) == 0 {
		return 0
	}
	total := 0
	for _, t := range s.Tasks {
		total += t.Progress
	}
	return total / len(s.Tasks)
}

// ProjectMetadata describes a project document.
type ProjectMetadata struct {
	Name        string `json:"название"`
	Version     string `json:"версия"`
	Date        string `json:"дата"`
	Description string `json:"описание"`
}

// ProjectOverall holds project-wide summary fields. These are
// user-entered, not derived from task progress; only the two
// percentage fields are range-checked. PerformanceBoost is a delta
// and may be negative.
type ProjectOverall struct {
	GlobalProgress   int    `json:"GLOBAL_PROGRESS"`
	StabilityIndex   int    `json:"STABILITY_INDEX"`
	PerformanceBoost int    `json:"PERFORMANCE_BOOST"`
	MobileReady      bool   `json:"MOBILE_READY"`
	WebMode          string `json:"WEB_MODE"`
}

// Validate checks the bounded overall fields.
func (o *ProjectOverall) Validate() error {
	if o.GlobalProgress < 0 || o.GlobalProgress > 100 {
		return trkerr.Validation("global progress must be between 0 and 100")
	}
	if o.StabilityIndex < 0 || o.StabilityIndex > 100 {
		return trkerr.Validation("stability index must be between 0 and 100")
	}
	return nil
}

// Project is one project document.
type Project struct {
	Metadata ProjectMetadata  `json:"metadata"`
	Sections []ProjectSection `json:"sections"`
	Overall  ProjectOverall   `json:"overall"`
}

// Validate checks metadata and every contained task.
func (p *Project) Validate() error {
	if strings.TrimSpace(p.Metadata.Name) == "" {
		return trkerr.Validation("project name cannot be empty")
	}
	if err := p.Overall.Validate(); err != nil {
		return err
	}
	for i := range p.Sections {
		for j := range p.Sections[i].Tasks {
			if err := p.Sections[i].Tasks[j].Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// SectionByName finds a section by its name. Returns nil if not found.
func (p *Project) SectionByName(name string) *ProjectSection {
	for i := range p.Sections {
		if p.Sections[i].Name == name {
			return &p.Sections[i]
		}
	}
	return nil
}

// OverallProgress returns the truncating average of progress across all
// tasks in all sections pooled together. Sections with more tasks weigh
// more; this is intentional and must not be replaced with an
// average of section averages.
func (p *Project) OverallProgress() int {
	totalTasks := 0
	totalProgress := 0
	for _, s := range p.Sections {
		for _, t := range s.Tasks {
			totalTasks++
			totalProgress += t.Progress
		}
	}
	if totalTasks == 0 {
		return 0
	}
	return totalProgress / totalTasks
}
