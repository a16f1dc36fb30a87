package models

import "testing"

func TestSectionProgressTruncatingAverage(t *testing.T) {
	s := ProjectSection{Name: "s", Tasks: []ProjectTask{
		{Name: "a", Progress: 100},
		{Name: "b", Progress: 0},
		{Name: "c", Progress: 50},
	}}
	// (100+0+50)/3 = 50
	if got := s.Progress(); got != 50 {
		t.Errorf("Progress() = %d, want 50", got)
	}

	empty := ProjectSection{Name: "empty"}
	if got := empty.Progress(); got != 0 {
		t.Errorf("empty section Progress() = %d, want 0", got)
	}
}

func TestOverallProgressPoolsTasksAcrossSections(t *testing.T) {
	p := Project{
		Metadata: ProjectMetadata{Name: "p"},
		Sections: []ProjectSection{
			{Name: "big", Tasks: []ProjectTask{
				{Name: "a", Progress: 100},
				{Name: "b", Progress: 0},
			}},
			{Name: "small", Tasks: []ProjectTask{
				{Name: "c", Progress: 100},
			}},
		},
	}

	// Section averages are 50 and 100; the average of averages would
	// be 75. Pooled over all three tasks: floor(200/3) = 66. Sections
	// with more tasks must weigh more.
	if got := p.OverallProgress(); got != 66 {
		t.Errorf("OverallProgress() = %d, want 66", got)
	}
}

func TestOverallProgressEmptyProject(t *testing.T) {
	p := Project{Metadata: ProjectMetadata{Name: "p"}}
	if got := p.OverallProgress(); got != 0 {
		t.Errorf("OverallProgress() = %d, want 0", got)
	}
}

func TestProjectValidate(t *testing.T) {
	p := Project{
		Metadata: ProjectMetadata{Name: "p"},
		Sections: []ProjectSection{
			{Name: "s", Tasks: []ProjectTask{{Name: "a", Progress: 101}}},
		},
	}
	if err := p.Validate(); err == nil {
		t.Error("Validate() accepted out-of-range task progress")
	}

	p.Sections[0].Tasks[0].Progress = 100
	if err := p.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}

	p.Overall.StabilityIndex = 200
	if err := p.Validate(); err == nil {
		t.Error("Validate() accepted out-of-range stability index")
	}

	// PerformanceBoost is a delta and may go negative.
	p.Overall.StabilityIndex = 0
	p.Overall.PerformanceBoost = -20
	if err := p.Validate(); err != nil {
		t.Errorf("Validate() rejected negative performance boost: %v", err)
	}
}

func TestSectionByName(t *testing.T) {
	p := Project{Sections: []ProjectSection{{Name: "a"}, {Name: "b"}}}
	if s := p.SectionByName("b"); s == nil || s.Name != "b" {
		t.Error("SectionByName(b) did not find the section")
	}
	if s := p.SectionByName("missing"); s != nil {
		t.Error("SectionByName(missing) returned a section")
	}
}
