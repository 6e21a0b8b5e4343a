// Package scenario describes a team working on one task as a YAML
// document and plays it back in memory.
package scenario

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"team-tracker/internal/domain"
	"team-tracker/internal/format"
	"team-tracker/internal/validation"

	"gopkg.in/yaml.v3"
)

// Scenario is the root of a scenario file.
type Scenario struct {
	Version int          `yaml:"version"`
	Task    TaskSpec     `yaml:"task"`
	Members []MemberSpec `yaml:"members"`
}

// TaskSpec is the task every member is assigned to.
type TaskSpec struct {
	Name      string `yaml:"name"`
	StartDate string `yaml:"start_date"`
	EndDate   string `yaml:"end_date"`
}

// MemberSpec is one team member and the action whose result becomes
// its report status. An empty action leaves the status unset.
type MemberSpec struct {
	Kind   string `yaml:"kind"`
	Name   string `yaml:"name"`
	Level  string `yaml:"level"`
	Action string `yaml:"action,omitempty"`
}

// Default returns the sample team: three developers, a designer and a
// tester working on the homepage.
func Default() *Scenario {
	return &Scenario{
		Version: 1,
		Task: TaskSpec{
			Name:      "Homepage",
			StartDate: "24-10-2024",
			EndDate:   "31-10-2024",
		},
		Members: []MemberSpec{
			{Kind: string(domain.KindFrontEnd), Name: "John Doe", Level: "Senior", Action: "CreateUi"},
			{Kind: string(domain.KindBackEnd), Name: "John Doe", Level: "Senior", Action: "CreateDb"},
			{Kind: string(domain.KindFullStack), Name: "John Doe", Level: "Senior", Action: "CreateUx"},
			{Kind: string(domain.KindDesigner), Name: "John Doe", Level: "Junior", Action: "CreateWireframes"},
			{Kind: string(domain.KindTester), Name: "John Doe", Level: "Senior", Action: "RunIntegrationTests"},
		},
	}
}

// Load reads, parses and validates the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a scenario document.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Save writes the scenario to path.
func Save(path string, s *Scenario) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal scenario: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the task name and every member's kind, level and
// action. Kind, level and action failures wrap InvalidValue errors.
func (s *Scenario) Validate() error {
	if strings.TrimSpace(s.Task.Name) == "" {
		return fmt.Errorf("task: name is required")
	}
	if len(s.Members) == 0 {
		return fmt.Errorf("at least one member is required")
	}

	for i, ms := range s.Members {
		if strings.TrimSpace(ms.Name) == "" {
			return fmt.Errorf("member %d: name is required", i+1)
		}
		if err := validation.ValidateField("level", ms.Level, domain.LevelNames(), nil); err != nil {
			return fmt.Errorf("member %d: level %q: %w", i+1, ms.Level, err)
		}
		member, err := ms.Build()
		if err != nil {
			return fmt.Errorf("member %d: kind %q: %w", i+1, ms.Kind, err)
		}
		if ms.Action != "" {
			if _, err := domain.PerformAction(member, ms.Action); err != nil {
				return fmt.Errorf("member %d: action %q: %w", i+1, ms.Action, err)
			}
		}
	}
	return nil
}

// Build creates the described member.
func (ms MemberSpec) Build() (domain.Member, error) {
	return domain.NewMember(domain.RoleKind(ms.Kind), ms.Name, domain.Level(ms.Level))
}

// Run plays the scenario: every member introduces itself, the task is
// assigned and printed, then a report dated now records each member's
// action and is printed.
func Run(w io.Writer, s *Scenario, f *format.Formatter, now time.Time) (*domain.Report, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	members := make([]domain.Member, len(s.Members))
	for i, ms := range s.Members {
		member, err := ms.Build()
		if err != nil {
			return nil, err
		}
		members[i] = member
		if err := member.Introduce(w); err != nil {
			return nil, err
		}
	}

	task := domain.NewTask(s.Task.Name, s.Task.StartDate, s.Task.EndDate)
	for _, member := range members {
		task.AddTaskDescription(member.Details())
	}
	if _, err := fmt.Fprintln(w, f.TaskDetails(task)); err != nil {
		return nil, err
	}

	report := domain.NewReportAt(task, now)
	for i, member := range members {
		if s.Members[i].Action == "" {
			continue
		}
		status, err := domain.PerformAction(member, s.Members[i].Action)
		if err != nil {
			return nil, err
		}
		report.UpdateReport(member.Details(), status)
	}
	if _, err := fmt.Fprintln(w, f.ReportDetails(report)); err != nil {
		return nil, err
	}

	return report, nil
}
