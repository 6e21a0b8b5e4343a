package scenario

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"team-tracker/internal/errors"
	"team-tracker/internal/format"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	s := Default()

	require.NoError(t, s.Validate())
	assert.Len(t, s.Members, 5)
	assert.Equal(t, "Homepage", s.Task.Name)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")

	require.NoError(t, Save(path, Default()))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), loaded)
}

func TestParse(t *testing.T) {
	doc := `
version: 1
task:
  name: Checkout
  start_date: 01-11-2024
  end_date: 08-11-2024
members:
  - kind: tester
    name: Bo
    level: Middle
    action: rununittests
  - kind: developer
    name: Cy
    level: Intern
`
	s, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "08-11-2024", s.Task.EndDate)
	require.Len(t, s.Members, 2)
	assert.Equal(t, "rununittests", s.Members[0].Action)
	assert.Empty(t, s.Members[1].Action)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(*Scenario)
		contains     string
		invalidValue bool
	}{
		{"missing task name", func(s *Scenario) { s.Task.Name = " " }, "task: name is required", false},
		{"no members", func(s *Scenario) { s.Members = nil }, "at least one member", false},
		{"blank member name", func(s *Scenario) { s.Members[1].Name = "" }, "member 2: name is required", false},
		{"unknown level", func(s *Scenario) { s.Members[0].Level = "Lead" }, `member 1: level "Lead"`, true},
		{"unknown kind", func(s *Scenario) { s.Members[2].Kind = "manager" }, `member 3: kind "manager"`, true},
		{"action of another role", func(s *Scenario) { s.Members[4].Action = "CreateUi" }, `member 5: action "CreateUi"`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(s)

			err := s.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
			assert.Equal(t, tt.invalidValue, errors.IsInvalidValue(err))
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("task: [unclosed"))
	assert.ErrorContains(t, err, "parse scenario")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read scenario")
}

func TestRun_Default(t *testing.T) {
	var buf bytes.Buffer
	now := time.Date(2024, 10, 31, 17, 0, 0, 0, time.UTC)

	report, err := Run(&buf, Default(), format.New(nil, ""), now)
	require.NoError(t, err)

	out := buf.String()
	lines := strings.Split(out, "\n")
	assert.Equal(t, "Hi, my name is John Doe and I am a FrontEnd Developer. I love to create beautiful user interfaces.", lines[0])
	assert.Equal(t, "Hi, my name is John Doe and I am a QA Tester. I love to test user interfaces.", lines[4])

	assert.Equal(t, 1, strings.Count(out, "TASK DETAILS"))
	assert.Equal(t, 1, strings.Count(out, "REPORT DETAILS"))
	assert.Contains(t, out, "Name: John Doe\nRole: FrontEnd Developer\nExperience: Senior\nStatus: Implement UI Components")
	assert.Contains(t, out, "Name: John Doe\nRole: BackEnd Developer\nExperience: Senior\nStatus: Create Database")
	assert.Contains(t, out, "Name: John Doe\nRole: FullStack Developer\nExperience: Senior\nStatus: Implement User Interactions")
	assert.Contains(t, out, "Name: John Doe\nRole: UI/UX Designer\nExperience: Junior\nStatus: Create Wireframes")
	assert.Contains(t, out, "Name: John Doe\nRole: QA Tester\nExperience: Senior\nStatus: Run Integration Tests")
	assert.True(t, strings.HasSuffix(out, "Reported at: October 31, 2024 at 5:00 PM\n\n\n"))

	require.NotNil(t, report)
	assert.Len(t, report.Task.Assignees, 5)
	assert.Equal(t, now, report.ReportDate)
}

func TestRun_TaskDetailsPrintedBeforeStatuses(t *testing.T) {
	var buf bytes.Buffer

	_, err := Run(&buf, Default(), format.New(nil, ""), time.Now())
	require.NoError(t, err)

	out := buf.String()
	taskPart := out[:strings.Index(out, "REPORT DETAILS")]
	assert.NotContains(t, taskPart, "Status:")
}

func TestRun_Invalid(t *testing.T) {
	s := Default()
	s.Members[0].Kind = "manager"

	var buf bytes.Buffer
	_, err := Run(&buf, s, format.New(nil, ""), time.Now())
	assert.Error(t, err)
	assert.Empty(t, buf.String())
}
