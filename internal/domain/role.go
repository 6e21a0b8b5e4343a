package domain

import (
	"fmt"
	"io"

	"team-tracker/internal/validation"
)

// Role labels, as shown in detail strings and introductions.
const (
	LabelDeveloper = "Developer"
	LabelBackEnd   = "BackEnd Developer"
	LabelFrontEnd  = "FrontEnd Developer"
	LabelFullStack = "FullStack Developer"
	LabelDesigner  = "UI/UX Designer"
	LabelTester    = "QA Tester"
)

// Role is the state every team member shares: a name, a role label and
// an experience level. Fields are only reachable through accessors.
type Role struct {
	name      string
	roleLabel string
	level     Level
}

// NewRole creates a role. The level is stored as given; only SetLevel
// checks it.
func NewRole(name, roleLabel string, level Level) *Role {
	return &Role{
		name:      name,
		roleLabel: roleLabel,
		level:     level,
	}
}

// SetName replaces the name.
func (r *Role) SetName(name string) {
	r.name = name
}

// SetLevel changes the level if it is one of Levels. Otherwise it returns
// an InvalidValue error and the current level is kept.
func (r *Role) SetLevel(level string) error {
	return validation.ValidateField("level", level, LevelNames(), func() {
		r.level = Level(level)
	})
}

// Name returns the name.
func (r *Role) Name() string {
	return r.name
}

// RoleLabel returns the role label.
func (r *Role) RoleLabel() string {
	return r.roleLabel
}

// Level returns the experience level.
func (r *Role) Level() Level {
	return r.level
}

// Details renders the name, label and level on three lines. Tasks store
// this text as the assignee description.
func (r *Role) Details() string {
	return fmt.Sprintf("Name: %s\nRole: %s\nExperience: %s", r.name, r.roleLabel, r.level)
}

// Greeting is the base introduction. Variants extend it.
func (r *Role) Greeting() string {
	return fmt.Sprintf("Hi, my name is %s and I am a %s.", r.name, r.roleLabel)
}

// Introduce writes the greeting as one line to w.
func (r *Role) Introduce(w io.Writer) error {
	return introduce(w, r.Greeting())
}

// Actions is empty for a plain role.
func (r *Role) Actions() []Action {
	return nil
}

func introduce(w io.Writer, greeting string) error {
	_, err := fmt.Fprintln(w, greeting)
	return err
}
