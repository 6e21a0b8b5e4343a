package domain

import (
	"io"
	"strings"
	"time"

	"team-tracker/internal/errors"
	"team-tracker/internal/validation"
)

// Member is implemented by every role variant.
type Member interface {
	Name() string
	SetName(name string)
	RoleLabel() string
	Level() Level
	SetLevel(level string) error
	Details() string
	Greeting() string
	Introduce(w io.Writer) error
	Actions() []Action
}

// Action is a named unit of work a member can perform. Run returns the
// phrase describing the work.
type Action struct {
	Name string
	Run  func() string
}

// ServerBuilder is implemented by members doing backend work.
type ServerBuilder interface {
	SetUpServer() string
	CreateDb() string
	CreateBusinessLogic() string
}

// InterfaceBuilder is implemented by members doing frontend work.
type InterfaceBuilder interface {
	CreateUi() string
	CreateUx() string
	CreateStyle() string
}

// PullRequestFlow is the delivery workflow shared by all developers.
type PullRequestFlow interface {
	CreateIntegration() string
	CreatePR() string
	OnReview() string
	OnTesting() string
	RejectPR() string
	ApprovePR() string
	CreateDeployment() string
}

// DesignProducer is implemented by designers.
type DesignProducer interface {
	CreateWireframes() string
	CreateDesign() string
	CreatePrototypes() string
	CreateSystemArchitecture() string
}

// TestRunner is implemented by testers.
type TestRunner interface {
	RunUnitTests() string
	RunIntegrationTests() string
	RunPerformanceTests() string
}

// RoleKind identifies a member variant in storage and on the command line.
type RoleKind string

const (
	KindFrontEnd  RoleKind = "frontend"
	KindBackEnd   RoleKind = "backend"
	KindFullStack RoleKind = "fullstack"
	KindDesigner  RoleKind = "designer"
	KindTester    RoleKind = "tester"
	KindDeveloper RoleKind = "developer"
)

// Kinds returns every member kind.
func Kinds() []RoleKind {
	return []RoleKind{KindFrontEnd, KindBackEnd, KindFullStack, KindDesigner, KindTester, KindDeveloper}
}

// KindNames returns the kinds as plain strings.
func KindNames() []string {
	kinds := Kinds()
	names := make([]string, len(kinds))
	for i, kind := range kinds {
		names[i] = string(kind)
	}
	return names
}

// NewMember builds the variant for kind. An unknown kind is an
// InvalidValue error.
func NewMember(kind RoleKind, name string, level Level) (Member, error) {
	var member Member
	err := validation.ValidateField("kind", string(kind), KindNames(), func() {
		switch kind {
		case KindFrontEnd:
			member = NewFrontEnd(name, level)
		case KindBackEnd:
			member = NewBackEnd(name, level)
		case KindFullStack:
			member = NewFullStack(name, level)
		case KindDesigner:
			member = NewUiUxDesigner(name, level)
		case KindTester:
			member = NewQaTester(name, level)
		case KindDeveloper:
			member = NewDeveloper(name, level)
		}
	})
	return member, err
}

// KindOf returns the kind of a member built by NewMember.
func KindOf(m Member) RoleKind {
	switch m.(type) {
	case *FrontEnd:
		return KindFrontEnd
	case *BackEnd:
		return KindBackEnd
	case *FullStack:
		return KindFullStack
	case *UiUxDesigner:
		return KindDesigner
	case *QaTester:
		return KindTester
	default:
		return KindDeveloper
	}
}

// ActionNames lists the names of m's actions in order.
func ActionNames(m Member) []string {
	actions := m.Actions()
	names := make([]string, len(actions))
	for i, action := range actions {
		names[i] = action.Name
	}
	return names
}

// FindAction looks up one of m's actions by name, ignoring case.
// Unknown names are an InvalidValue error listing m's actions.
func FindAction(m Member, name string) (Action, error) {
	for _, action := range m.Actions() {
		if strings.EqualFold(action.Name, strings.TrimSpace(name)) {
			return action, nil
		}
	}
	return Action{}, errors.NewInvalidValueError("action", name, ActionNames(m))
}

// PerformAction runs the action called name and returns its phrase.
func PerformAction(m Member, name string) (string, error) {
	action, err := FindAction(m, name)
	if err != nil {
		return "", err
	}
	return action.Run(), nil
}

// TeamMember is a member stored on the roster.
type TeamMember struct {
	ID      int64
	Kind    RoleKind
	Member  Member
	HiredAt time.Time
}

// NewTeamMember builds an unsaved roster entry.
func NewTeamMember(kind RoleKind, name string, level Level, hiredAt time.Time) (TeamMember, error) {
	member, err := NewMember(kind, name, level)
	if err != nil {
		return TeamMember{}, err
	}
	return TeamMember{Kind: kind, Member: member, HiredAt: hiredAt}, nil
}
