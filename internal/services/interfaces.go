package services

import (
	"context"
	"time"

	"team-tracker/internal/domain"
)

// Clock returns the current time. Services take one so tests can pin it.
type Clock func() time.Time

// Option configures a service.
type Option func(*options)

type options struct {
	clock Clock
}

// WithClock replaces time.Now as the source of hire and report dates.
func WithClock(clock Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

func newOptions(opts []Option) options {
	o := options{clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ActionResult is the outcome of a member performing an action
type ActionResult struct {
	Member *domain.TeamMember `json:"member"`
	Action string             `json:"action"`
	Phrase string             `json:"phrase"`
}

// RosterService manages the team members
type RosterService interface {
	// Roster CRUD operations
	HireMember(ctx context.Context, kind, name, level string) (*domain.TeamMember, error)
	GetMember(ctx context.Context, id int64) (*domain.TeamMember, error)
	ListMembers(ctx context.Context) ([]*domain.TeamMember, error)
	ChangeLevel(ctx context.Context, id int64, level string) (*domain.TeamMember, error)
	RenameMember(ctx context.Context, id int64, name string) (*domain.TeamMember, error)
	DismissMember(ctx context.Context, id int64) error

	// Role behaviour
	Perform(ctx context.Context, id int64, action string) (*ActionResult, error)
}

// TaskService handles tasks and their assignees
type TaskService interface {
	CreateTask(ctx context.Context, name, startDate, endDate string) (*domain.Task, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]*domain.Task, error)
	DeleteTask(ctx context.Context, id int64) error

	// Assignment operations; the updated task is returned
	AssignMember(ctx context.Context, taskID, memberID int64) (*domain.Task, error)
	AddDescription(ctx context.Context, taskID int64, description string) (*domain.Task, error)
}

// ReportingService creates reports and records assignee statuses
type ReportingService interface {
	CreateReport(ctx context.Context, taskID int64) (*domain.Report, error)
	GetReport(ctx context.Context, id int64) (*domain.Report, error)
	ListReports(ctx context.Context, taskID int64) ([]*domain.Report, error)

	// Status operations return the number of assignees updated
	UpdateStatus(ctx context.Context, reportID int64, description, status string) (int, error)
	UpdateMemberStatus(ctx context.Context, reportID, memberID int64, status string) (int, error)
	RecordAction(ctx context.Context, reportID, memberID int64, action string) (*ActionResult, error)
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	RosterService    RosterService
	TaskService      TaskService
	ReportingService ReportingService
}
