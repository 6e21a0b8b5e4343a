package api

import (
	"context"
	"fmt"
	"time"

	"team-tracker/internal/config"
	"team-tracker/internal/domain"
	"team-tracker/internal/errors"
	"team-tracker/internal/logging"
	"team-tracker/internal/repository/sqlite"
	"team-tracker/internal/scenario"
	"team-tracker/internal/services"
	"team-tracker/internal/validation"
)

// Business domain types
type ReportEntry struct {
	ReportID    int64     `json:"report_id"`
	Reference   string    `json:"reference"`
	TaskName    string    `json:"task_name"`
	MemberID    *int64    `json:"member_id"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	ReportedAt  time.Time `json:"reported_at"`
}

type ScenarioImport struct {
	Members []*domain.TeamMember     `json:"members"`
	Task    *domain.Task             `json:"task"`
	Report  *domain.Report           `json:"report"`
	Actions []*services.ActionResult `json:"actions"`
}

// BusinessAPI defines the team workflows the command line runs
type BusinessAPI interface {
	// ========== Roster ==========

	// HireMember adds a member of the given kind and level to the roster
	HireMember(ctx context.Context, kind, name, level string) (*domain.TeamMember, error)

	GetMember(ctx context.Context, id int64) (*domain.TeamMember, error)
	ListMembers(ctx context.Context) ([]*domain.TeamMember, error)

	// ChangeLevel rejects levels outside Intern, Junior, Middle, Senior
	ChangeLevel(ctx context.Context, id int64, level string) (*domain.TeamMember, error)

	RenameMember(ctx context.Context, id int64, name string) (*domain.TeamMember, error)
	DismissMember(ctx context.Context, id int64) error

	// PerformAction runs a role action and returns its phrase
	PerformAction(ctx context.Context, memberID int64, action string) (*services.ActionResult, error)

	// ========== Tasks ==========

	CreateTask(ctx context.Context, name, startDate, endDate string) (*domain.Task, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]*domain.Task, error)
	DeleteTask(ctx context.Context, id int64) error

	// AssignMembers appends each member's details in the order given
	AssignMembers(ctx context.Context, taskID int64, memberIDs []int64) (*domain.Task, error)

	AddDescription(ctx context.Context, taskID int64, description string) (*domain.Task, error)

	// ========== Reports ==========

	CreateReport(ctx context.Context, taskID int64) (*domain.Report, error)
	GetReport(ctx context.Context, id int64) (*domain.Report, error)
	ListReports(ctx context.Context, taskID int64) ([]*domain.Report, error)
	UpdateStatus(ctx context.Context, reportID int64, description, status string) (int, error)
	UpdateMemberStatus(ctx context.Context, reportID, memberID int64, status string) (int, error)
	RecordAction(ctx context.Context, reportID, memberID int64, action string) (*services.ActionResult, error)

	// ListReportEntries flattens a report into one entry per assignee for export
	ListReportEntries(ctx context.Context, reportID int64) ([]*ReportEntry, error)

	// ========== Scenarios ==========

	// ImportScenario hires the scenario's members, assigns them to a new
	// task and stores a report with each member's action as its status
	ImportScenario(ctx context.Context, s *scenario.Scenario) (*ScenarioImport, error)
}

// businessAPIImpl implements the BusinessAPI interface
type businessAPIImpl struct {
	services        *services.ServiceContainer
	memberValidator *validation.MemberValidator
	taskValidator   *validation.TaskValidator
}

// NewBusinessAPI creates a new BusinessAPI over the given services.
// cfg must carry the same limits the services were built with.
func NewBusinessAPI(container *services.ServiceContainer, cfg *config.Config) BusinessAPI {
	return &businessAPIImpl{
		services:        container,
		memberValidator: validation.NewMemberValidatorWithConfig(cfg),
		taskValidator:   validation.NewTaskValidatorWithConfig(cfg),
	}
}

// New creates a BusinessAPI with services wired to repo
func New(repo sqlite.Repository, cfg *config.Config, opts ...services.Option) BusinessAPI {
	return NewBusinessAPI(services.NewServiceContainer(repo, cfg, opts...), cfg)
}

// ========== Roster ==========

func (b *businessAPIImpl) HireMember(ctx context.Context, kind, name, level string) (*domain.TeamMember, error) {
	return b.services.RosterService.HireMember(ctx, kind, name, level)
}

func (b *businessAPIImpl) GetMember(ctx context.Context, id int64) (*domain.TeamMember, error) {
	return b.services.RosterService.GetMember(ctx, id)
}

func (b *businessAPIImpl) ListMembers(ctx context.Context) ([]*domain.TeamMember, error) {
	return b.services.RosterService.ListMembers(ctx)
}

func (b *businessAPIImpl) ChangeLevel(ctx context.Context, id int64, level string) (*domain.TeamMember, error) {
	return b.services.RosterService.ChangeLevel(ctx, id, level)
}

func (b *businessAPIImpl) RenameMember(ctx context.Context, id int64, name string) (*domain.TeamMember, error) {
	return b.services.RosterService.RenameMember(ctx, id, name)
}

func (b *businessAPIImpl) DismissMember(ctx context.Context, id int64) error {
	return b.services.RosterService.DismissMember(ctx, id)
}

func (b *businessAPIImpl) PerformAction(ctx context.Context, memberID int64, action string) (*services.ActionResult, error) {
	return b.services.RosterService.Perform(ctx, memberID, action)
}

// ========== Tasks ==========

func (b *businessAPIImpl) CreateTask(ctx context.Context, name, startDate, endDate string) (*domain.Task, error) {
	return b.services.TaskService.CreateTask(ctx, name, startDate, endDate)
}

func (b *businessAPIImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	return b.services.TaskService.GetTask(ctx, id)
}

func (b *businessAPIImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	return b.services.TaskService.ListTasks(ctx)
}

func (b *businessAPIImpl) DeleteTask(ctx context.Context, id int64) error {
	return b.services.TaskService.DeleteTask(ctx, id)
}

func (b *businessAPIImpl) AssignMembers(ctx context.Context, taskID int64, memberIDs []int64) (*domain.Task, error) {
	if len(memberIDs) == 0 {
		return nil, errors.NewInvalidInputError("member_ids", memberIDs, "at least one member is required")
	}

	var task *domain.Task
	for _, memberID := range memberIDs {
		var err error
		task, err = b.services.TaskService.AssignMember(ctx, taskID, memberID)
		if err != nil {
			return nil, err
		}
	}
	return task, nil
}

func (b *businessAPIImpl) AddDescription(ctx context.Context, taskID int64, description string) (*domain.Task, error) {
	return b.services.TaskService.AddDescription(ctx, taskID, description)
}

// ========== Reports ==========

func (b *businessAPIImpl) CreateReport(ctx context.Context, taskID int64) (*domain.Report, error) {
	return b.services.ReportingService.CreateReport(ctx, taskID)
}

func (b *businessAPIImpl) GetReport(ctx context.Context, id int64) (*domain.Report, error) {
	return b.services.ReportingService.GetReport(ctx, id)
}

func (b *businessAPIImpl) ListReports(ctx context.Context, taskID int64) ([]*domain.Report, error) {
	return b.services.ReportingService.ListReports(ctx, taskID)
}

func (b *businessAPIImpl) UpdateStatus(ctx context.Context, reportID int64, description, status string) (int, error) {
	return b.services.ReportingService.UpdateStatus(ctx, reportID, description, status)
}

func (b *businessAPIImpl) UpdateMemberStatus(ctx context.Context, reportID, memberID int64, status string) (int, error) {
	return b.services.ReportingService.UpdateMemberStatus(ctx, reportID, memberID, status)
}

func (b *businessAPIImpl) RecordAction(ctx context.Context, reportID, memberID int64, action string) (*services.ActionResult, error) {
	return b.services.ReportingService.RecordAction(ctx, reportID, memberID, action)
}

func (b *businessAPIImpl) ListReportEntries(ctx context.Context, reportID int64) ([]*ReportEntry, error) {
	report, err := b.services.ReportingService.GetReport(ctx, reportID)
	if err != nil {
		return nil, err
	}

	entries := make([]*ReportEntry, 0, len(report.Task.Assignees))
	for _, a := range report.Task.Assignees {
		entries = append(entries, &ReportEntry{
			ReportID:    report.ID,
			Reference:   report.Reference,
			TaskName:    report.Task.TaskName,
			MemberID:    a.MemberID,
			Description: a.Description,
			Status:      a.Status,
			ReportedAt:  report.ReportDate,
		})
	}
	return entries, nil
}

// ========== Scenarios ==========

func (b *businessAPIImpl) ImportScenario(ctx context.Context, s *scenario.Scenario) (*ScenarioImport, error) {
	// 1. Reject the whole scenario before anything is stored
	if err := s.Validate(); err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid scenario: %v", err), err)
	}
	if err := b.validateNames(s); err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid scenario: %v", err), err)
	}

	// 2. Hire every member
	members := make([]*domain.TeamMember, 0, len(s.Members))
	for _, ms := range s.Members {
		tm, err := b.services.RosterService.HireMember(ctx, ms.Kind, ms.Name, ms.Level)
		if err != nil {
			return nil, err
		}
		members = append(members, tm)
	}

	// 3. Create the task and assign the members in scenario order
	task, err := b.services.TaskService.CreateTask(ctx, s.Task.Name, s.Task.StartDate, s.Task.EndDate)
	if err != nil {
		return nil, err
	}
	for _, tm := range members {
		if task, err = b.services.TaskService.AssignMember(ctx, task.ID, tm.ID); err != nil {
			return nil, err
		}
	}

	// 4. Report each member's action
	report, err := b.services.ReportingService.CreateReport(ctx, task.ID)
	if err != nil {
		return nil, err
	}

	actions := make([]*services.ActionResult, 0, len(members))
	for i, tm := range members {
		if s.Members[i].Action == "" {
			continue
		}
		result, err := b.services.ReportingService.RecordAction(ctx, report.ID, tm.ID, s.Members[i].Action)
		if err != nil {
			return nil, err
		}
		actions = append(actions, result)
	}

	// 5. Reload so the report carries the stored statuses
	report, err = b.services.ReportingService.GetReport(ctx, report.ID)
	if err != nil {
		return nil, err
	}

	logging.Debugf("imported scenario as task %d, report %d\n", report.Task.ID, report.ID)
	return &ScenarioImport{
		Members: members,
		Task:    report.Task,
		Report:  report,
		Actions: actions,
	}, nil
}

// validateNames applies the hire and task creation rules to every name in
// the scenario, so a bad name fails before the first member is stored.
func (b *businessAPIImpl) validateNames(s *scenario.Scenario) error {
	for i, ms := range s.Members {
		if _, err := b.memberValidator.GetValidName(ms.Name); err != nil {
			return fmt.Errorf("member %d: %w", i+1, err)
		}
	}
	if err := b.taskValidator.ValidateTaskForCreation(s.Task.Name, s.Task.StartDate, s.Task.EndDate); err != nil {
		return fmt.Errorf("task: %w", err)
	}
	return nil
}
