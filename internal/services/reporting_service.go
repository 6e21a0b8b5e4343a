package services

import (
	"context"
	"fmt"
	"time"

	"team-tracker/internal/domain"
	"team-tracker/internal/errors"
	"team-tracker/internal/logging"
	"team-tracker/internal/repository/sqlite"
	"team-tracker/internal/validation"

	"github.com/google/uuid"
)

// reportingServiceImpl implements the ReportingService interface
type reportingServiceImpl struct {
	repo          sqlite.Repository
	taskService   TaskService
	rosterService RosterService
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
	clock         Clock
}

// NewReportingService creates a new ReportingService instance
func NewReportingService(repo sqlite.Repository, taskService TaskService, rosterService RosterService, opts ...Option) ReportingService {
	o := newOptions(opts)
	return &reportingServiceImpl{
		repo:          repo,
		taskService:   taskService,
		rosterService: rosterService,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidator(),
		clock:         o.clock,
	}
}

// CreateReport binds a new report to a task, dated by the service clock.
// Stored dates have second precision.
func (r *reportingServiceImpl) CreateReport(ctx context.Context, taskID int64) (*domain.Report, error) {
	task, err := r.taskService.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	report := domain.NewReportAt(task, r.clock().Truncate(time.Second))
	report.Reference = uuid.NewString()

	dbReport := r.mapper.Report.ToDatabase(*report)
	if err := r.repo.CreateReport(ctx, &dbReport); err != nil {
		return nil, err
	}
	report.ID = dbReport.ID

	logging.Debugf("report %d created\n", report.ID)
	return report, nil
}

// GetReport retrieves a report together with its task and assignees
func (r *reportingServiceImpl) GetReport(ctx context.Context, id int64) (*domain.Report, error) {
	if err := r.taskValidator.ValidateReportID(id); err != nil {
		return nil, errors.NewValidationError("invalid report ID", err)
	}

	dbReport, err := r.repo.GetReport(ctx, id)
	if err != nil {
		return nil, err
	}

	task, err := r.taskService.GetTask(ctx, dbReport.TaskID)
	if err != nil {
		return nil, err
	}

	return r.mapper.Report.FromDatabase(*dbReport, task), nil
}

// ListReports returns the reports of a task, oldest first
func (r *reportingServiceImpl) ListReports(ctx context.Context, taskID int64) ([]*domain.Report, error) {
	task, err := r.taskService.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	dbReports, err := r.repo.ListReports(ctx, taskID)
	if err != nil {
		return nil, err
	}

	reports := make([]*domain.Report, len(dbReports))
	for i, dbReport := range dbReports {
		reports[i] = r.mapper.Report.FromDatabase(*dbReport, task)
	}
	return reports, nil
}

// UpdateStatus sets status on every assignee whose description equals
// description exactly. No match is not an error; the count is zero.
func (r *reportingServiceImpl) UpdateStatus(ctx context.Context, reportID int64, description, status string) (int, error) {
	return r.apply(ctx, reportID, func(report *domain.Report) int {
		return report.UpdateReport(description, status)
	})
}

// UpdateMemberStatus sets status on the assignees linked to a member.
// A member that is not assigned to the report's task is NotFound.
func (r *reportingServiceImpl) UpdateMemberStatus(ctx context.Context, reportID, memberID int64, status string) (int, error) {
	updated, err := r.apply(ctx, reportID, func(report *domain.Report) int {
		return report.UpdateMemberStatus(memberID, status)
	})
	if err != nil {
		return 0, err
	}
	if updated == 0 {
		return 0, errors.NewNotFoundError("assignee", fmt.Sprintf("member %d on report %d", memberID, reportID))
	}
	return updated, nil
}

// RecordAction has the member perform action and stores the resulting
// phrase as its status on the report.
func (r *reportingServiceImpl) RecordAction(ctx context.Context, reportID, memberID int64, action string) (*ActionResult, error) {
	result, err := r.rosterService.Perform(ctx, memberID, action)
	if err != nil {
		return nil, err
	}

	if _, err := r.UpdateMemberStatus(ctx, reportID, memberID, result.Phrase); err != nil {
		return nil, err
	}
	return result, nil
}

// apply runs update against the report's task and stores the assignees
// whose status changed, all or none.
func (r *reportingServiceImpl) apply(ctx context.Context, reportID int64, update func(*domain.Report) int) (int, error) {
	report, err := r.GetReport(ctx, reportID)
	if err != nil {
		return 0, err
	}

	before := make([]string, len(report.Task.Assignees))
	for i, a := range report.Task.Assignees {
		before[i] = a.Status
	}

	updated := update(report)

	var changed []*sqlite.Assignee
	for i, a := range report.Task.Assignees {
		if a.Status == before[i] {
			continue
		}
		dbAssignee := r.mapper.Task.AssigneeToDatabase(report.Task.ID, a)
		changed = append(changed, &dbAssignee)
	}
	if len(changed) > 0 {
		if err := r.repo.UpdateAssignees(ctx, changed); err != nil {
			return 0, err
		}
	}

	logging.Debugf("report %d: %d assignee(s) updated\n", reportID, updated)
	return updated, nil
}
