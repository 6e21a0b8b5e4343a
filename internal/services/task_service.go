package services

import (
	"context"

	"team-tracker/internal/config"
	"team-tracker/internal/domain"
	"team-tracker/internal/errors"
	"team-tracker/internal/logging"
	"team-tracker/internal/repository/sqlite"
	"team-tracker/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo          sqlite.Repository
	rosterService RosterService
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
}

// NewTaskService creates a new TaskService instance
func NewTaskService(repo sqlite.Repository, rosterService RosterService, cfg *config.Config) TaskService {
	return &taskServiceImpl{
		repo:          repo,
		rosterService: rosterService,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidatorWithConfig(cfg),
	}
}

// CreateTask creates a task with no assignees. Dates are kept as typed.
func (t *taskServiceImpl) CreateTask(ctx context.Context, name, startDate, endDate string) (*domain.Task, error) {
	if err := t.taskValidator.ValidateTaskForCreation(name, startDate, endDate); err != nil {
		return nil, errors.NewValidationError("invalid task", err)
	}
	trimmedName, _ := t.taskValidator.GetValidTaskName(name)

	task := domain.NewTask(trimmedName, startDate, endDate)
	dbTask := t.mapper.Task.ToDatabase(*task)
	if err := t.repo.CreateTask(ctx, &dbTask); err != nil {
		return nil, err
	}
	task.ID = dbTask.ID

	logging.Debugf("created task %d\n", task.ID)
	return task, nil
}

// GetTask retrieves a task with its assignees in the order they were added
func (t *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		return nil, errors.NewValidationError("invalid task ID", err)
	}

	dbTask, err := t.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	dbAssignees, err := t.repo.ListAssignees(ctx, id)
	if err != nil {
		return nil, err
	}

	return t.mapper.Task.FromDatabase(*dbTask, dbAssignees), nil
}

// ListTasks returns every task with its assignees
func (t *taskServiceImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	dbTasks, err := t.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	tasks := make([]*domain.Task, 0, len(dbTasks))
	for _, dbTask := range dbTasks {
		dbAssignees, err := t.repo.ListAssignees(ctx, dbTask.ID)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t.mapper.Task.FromDatabase(*dbTask, dbAssignees))
	}
	return tasks, nil
}

// DeleteTask deletes a task with its assignees and reports
func (t *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		return errors.NewValidationError("invalid task ID", err)
	}

	if err := t.repo.DeleteTask(ctx, id); err != nil {
		return err
	}

	logging.Debugf("deleted task %d\n", id)
	return nil
}

// AssignMember appends the member's current details to the task
func (t *taskServiceImpl) AssignMember(ctx context.Context, taskID, memberID int64) (*domain.Task, error) {
	task, err := t.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	tm, err := t.rosterService.GetMember(ctx, memberID)
	if err != nil {
		return nil, err
	}

	task.AssignMember(*tm)
	if err := t.storeLastAssignee(ctx, task); err != nil {
		return nil, err
	}

	logging.Debugf("assigned member %d to task %d\n", memberID, taskID)
	return task, nil
}

// AddDescription appends free text as an assignee
func (t *taskServiceImpl) AddDescription(ctx context.Context, taskID int64, description string) (*domain.Task, error) {
	if err := t.taskValidator.ValidateDescription(description); err != nil {
		return nil, errors.NewValidationError("invalid description", err)
	}

	task, err := t.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	task.AddTaskDescription(description)
	if err := t.storeLastAssignee(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (t *taskServiceImpl) storeLastAssignee(ctx context.Context, task *domain.Task) error {
	last := len(task.Assignees) - 1
	dbAssignee := t.mapper.Task.AssigneeToDatabase(task.ID, task.Assignees[last])
	if err := t.repo.CreateAssignee(ctx, &dbAssignee); err != nil {
		return err
	}
	task.Assignees[last].ID = dbAssignee.ID
	return nil
}
