package cli

import (
	"context"
	"fmt"

	"team-tracker/internal/api"
	"team-tracker/internal/errors"
)

// TaskCommand handles the task command
type TaskCommand struct {
	app          *App
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler
}

// NewTaskCommand creates a new task command handler
func NewTaskCommand(app *App) *TaskCommand {
	return &TaskCommand{app: app, businessAPI: app.businessAPI, errorHandler: NewErrorHandler()}
}

// Execute creates a task. Dates are stored exactly as typed.
func (c *TaskCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return errors.NewInvalidInputError("command", "task", "usage: team task <name> <start-date> <end-date>")
	}

	task, err := c.businessAPI.CreateTask(ctx, args[0], args[1], args[2])
	if err != nil {
		return c.errorHandler.Handle("create task", err)
	}

	c.app.println(c.app.styles.Success(fmt.Sprintf("Created task %d: %s", task.ID, task.TaskName)))
	return nil
}

// TasksCommand handles the tasks command
type TasksCommand struct {
	app          *App
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler
}

// NewTasksCommand creates a new tasks command handler
func NewTasksCommand(app *App) *TasksCommand {
	return &TasksCommand{app: app, businessAPI: app.businessAPI, errorHandler: NewErrorHandler()}
}

// Execute lists every task with its assignee count
func (c *TasksCommand) Execute(ctx context.Context, args []string) error {
	tasks, err := c.businessAPI.ListTasks(ctx)
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}

	if len(tasks) == 0 {
		c.app.println("No tasks found")
		return nil
	}

	c.app.println(c.app.styles.Heading(taskRow("ID", "NAME", "START", "END", "ASSIGNEES")))
	for _, task := range tasks {
		c.app.println(taskRow(formatID(task.ID), task.TaskName, task.StartDate, task.EndDate, fmt.Sprintf("%d", len(task.Assignees))))
	}
	return nil
}

// AssignCommand handles the assign command
type AssignCommand struct {
	app          *App
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler
}

// NewAssignCommand creates a new assign command handler
func NewAssignCommand(app *App) *AssignCommand {
	return &AssignCommand{app: app, businessAPI: app.businessAPI, errorHandler: NewErrorHandler()}
}

// Execute assigns members to a task in the order given
func (c *AssignCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewInvalidInputError("command", "assign", "usage: team assign <task-id> <member-id...>")
	}

	taskID, err := parseID("task_id", args[0])
	if err != nil {
		return c.errorHandler.Handle("assign members", err)
	}

	memberIDs := make([]int64, 0, len(args)-1)
	for _, arg := range args[1:] {
		id, err := parseID("member_id", arg)
		if err != nil {
			return c.errorHandler.Handle("assign members", err)
		}
		memberIDs = append(memberIDs, id)
	}

	task, err := c.businessAPI.AssignMembers(ctx, taskID, memberIDs)
	if err != nil {
		return c.errorHandler.Handle("assign members", err)
	}

	c.app.println(c.app.styles.Success(fmt.Sprintf("Assigned %d member(s) to task %d", len(memberIDs), task.ID)))
	return nil
}

// ShowCommand handles the show command
type ShowCommand struct {
	app          *App
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler
}

// NewShowCommand creates a new show command handler
func NewShowCommand(app *App) *ShowCommand {
	return &ShowCommand{app: app, businessAPI: app.businessAPI, errorHandler: NewErrorHandler()}
}

// Execute prints the task details block
func (c *ShowCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "show", "usage: team show <task-id>")
	}

	taskID, err := parseID("task_id", args[0])
	if err != nil {
		return c.errorHandler.Handle("show task", err)
	}

	task, err := c.businessAPI.GetTask(ctx, taskID)
	if err != nil {
		return c.errorHandler.Handle("show task", err)
	}

	c.app.println(c.app.formatter.TaskDetails(task))
	return nil
}

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app          *App
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app, businessAPI: app.businessAPI, errorHandler: NewErrorHandler()}
}

// Execute deletes a task with its assignees and reports
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "delete", "usage: team delete <task-id>")
	}

	taskID, err := parseID("task_id", args[0])
	if err != nil {
		return c.errorHandler.Handle("delete task", err)
	}

	if err := c.businessAPI.DeleteTask(ctx, taskID); err != nil {
		return c.errorHandler.Handle("delete task", err)
	}

	c.app.println(c.app.styles.Success(fmt.Sprintf("Deleted task %d", taskID)))
	return nil
}
