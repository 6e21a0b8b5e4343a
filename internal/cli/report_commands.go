package cli

import (
	"context"
	"fmt"
	"strings"

	"team-tracker/internal/api"
	"team-tracker/internal/errors"
)

// ReportCommand handles the report command
type ReportCommand struct {
	app          *App
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler
}

// NewReportCommand creates a new report command handler
func NewReportCommand(app *App) *ReportCommand {
	return &ReportCommand{app: app, businessAPI: app.businessAPI, errorHandler: NewErrorHandler()}
}

// Execute creates a report for a task and prints it
func (c *ReportCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "report", "usage: team report <task-id>")
	}

	taskID, err := parseID("task_id", args[0])
	if err != nil {
		return c.errorHandler.Handle("create report", err)
	}

	report, err := c.businessAPI.CreateReport(ctx, taskID)
	if err != nil {
		return c.errorHandler.Handle("create report", err)
	}

	c.app.println(c.app.styles.Success(fmt.Sprintf("Created report %d", report.ID)) + " " + c.app.styles.Muted(report.Reference))
	c.app.println(c.app.formatter.ReportDetails(report))
	return nil
}

// ReportsCommand handles the reports command
type ReportsCommand struct {
	app          *App
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler
}

// NewReportsCommand creates a new reports command handler
func NewReportsCommand(app *App) *ReportsCommand {
	return &ReportsCommand{app: app, businessAPI: app.businessAPI, errorHandler: NewErrorHandler()}
}

// Execute lists the reports of a task, oldest first
func (c *ReportsCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "reports", "usage: team reports <task-id>")
	}

	taskID, err := parseID("task_id", args[0])
	if err != nil {
		return c.errorHandler.Handle("list reports", err)
	}

	reports, err := c.businessAPI.ListReports(ctx, taskID)
	if err != nil {
		return c.errorHandler.Handle("list reports", err)
	}

	if len(reports) == 0 {
		c.app.println("No reports found")
		return nil
	}

	c.app.println(c.app.styles.Heading(fmt.Sprintf("%-4s %-36s %s", "ID", "REFERENCE", "REPORTED AT")))
	for _, report := range reports {
		c.app.println(fmt.Sprintf("%-4d %-36s %s", report.ID, report.Reference, c.app.formatter.FormatDate(report.ReportDate)))
	}
	return nil
}

// ViewCommand handles the view command
type ViewCommand struct {
	app          *App
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler
}

// NewViewCommand creates a new view command handler
func NewViewCommand(app *App) *ViewCommand {
	return &ViewCommand{app: app, businessAPI: app.businessAPI, errorHandler: NewErrorHandler()}
}

// Execute prints the report details block
func (c *ViewCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "view", "usage: team view <report-id>")
	}

	reportID, err := parseID("report_id", args[0])
	if err != nil {
		return c.errorHandler.Handle("view report", err)
	}

	report, err := c.businessAPI.GetReport(ctx, reportID)
	if err != nil {
		return c.errorHandler.Handle("view report", err)
	}

	c.app.println(c.app.formatter.ReportDetails(report))
	return nil
}

// StatusCommand handles the status command
type StatusCommand struct {
	app          *App
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler
}

// NewStatusCommand creates a new status command handler
func NewStatusCommand(app *App) *StatusCommand {
	return &StatusCommand{app: app, businessAPI: app.businessAPI, errorHandler: NewErrorHandler()}
}

// Execute sets free-text status on a member's assignee entries
func (c *StatusCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return errors.NewInvalidInputError("command", "status", "usage: team status <report-id> <member-id> <text...>")
	}

	reportID, err := parseID("report_id", args[0])
	if err != nil {
		return c.errorHandler.Handle("update status", err)
	}
	memberID, err := parseID("member_id", args[1])
	if err != nil {
		return c.errorHandler.Handle("update status", err)
	}

	updated, err := c.businessAPI.UpdateMemberStatus(ctx, reportID, memberID, strings.Join(args[2:], " "))
	if err != nil {
		return c.errorHandler.Handle("update status", err)
	}

	c.app.println(c.app.styles.Success(fmt.Sprintf("Updated %d assignee(s) on report %d", updated, reportID)))
	return nil
}

// RecordCommand handles the record command
type RecordCommand struct {
	app          *App
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler
}

// NewRecordCommand creates a new record command handler
func NewRecordCommand(app *App) *RecordCommand {
	return &RecordCommand{app: app, businessAPI: app.businessAPI, errorHandler: NewErrorHandler()}
}

// Execute performs an action and stores its phrase as the member's status
func (c *RecordCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return errors.NewInvalidInputError("command", "record", "usage: team record <report-id> <member-id> <action>")
	}

	reportID, err := parseID("report_id", args[0])
	if err != nil {
		return c.errorHandler.Handle("record action", err)
	}
	memberID, err := parseID("member_id", args[1])
	if err != nil {
		return c.errorHandler.Handle("record action", err)
	}

	result, err := c.businessAPI.RecordAction(ctx, reportID, memberID, args[2])
	if err != nil {
		return c.errorHandler.Handle("record action", err)
	}

	c.app.println(c.app.styles.Success(fmt.Sprintf("%s: %s", result.Member.Member.Name(), result.Phrase)))
	return nil
}
