package cli

import (
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"team-tracker/internal/api"
	"team-tracker/internal/errors"
)

// ExportCommand handles the export command
type ExportCommand struct {
	app          *App
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App) *ExportCommand {
	return &ExportCommand{app: app, businessAPI: app.businessAPI, errorHandler: NewErrorHandler()}
}

// Execute runs the export command. Without a format option the
// configured default format is used.
func (c *ExportCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 || len(args) > 2 {
		return errors.NewInvalidInputError("command", "export", "usage: team export <report-id> format=csv")
	}

	reportID, err := parseID("report_id", args[0])
	if err != nil {
		return c.errorHandler.Handle("export report", err)
	}

	format := c.app.config.Commands.ExportDefaultFormat
	if len(args) == 2 {
		if !strings.HasPrefix(args[1], "format=") {
			return errors.NewInvalidInputError("format", args[1], "invalid format option")
		}
		format = strings.TrimPrefix(args[1], "format=")
	}

	switch format {
	case "csv":
		return c.exportCSV(ctx, reportID)
	default:
		return errors.NewInvalidInputError("format", format, "unsupported format")
	}
}

// exportCSV writes one row per assignee of the report
func (c *ExportCommand) exportCSV(ctx context.Context, reportID int64) error {
	entries, err := c.businessAPI.ListReportEntries(ctx, reportID)
	if err != nil {
		return c.errorHandler.Handle("export report", err)
	}

	writer := csv.NewWriter(c.app.out)

	header := []string{"Report ID", "Reference", "Task", "Member ID", "Assignee", "Status", "Reported At"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, entry := range entries {
		memberID := ""
		if entry.MemberID != nil {
			memberID = formatID(*entry.MemberID)
		}

		row := []string{
			formatID(entry.ReportID),
			entry.Reference,
			entry.TaskName,
			memberID,
			entry.Description,
			entry.Status,
			entry.ReportedAt.Format(time.RFC3339),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
