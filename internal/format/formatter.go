// Package format renders tasks and reports as the plain text blocks
// printed to the console.
package format

import (
	"fmt"
	"strings"
	"time"

	"team-tracker/internal/config"
	"team-tracker/internal/domain"
)

const (
	blockBorder    = "======================="
	entrySeparator = "-----------------------"
)

// Formatter renders assignees grouped by role keyword, and dates in a
// fixed layout.
type Formatter struct {
	keywords   []string
	dateLayout string
}

// New creates a formatter. Empty arguments fall back to the defaults.
func New(keywords []string, dateLayout string) *Formatter {
	if len(keywords) == 0 {
		keywords = config.DefaultKeywords
	}
	if dateLayout == "" {
		dateLayout = config.DefaultDateFormat
	}
	return &Formatter{
		keywords:   append([]string(nil), keywords...),
		dateLayout: dateLayout,
	}
}

// NewFromConfig creates a formatter from the display settings.
func NewFromConfig(cfg *config.Config) *Formatter {
	return New(cfg.Display.Keywords, cfg.Display.DateFormat)
}

// FormatAssignees renders one bordered block per keyword with the
// assignees whose description contains it.
func (f *Formatter) FormatAssignees(assignees []domain.Assignee) string {
	return FormatAssignees(assignees, f.keywords)
}

// FormatDate renders t in the formatter's layout.
func (f *Formatter) FormatDate(t time.Time) string {
	return FormatDate(t, f.dateLayout)
}

// TaskDetails renders the task header followed by its assignee blocks.
func (f *Formatter) TaskDetails(task *domain.Task) string {
	return fmt.Sprintf("\nTASK DETAILS\n%s%s\n\n", header(task), f.FormatAssignees(task.Assignees))
}

// ReportDetails renders the report's task, assignee blocks and date.
func (f *Formatter) ReportDetails(report *domain.Report) string {
	return fmt.Sprintf("\nREPORT DETAILS\n%s%s\nReported at: %s\n\n",
		header(report.Task), f.FormatAssignees(report.Task.Assignees), f.FormatDate(report.ReportDate))
}

// FormatAssignees renders one block per keyword. An assignee whose
// description contains several keywords is listed under each of them.
// A keyword without assignees still gets an empty block.
func FormatAssignees(assignees []domain.Assignee, keywords []string) string {
	blocks := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		var entries []string
		for _, a := range assignees {
			if strings.Contains(a.Description, keyword) {
				entries = append(entries, formatEntry(a))
			}
		}
		blocks = append(blocks, fmt.Sprintf("Assigned %s(s):\n%s\n%s\n%s",
			keyword, blockBorder, strings.Join(entries, "\n"+entrySeparator+"\n"), blockBorder))
	}
	return strings.Join(blocks, "\n")
}

// FormatDate renders t with layout, or the default long form when
// layout is empty.
func FormatDate(t time.Time, layout string) string {
	if layout == "" {
		layout = config.DefaultDateFormat
	}
	return t.Format(layout)
}

func formatEntry(a domain.Assignee) string {
	if a.Status == "" {
		return a.Description
	}
	return a.Description + "\nStatus: " + a.Status
}

func header(task *domain.Task) string {
	return fmt.Sprintf("Task: %s\nStart Date: %s\nEnd Date: %s\n%s\n", task.TaskName, task.StartDate, task.EndDate, blockBorder)
}
