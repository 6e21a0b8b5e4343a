package sqlite

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanMember scans a single member from a database row
func ScanMember(scanner Scanner) (*Member, error) {
	member := &Member{}
	var hiredAt string

	if err := scanner.Scan(&member.ID, &member.Kind, &member.Name, &member.Level, &hiredAt); err != nil {
		return nil, err
	}

	t, err := ParseTimeFromDB(hiredAt)
	if err != nil {
		return nil, err
	}
	member.HiredAt = t
	return member, nil
}

// ScanMembers scans multiple members from database rows
func ScanMembers(rows Rows) ([]*Member, error) {
	return scanAll(rows, ScanMember)
}

// ScanTask scans a single task from a database row
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	if err := scanner.Scan(&task.ID, &task.TaskName, &task.StartDate, &task.EndDate); err != nil {
		return nil, err
	}
	return task, nil
}

// ScanTasks scans multiple tasks from database rows
func ScanTasks(rows Rows) ([]*Task, error) {
	return scanAll(rows, ScanTask)
}

// ScanAssignee scans a single assignee from a database row
func ScanAssignee(scanner Scanner) (*Assignee, error) {
	assignee := &Assignee{}
	var memberID sql.NullInt64

	if err := scanner.Scan(&assignee.ID, &assignee.TaskID, &memberID, &assignee.Description, &assignee.Status); err != nil {
		return nil, err
	}

	assignee.MemberID = IDFromNull(memberID)
	return assignee, nil
}

// ScanAssignees scans multiple assignees from database rows
func ScanAssignees(rows Rows) ([]*Assignee, error) {
	return scanAll(rows, ScanAssignee)
}

// ScanReport scans a single report from a database row
func ScanReport(scanner Scanner) (*Report, error) {
	report := &Report{}
	var reportedAt string

	if err := scanner.Scan(&report.ID, &report.TaskID, &report.Reference, &reportedAt); err != nil {
		return nil, err
	}

	t, err := ParseTimeFromDB(reportedAt)
	if err != nil {
		return nil, err
	}
	report.ReportedAt = t
	return report, nil
}

// ScanReports scans multiple reports from database rows
func ScanReports(rows Rows) ([]*Report, error) {
	return scanAll(rows, ScanReport)
}

func scanAll[T any](rows Rows, scanOne func(Scanner) (*T, error)) ([]*T, error) {
	var results []*T
	for rows.Next() {
		item, err := scanOne(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
