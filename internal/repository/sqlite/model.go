package sqlite

import "time"

// Member is a row of the members table.
type Member struct {
	ID      int64
	Kind    string
	Name    string
	Level   string
	HiredAt time.Time
}

// Task is a row of the tasks table. Dates are stored as entered.
type Task struct {
	ID        int64
	TaskName  string
	StartDate string
	EndDate   string
}

// Assignee is a row of the assignees table.
// MemberID is nil for free-text descriptions and for dismissed members.
type Assignee struct {
	ID          int64
	TaskID      int64
	MemberID    *int64
	Description string
	Status      string
}

// Report is a row of the reports table.
type Report struct {
	ID         int64
	TaskID     int64
	Reference  string
	ReportedAt time.Time
}
