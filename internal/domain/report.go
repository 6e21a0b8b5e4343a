package domain

import "time"

// Report records the status of every assignee on one task.
type Report struct {
	ID         int64
	Reference  string
	Task       *Task
	ReportDate time.Time
}

// NewReport binds a report to task, dated now.
func NewReport(task *Task) *Report {
	return NewReportAt(task, time.Now())
}

// NewReportAt binds a report to task with an explicit date.
func NewReportAt(task *Task, reportDate time.Time) *Report {
	return &Report{
		Task:       task,
		ReportDate: reportDate,
	}
}

// UpdateReport sets status on every assignee whose description equals
// description and returns how many were updated. Identical descriptions
// are all updated.
func (r *Report) UpdateReport(description, status string) int {
	return r.update(func(a *Assignee) bool {
		return a.Description == description
	}, status)
}

// UpdateMemberStatus sets status on the assignees linked to memberID.
func (r *Report) UpdateMemberStatus(memberID int64, status string) int {
	return r.update(func(a *Assignee) bool {
		return a.MemberID != nil && *a.MemberID == memberID
	}, status)
}

func (r *Report) update(match func(*Assignee) bool, status string) int {
	updated := 0
	for i := range r.Task.Assignees {
		if match(&r.Task.Assignees[i]) {
			r.Task.Assignees[i].Status = status
			updated++
		}
	}
	return updated
}
