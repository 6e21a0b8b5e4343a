package domain

import (
	"team-tracker/internal/repository/sqlite"
)

// MemberMapper handles conversion between domain and database members.
type MemberMapper struct{}

// NewMemberMapper creates a new MemberMapper instance.
func NewMemberMapper() *MemberMapper {
	return &MemberMapper{}
}

// ToDatabase converts a roster member to a database Member.
func (m *MemberMapper) ToDatabase(tm TeamMember) sqlite.Member {
	return sqlite.Member{
		ID:      tm.ID,
		Kind:    string(tm.Kind),
		Name:    tm.Member.Name(),
		Level:   string(tm.Member.Level()),
		HiredAt: tm.HiredAt,
	}
}

// FromDatabase rebuilds the member variant stored in a database row.
func (m *MemberMapper) FromDatabase(dbMember sqlite.Member) (TeamMember, error) {
	member, err := NewMember(RoleKind(dbMember.Kind), dbMember.Name, Level(dbMember.Level))
	if err != nil {
		return TeamMember{}, err
	}
	return TeamMember{
		ID:      dbMember.ID,
		Kind:    RoleKind(dbMember.Kind),
		Member:  member,
		HiredAt: dbMember.HiredAt,
	}, nil
}

// FromDatabaseSlice converts database members, stopping at the first
// row with an unknown kind.
func (m *MemberMapper) FromDatabaseSlice(dbMembers []*sqlite.Member) ([]TeamMember, error) {
	members := make([]TeamMember, 0, len(dbMembers))
	for _, dbMember := range dbMembers {
		member, err := m.FromDatabase(*dbMember)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, nil
}

// TaskMapper handles conversion between domain and database tasks.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task. Assignees are
// stored separately.
func (m *TaskMapper) ToDatabase(task Task) sqlite.Task {
	return sqlite.Task{
		ID:        task.ID,
		TaskName:  task.TaskName,
		StartDate: task.StartDate,
		EndDate:   task.EndDate,
	}
}

// FromDatabase converts a database Task and its assignee rows.
func (m *TaskMapper) FromDatabase(dbTask sqlite.Task, dbAssignees []*sqlite.Assignee) *Task {
	task := &Task{
		ID:        dbTask.ID,
		TaskName:  dbTask.TaskName,
		StartDate: dbTask.StartDate,
		EndDate:   dbTask.EndDate,
	}
	for _, dbAssignee := range dbAssignees {
		task.Assignees = append(task.Assignees, m.AssigneeFromDatabase(*dbAssignee))
	}
	return task
}

// FromDatabaseSlice converts database tasks without their assignees.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []*sqlite.Task) []Task {
	tasks := make([]Task, len(dbTasks))
	for i, dbTask := range dbTasks {
		tasks[i] = *m.FromDatabase(*dbTask, nil)
	}
	return tasks
}

// AssigneeToDatabase converts an assignee of the task with taskID.
func (m *TaskMapper) AssigneeToDatabase(taskID int64, assignee Assignee) sqlite.Assignee {
	return sqlite.Assignee{
		ID:          assignee.ID,
		TaskID:      taskID,
		MemberID:    assignee.MemberID,
		Description: assignee.Description,
		Status:      assignee.Status,
	}
}

// AssigneeFromDatabase converts a database Assignee.
func (m *TaskMapper) AssigneeFromDatabase(dbAssignee sqlite.Assignee) Assignee {
	return Assignee{
		ID:          dbAssignee.ID,
		MemberID:    dbAssignee.MemberID,
		Description: dbAssignee.Description,
		Status:      dbAssignee.Status,
	}
}

// ReportMapper handles conversion between domain and database reports.
type ReportMapper struct{}

// NewReportMapper creates a new ReportMapper instance.
func NewReportMapper() *ReportMapper {
	return &ReportMapper{}
}

// ToDatabase converts a domain Report to a database Report.
func (m *ReportMapper) ToDatabase(report Report) sqlite.Report {
	var taskID int64
	if report.Task != nil {
		taskID = report.Task.ID
	}
	return sqlite.Report{
		ID:         report.ID,
		TaskID:     taskID,
		Reference:  report.Reference,
		ReportedAt: report.ReportDate,
	}
}

// FromDatabase converts a database Report bound to an already loaded task.
func (m *ReportMapper) FromDatabase(dbReport sqlite.Report, task *Task) *Report {
	return &Report{
		ID:         dbReport.ID,
		Reference:  dbReport.Reference,
		Task:       task,
		ReportDate: dbReport.ReportedAt,
	}
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Member *MemberMapper
	Task   *TaskMapper
	Report *ReportMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Member: NewMemberMapper(),
		Task:   NewTaskMapper(),
		Report: NewReportMapper(),
	}
}
