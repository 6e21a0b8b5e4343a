package domain

import (
	"testing"
	"time"

	"team-tracker/internal/repository/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberMapper(t *testing.T) {
	mapper := NewMemberMapper()
	hired := time.Date(2024, 10, 24, 9, 0, 0, 0, time.UTC)

	tm, err := NewTeamMember(KindFullStack, "Dan", LevelMiddle, hired)
	require.NoError(t, err)
	tm.ID = 4

	dbMember := mapper.ToDatabase(tm)
	assert.Equal(t, sqlite.Member{ID: 4, Kind: "fullstack", Name: "Dan", Level: "Middle", HiredAt: hired}, dbMember)

	back, err := mapper.FromDatabase(dbMember)
	require.NoError(t, err)
	assert.Equal(t, int64(4), back.ID)
	assert.IsType(t, &FullStack{}, back.Member)
	assert.Equal(t, tm.Member.Details(), back.Member.Details())

	_, err = mapper.FromDatabase(sqlite.Member{Kind: "manager"})
	assert.Error(t, err)

	members, err := mapper.FromDatabaseSlice([]*sqlite.Member{&dbMember, {ID: 5, Kind: "tester", Name: "Bo", Level: "Junior"}})
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, KindTester, members[1].Kind)
}

func TestTaskMapper(t *testing.T) {
	mapper := NewTaskMapper()
	memberID := int64(3)

	dbTask := sqlite.Task{ID: 1, TaskName: "Homepage", StartDate: "24-10-2024", EndDate: "31-10-2024"}
	dbAssignees := []*sqlite.Assignee{
		{ID: 10, TaskID: 1, MemberID: &memberID, Description: "Name: Ann", Status: "Done"},
		{ID: 11, TaskID: 1, Description: "Free text"},
	}

	task := mapper.FromDatabase(dbTask, dbAssignees)
	assert.Equal(t, "Homepage", task.TaskName)
	require.Len(t, task.Assignees, 2)
	assert.Equal(t, &memberID, task.Assignees[0].MemberID)
	assert.Equal(t, "Done", task.Assignees[0].Status)
	assert.Nil(t, task.Assignees[1].MemberID)

	assert.Equal(t, dbTask, mapper.ToDatabase(*task))
	assert.Equal(t, *dbAssignees[0], mapper.AssigneeToDatabase(1, task.Assignees[0]))

	tasks := mapper.FromDatabaseSlice([]*sqlite.Task{&dbTask})
	require.Len(t, tasks, 1)
	assert.Empty(t, tasks[0].Assignees)
}

func TestReportMapper(t *testing.T) {
	mapper := NewReportMapper()
	at := time.Date(2024, 10, 31, 17, 0, 0, 0, time.UTC)
	task := &Task{ID: 2, TaskName: "Homepage"}

	report := mapper.FromDatabase(sqlite.Report{ID: 7, TaskID: 2, Reference: "ref", ReportedAt: at}, task)
	assert.Same(t, task, report.Task)
	assert.Equal(t, at, report.ReportDate)

	assert.Equal(t, sqlite.Report{ID: 7, TaskID: 2, Reference: "ref", ReportedAt: at}, mapper.ToDatabase(*report))
}
