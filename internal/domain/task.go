package domain

// Assignee is one entry on a task: a member's detail text and the status
// the latest report gave it.
type Assignee struct {
	ID          int64
	MemberID    *int64
	Description string
	Status      string
}

// Task represents a piece of work and the members assigned to it.
// Dates are free-form text and are never parsed.
type Task struct {
	ID        int64
	TaskName  string
	StartDate string
	EndDate   string
	Assignees []Assignee
}

// NewTask creates a new Task with no assignees.
func NewTask(name, startDate, endDate string) *Task {
	return &Task{
		TaskName:  name,
		StartDate: startDate,
		EndDate:   endDate,
	}
}

// AddTaskDescription appends an assignee with an empty status.
func (t *Task) AddTaskDescription(description string) {
	t.Assignees = append(t.Assignees, Assignee{Description: description})
}

// AssignMember appends a roster member, keeping a link to its id.
func (t *Task) AssignMember(tm TeamMember) {
	id := tm.ID
	t.Assignees = append(t.Assignees, Assignee{
		MemberID:    &id,
		Description: tm.Member.Details(),
	})
}
