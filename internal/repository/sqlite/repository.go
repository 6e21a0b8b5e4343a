package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"team-tracker/internal/errors"
	"team-tracker/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for database operations
type Repository interface {
	// Members
	CreateMember(ctx context.Context, member *Member) error
	GetMember(ctx context.Context, id int64) (*Member, error)
	ListMembers(ctx context.Context) ([]*Member, error)
	UpdateMember(ctx context.Context, member *Member) error
	DeleteMember(ctx context.Context, id int64) error

	// Tasks
	CreateTask(ctx context.Context, task *Task) error
	GetTask(ctx context.Context, id int64) (*Task, error)
	ListTasks(ctx context.Context) ([]*Task, error)
	DeleteTask(ctx context.Context, id int64) error

	// Assignees, in insertion order per task
	CreateAssignee(ctx context.Context, assignee *Assignee) error
	ListAssignees(ctx context.Context, taskID int64) ([]*Assignee, error)
	UpdateAssignees(ctx context.Context, assignees []*Assignee) error

	// Reports
	CreateReport(ctx context.Context, report *Report) error
	GetReport(ctx context.Context, id int64) (*Report, error)
	ListReports(ctx context.Context, taskID int64) ([]*Report, error)

	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// Option configures how the database is opened.
type Option func(*openOptions)

type openOptions struct {
	busyTimeout time.Duration
}

// WithBusyTimeout sets how long a statement waits for a lock held by
// another process before failing.
func WithBusyTimeout(d time.Duration) Option {
	return func(o *openOptions) {
		o.busyTimeout = d
	}
}

// New opens (or creates) the database at dbPath and migrates it.
// ":memory:" gives a private in-memory database.
func New(dbPath string, opts ...Option) (*SQLiteRepository, error) {
	var o openOptions
	for _, opt := range opts {
		opt(&o)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// One connection: an in-memory database lives and dies with its connection.
	db.SetMaxOpenConns(1)

	if dbPath != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, errors.NewDatabaseError("set WAL mode", err)
		}
	}

	if o.busyTimeout > 0 {
		if _, err := db.Exec(fmt.Sprintf("PRAGMA busy_timeout = %d", o.busyTimeout.Milliseconds())); err != nil {
			db.Close()
			return nil, errors.NewDatabaseError("set busy timeout", err)
		}
	}

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateMember inserts a member and sets its ID
func (r *SQLiteRepository) CreateMember(ctx context.Context, member *Member) error {
	query := `INSERT INTO members (kind, name, level, hired_at) VALUES (?, ?, ?, ?)`
	id, err := ExecuteWithLastInsertID(ctx, r.db, query, member.Kind, member.Name, member.Level, FormatTimeForDB(member.HiredAt))
	if err != nil {
		return err
	}
	member.ID = id
	return nil
}

// GetMember retrieves a member by ID
func (r *SQLiteRepository) GetMember(ctx context.Context, id int64) (*Member, error) {
	query := `SELECT id, kind, name, level, hired_at FROM members WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanMember, "member", fmt.Sprintf("%d", id), id)
}

// ListMembers retrieves all members in hiring order
func (r *SQLiteRepository) ListMembers(ctx context.Context) ([]*Member, error) {
	query := `SELECT id, kind, name, level, hired_at FROM members ORDER BY id ASC`
	return QueryMultiple(ctx, r.db, query, ScanMembers, "members")
}

// UpdateMember updates name and level of an existing member
func (r *SQLiteRepository) UpdateMember(ctx context.Context, member *Member) error {
	query := `UPDATE members SET name = ?, level = ? WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "member", fmt.Sprintf("%d", member.ID), member.Name, member.Level, member.ID)
}

// DeleteMember deletes a member. Assignee records keep their description
// and lose the link to the member.
func (r *SQLiteRepository) DeleteMember(ctx context.Context, id int64) error {
	return r.withTx(ctx, "delete member", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `UPDATE assignees SET member_id = NULL WHERE member_id = ?`, id); err != nil {
			return HandleDatabaseError("unlink assignees", err)
		}
		return ExecuteWithRowsAffected(ctx, tx, `DELETE FROM members WHERE id = ?`, "member", fmt.Sprintf("%d", id), id)
	})
}

// CreateTask creates a new task
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	query := `INSERT INTO tasks (task_name, start_date, end_date) VALUES (?, ?, ?)`
	id, err := ExecuteWithLastInsertID(ctx, r.db, query, task.TaskName, task.StartDate, task.EndDate)
	if err != nil {
		return err
	}
	task.ID = id
	return nil
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*Task, error) {
	query := `SELECT id, task_name, start_date, end_date FROM tasks WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanTask, "task", fmt.Sprintf("%d", id), id)
}

// ListTasks retrieves all tasks
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	query := `SELECT id, task_name, start_date, end_date FROM tasks ORDER BY id ASC`
	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}

// DeleteTask deletes a task together with its assignees and reports
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) error {
	return r.withTx(ctx, "delete task", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM assignees WHERE task_id = ?`, id); err != nil {
			return HandleDatabaseError("delete assignees", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM reports WHERE task_id = ?`, id); err != nil {
			return HandleDatabaseError("delete reports", err)
		}
		return ExecuteWithRowsAffected(ctx, tx, `DELETE FROM tasks WHERE id = ?`, "task", fmt.Sprintf("%d", id), id)
	})
}

// CreateAssignee appends an assignee to its task
func (r *SQLiteRepository) CreateAssignee(ctx context.Context, assignee *Assignee) error {
	query := `INSERT INTO assignees (task_id, member_id, description, status) VALUES (?, ?, ?, ?)`
	id, err := ExecuteWithLastInsertID(ctx, r.db, query, assignee.TaskID, NullableID(assignee.MemberID), assignee.Description, assignee.Status)
	if err != nil {
		return err
	}
	assignee.ID = id
	return nil
}

// ListAssignees retrieves a task's assignees in the order they were added
func (r *SQLiteRepository) ListAssignees(ctx context.Context, taskID int64) ([]*Assignee, error) {
	query := `
	SELECT id, task_id, member_id, description, status
	FROM assignees
	WHERE task_id = ?
	ORDER BY id ASC`
	return QueryMultiple(ctx, r.db, query, ScanAssignees, "assignees", taskID)
}

// UpdateAssignees stores new statuses in one transaction. An unknown
// assignee rolls back the whole batch.
func (r *SQLiteRepository) UpdateAssignees(ctx context.Context, assignees []*Assignee) error {
	return r.withTx(ctx, "update assignees", func(tx *sql.Tx) error {
		for _, a := range assignees {
			query := `UPDATE assignees SET status = ? WHERE id = ?`
			if err := ExecuteWithRowsAffected(ctx, tx, query, "assignee", fmt.Sprintf("%d", a.ID), a.Status, a.ID); err != nil {
				return err
			}
		}
		return nil
	})
}

// CreateReport creates a new report
func (r *SQLiteRepository) CreateReport(ctx context.Context, report *Report) error {
	query := `INSERT INTO reports (task_id, reference, reported_at) VALUES (?, ?, ?)`
	id, err := ExecuteWithLastInsertID(ctx, r.db, query, report.TaskID, report.Reference, FormatTimeForDB(report.ReportedAt))
	if err != nil {
		return err
	}
	report.ID = id
	return nil
}

// GetReport retrieves a report by ID
func (r *SQLiteRepository) GetReport(ctx context.Context, id int64) (*Report, error) {
	query := `SELECT id, task_id, reference, reported_at FROM reports WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanReport, "report", fmt.Sprintf("%d", id), id)
}

// ListReports retrieves the reports of a task, oldest first
func (r *SQLiteRepository) ListReports(ctx context.Context, taskID int64) ([]*Report, error) {
	query := `SELECT id, task_id, reference, reported_at FROM reports WHERE task_id = ? ORDER BY id ASC`
	return QueryMultiple(ctx, r.db, query, ScanReports, "reports", taskID)
}

func (r *SQLiteRepository) withTx(ctx context.Context, operation string, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return HandleDatabaseError("begin "+operation, err)
	}

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return HandleDatabaseError("commit "+operation, err)
	}
	return nil
}
