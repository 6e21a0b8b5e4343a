package sqlite

import (
	"database/sql"
	"errors"
	"testing"

	apperrors "team-tracker/internal/errors"

	"github.com/stretchr/testify/assert"
)

// MockResult implements sql.Result for testing
type MockResult struct {
	rowsAffected int64
	rowsErr      error
}

func (mr *MockResult) LastInsertId() (int64, error) {
	return 0, nil
}

func (mr *MockResult) RowsAffected() (int64, error) {
	return mr.rowsAffected, mr.rowsErr
}

func TestHandleDatabaseError(t *testing.T) {
	err := HandleDatabaseError("insert member", errors.New("disk I/O error"))

	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeDatabase))
	assert.Contains(t, err.Error(), "insert member")
	assert.Contains(t, err.Error(), "disk I/O error")
}

func TestHandleScanError(t *testing.T) {
	err := HandleScanError(sql.ErrNoRows, "member", "4")
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound))
	assert.Contains(t, err.Error(), "member not found: 4")

	locked := errors.New("database is locked")
	err = HandleScanError(locked, "member", "4")
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeDatabase))
	assert.ErrorIs(t, err, locked)
	assert.Contains(t, err.Error(), "scan member")
}

func TestValidateRowsAffected(t *testing.T) {
	tests := []struct {
		name     string
		result   sql.Result
		wantType *apperrors.ErrorType
	}{
		{name: "one row", result: &MockResult{rowsAffected: 1}},
		{name: "no rows", result: &MockResult{rowsAffected: 0}, wantType: ptr(apperrors.ErrorTypeNotFound)},
		{name: "driver error", result: &MockResult{rowsErr: errors.New("unsupported")}, wantType: ptr(apperrors.ErrorTypeDatabase)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRowsAffected(tt.result, "task", "1")
			if tt.wantType == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, apperrors.IsErrorType(err, *tt.wantType))
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
