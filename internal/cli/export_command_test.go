package cli

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCommand_Execute(t *testing.T) {
	app, do := setupReportApp(t)
	ctx := context.Background()
	do("report", "1")
	do("record", "1", "2", "RunUnitTests")

	readCSV := func(t *testing.T, data string) [][]string {
		t.Helper()
		records, err := csv.NewReader(strings.NewReader(data)).ReadAll()
		require.NoError(t, err)
		return records
	}

	t.Run("explicit format", func(t *testing.T) {
		records := readCSV(t, do("export", "1", "format=csv"))
		require.Len(t, records, 3)

		assert.Equal(t, []string{"Report ID", "Reference", "Task", "Member ID", "Assignee", "Status", "Reported At"}, records[0])
		assert.Equal(t, "1", records[1][0])
		assert.Equal(t, "Homepage", records[1][2])
		assert.Equal(t, "1", records[1][3])
		assert.Equal(t, "Name: Ann\nRole: FrontEnd Developer\nExperience: Senior", records[1][4])
		assert.Equal(t, "", records[1][5])
		assert.Equal(t, "2024-10-31T17:00:00Z", records[1][6])
		assert.Equal(t, "Run Unit Tests", records[2][5])
		assert.Equal(t, records[1][1], records[2][1])
	})

	t.Run("configured default format", func(t *testing.T) {
		assert.Len(t, readCSV(t, do("export", "1")), 3)
	})

	t.Run("dismissed member leaves an empty member id", func(t *testing.T) {
		do("dismiss", "1")
		records := readCSV(t, do("export", "1"))
		assert.Equal(t, "", records[1][3])
		assert.Equal(t, "2", records[2][3])
	})

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unsupported format", []string{"export", "1", "format=json"}, "invalid input for format: unsupported format"},
		{"malformed option", []string{"export", "1", "json"}, "invalid input for format: invalid format option"},
		{"unknown report", []string{"export", "4"}, "failed to export report: report not found: 4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := app.Run(ctx, tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
