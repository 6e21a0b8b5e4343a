package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"team-tracker/internal/api"
	"team-tracker/internal/config"
	"team-tracker/internal/errors"
	"team-tracker/internal/repository/sqlite"
	"team-tracker/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 10, 31, 17, 0, 0, 0, time.UTC)

// setupTestApp creates an App over an in-memory database with a pinned
// clock; everything the commands print lands in the returned buffer
func setupTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()
	return setupTestAppWithConfig(t, config.NewConfig())
}

func setupTestAppWithConfig(t *testing.T, cfg *config.Config) (*App, *bytes.Buffer) {
	t.Helper()

	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	prevNow := timeNow
	timeNow = func() time.Time { return testNow }
	t.Cleanup(func() { timeNow = prevNow })

	businessAPI := api.New(repo, cfg, services.WithClock(func() time.Time { return testNow }))
	app := NewAppWithConfig(businessAPI, cfg)

	var out bytes.Buffer
	app.SetOutput(&out)
	return app, &out
}

// run executes one command line and returns what it printed
func run(t *testing.T, app *App, out *bytes.Buffer, args ...string) string {
	t.Helper()

	out.Reset()
	require.NoError(t, app.Run(context.Background(), args))
	return out.String()
}

func TestApp_Run(t *testing.T) {
	app, _ := setupTestApp(t)
	ctx := context.Background()

	t.Run("empty args", func(t *testing.T) {
		err := app.Run(ctx, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "usage: team")
		assert.Contains(t, err.Error(), "hire")
	})

	t.Run("unknown command", func(t *testing.T) {
		err := app.Run(ctx, []string{"fire"})
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
	})
}

func TestParseID(t *testing.T) {
	id, err := parseID("task_id", "42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = parseID("task_id", "four")
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
	assert.Equal(t, "invalid input for task_id: must be a number", errors.GetUserMessage(err))
}

func TestNewApp_Defaults(t *testing.T) {
	app := NewApp(nil)

	assert.NotNil(t, app.registry)
	blocks := app.formatter.FormatAssignees(nil)
	for _, keyword := range config.DefaultKeywords {
		assert.Contains(t, blocks, "Assigned "+keyword+"(s):")
	}
	assert.Equal(t, "plain", app.styles.Heading("plain"))
}
