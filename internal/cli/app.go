package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"team-tracker/internal/api"
	"team-tracker/internal/config"
	"team-tracker/internal/errors"
	"team-tracker/internal/format"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App represents the main CLI application
type App struct {
	businessAPI api.BusinessAPI
	config      *config.Config
	formatter   *format.Formatter
	styles      *Styles
	out         io.Writer
	registry    *CommandRegistry
}

// NewApp creates a new CLI application with the default configuration
func NewApp(businessAPI api.BusinessAPI) *App {
	return NewAppWithConfig(businessAPI, config.NewConfig())
}

// NewAppWithConfig creates a new CLI application; output goes to stdout
func NewAppWithConfig(businessAPI api.BusinessAPI, cfg *config.Config) *App {
	app := &App{
		businessAPI: businessAPI,
		config:      cfg,
		formatter:   format.NewFromConfig(cfg),
		styles:      NewStyles(cfg.Display.Color),
		out:         os.Stdout,
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// SetOutput redirects everything the commands print
func (a *App) SetOutput(w io.Writer) {
	a.out = w
}

// Run executes the command named by args[0] with the remaining arguments
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%s", a.registry.GetUsage())
	}
	return a.registry.Execute(ctx, args[0], args[1:])
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...interface{}) {
	fmt.Fprintln(a.out, args...)
}

// parseID parses a positive numeric id given on the command line
func parseID(field, value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, errors.NewInvalidInputError(field, value, "must be a number")
	}
	return id, nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func memberRow(id, kind, level, name string) string {
	return fmt.Sprintf("%-4s %-10s %-7s %s", id, kind, level, name)
}

func taskRow(id, name, start, end, assignees string) string {
	return fmt.Sprintf("%-4s %-24s %-12s %-12s %s", id, name, start, end, assignees)
}
