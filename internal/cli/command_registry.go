package cli

import (
	"context"
	"sort"
	"strings"

	"team-tracker/internal/errors"
)

// Command represents a CLI command
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// CommandRegistry manages all available commands
type CommandRegistry struct {
	commands map[string]Command
}

// NewCommandRegistry creates a new command registry
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]Command),
	}

	// Roster
	registry.Register("hire", NewHireCommand(app))
	registry.Register("members", NewMembersCommand(app))
	registry.Register("introduce", NewIntroduceCommand(app))
	registry.Register("level", NewLevelCommand(app))
	registry.Register("rename", NewRenameCommand(app))
	registry.Register("act", NewActCommand(app))
	registry.Register("dismiss", NewDismissCommand(app))

	// Tasks
	registry.Register("task", NewTaskCommand(app))
	registry.Register("tasks", NewTasksCommand(app))
	registry.Register("assign", NewAssignCommand(app))
	registry.Register("show", NewShowCommand(app))
	registry.Register("delete", NewDeleteCommand(app))

	// Reports
	registry.Register("report", NewReportCommand(app))
	registry.Register("reports", NewReportsCommand(app))
	registry.Register("view", NewViewCommand(app))
	registry.Register("status", NewStatusCommand(app))
	registry.Register("record", NewRecordCommand(app))
	registry.Register("export", NewExportCommand(app))

	registry.Register("demo", NewDemoCommand(app, DemoOptions{}))

	return registry
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(name string, command Command) {
	r.commands[name] = command
}

// Execute runs the specified command with the given arguments
func (r *CommandRegistry) Execute(ctx context.Context, commandName string, args []string) error {
	command, exists := r.commands[commandName]
	if !exists {
		return errors.NewInvalidInputError("command", commandName, "unknown command")
	}
	return command.Execute(ctx, args)
}

// Names returns the registered command names in alphabetical order
func (r *CommandRegistry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetUsage returns the usage string for the CLI
func (r *CommandRegistry) GetUsage() string {
	return "usage: team <command> [arguments]; commands: " + strings.Join(r.Names(), ", ")
}
