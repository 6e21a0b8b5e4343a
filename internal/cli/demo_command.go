package cli

import (
	"context"
	"fmt"

	"team-tracker/internal/api"
	"team-tracker/internal/errors"
	"team-tracker/internal/scenario"
)

// DemoOptions selects where the demo scenario comes from and what is
// done with it
type DemoOptions struct {
	// ScenarioFile is read instead of the built-in sample team
	ScenarioFile string
	// Save stores the scenario's members, task and report
	Save bool
	// WriteScenario writes the scenario as YAML instead of running it
	WriteScenario string
}

// DemoCommand handles the demo command
type DemoCommand struct {
	app          *App
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler
	options      DemoOptions
}

// NewDemoCommand creates a new demo command handler
func NewDemoCommand(app *App, options DemoOptions) *DemoCommand {
	return &DemoCommand{app: app, businessAPI: app.businessAPI, errorHandler: NewErrorHandler(), options: options}
}

// Execute plays the scenario: introductions, task details, report details
func (c *DemoCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return errors.NewInvalidInputError("command", "demo", "usage: team demo [--scenario file] [--save] [--write-scenario file]")
	}

	s, err := c.loadScenario()
	if err != nil {
		return c.errorHandler.Handle("load scenario", err)
	}

	if c.options.WriteScenario != "" {
		if err := scenario.Save(c.options.WriteScenario, s); err != nil {
			return c.errorHandler.Handle("write scenario", err)
		}
		c.app.println(c.app.styles.Success("Wrote scenario to " + c.options.WriteScenario))
		return nil
	}

	if _, err := scenario.Run(c.app.out, s, c.app.formatter, timeNow()); err != nil {
		return c.errorHandler.Handle("run scenario", err)
	}

	if !c.options.Save {
		return nil
	}

	imported, err := c.businessAPI.ImportScenario(ctx, s)
	if err != nil {
		return c.errorHandler.Handle("save scenario", err)
	}
	c.app.println(c.app.styles.Success(fmt.Sprintf("Saved as task %d, report %d", imported.Task.ID, imported.Report.ID)))
	return nil
}

// loadScenario reads the flag's file, then the configured file, then
// falls back to the sample team
func (c *DemoCommand) loadScenario() (*scenario.Scenario, error) {
	path := c.options.ScenarioFile
	if path == "" {
		path = c.app.config.Commands.ScenarioFile
	}
	if path == "" {
		return scenario.Default(), nil
	}

	s, err := scenario.Load(path)
	if err != nil {
		return nil, errors.NewInvalidInputError("scenario", path, err.Error())
	}
	return s, nil
}
