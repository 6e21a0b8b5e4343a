package cli

import (
	"context"
	"strings"

	"team-tracker/internal/api"
	"team-tracker/internal/domain"
	"team-tracker/internal/errors"
)

// HireCommand handles the hire command
type HireCommand struct {
	app          *App
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler
}

// NewHireCommand creates a new hire command handler
func NewHireCommand(app *App) *HireCommand {
	return &HireCommand{app: app, businessAPI: app.businessAPI, errorHandler: NewErrorHandler()}
}

// Execute runs the hire command
func (c *HireCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return errors.NewInvalidInputError("command", "hire", "usage: team hire <kind> <level> <name...>")
	}

	tm, err := c.businessAPI.HireMember(ctx, args[0], strings.Join(args[2:], " "), args[1])
	if err != nil {
		return c.errorHandler.Handle("hire member", err)
	}

	c.app.println(c.app.styles.Success("Hired member " + formatID(tm.ID)))
	c.app.println(tm.Member.Details())
	return nil
}

// MembersCommand handles the members command
type MembersCommand struct {
	app          *App
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler
}

// NewMembersCommand creates a new members command handler
func NewMembersCommand(app *App) *MembersCommand {
	return &MembersCommand{app: app, businessAPI: app.businessAPI, errorHandler: NewErrorHandler()}
}

// Execute lists the roster
func (c *MembersCommand) Execute(ctx context.Context, args []string) error {
	members, err := c.businessAPI.ListMembers(ctx)
	if err != nil {
		return c.errorHandler.Handle("list members", err)
	}

	if len(members) == 0 {
		c.app.println("No members found")
		return nil
	}

	c.app.println(c.app.styles.Heading(memberRow("ID", "KIND", "LEVEL", "NAME")))
	for _, tm := range members {
		c.app.println(memberRow(formatID(tm.ID), string(tm.Kind), tm.Member.Level().String(), tm.Member.Name()))
	}
	return nil
}

// IntroduceCommand handles the introduce command
type IntroduceCommand struct {
	app          *App
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler
}

// NewIntroduceCommand creates a new introduce command handler
func NewIntroduceCommand(app *App) *IntroduceCommand {
	return &IntroduceCommand{app: app, businessAPI: app.businessAPI, errorHandler: NewErrorHandler()}
}

// Execute has one member, or the whole roster in hiring order, introduce itself
func (c *IntroduceCommand) Execute(ctx context.Context, args []string) error {
	var members []*domain.TeamMember

	if len(args) > 0 {
		id, err := parseID("member_id", args[0])
		if err != nil {
			return c.errorHandler.Handle("introduce member", err)
		}
		tm, err := c.businessAPI.GetMember(ctx, id)
		if err != nil {
			return c.errorHandler.Handle("introduce member", err)
		}
		members = append(members, tm)
	} else {
		var err error
		if members, err = c.businessAPI.ListMembers(ctx); err != nil {
			return c.errorHandler.Handle("introduce members", err)
		}
	}

	for _, tm := range members {
		if err := tm.Member.Introduce(c.app.out); err != nil {
			return err
		}
	}
	return nil
}

// LevelCommand handles the level command
type LevelCommand struct {
	app          *App
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler
}

// NewLevelCommand creates a new level command handler
func NewLevelCommand(app *App) *LevelCommand {
	return &LevelCommand{app: app, businessAPI: app.businessAPI, errorHandler: NewErrorHandler()}
}

// Execute changes a member's experience level
func (c *LevelCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.NewInvalidInputError("command", "level", "usage: team level <member-id> <level>")
	}

	id, err := parseID("member_id", args[0])
	if err != nil {
		return c.errorHandler.Handle("change level", err)
	}

	tm, err := c.businessAPI.ChangeLevel(ctx, id, args[1])
	if err != nil {
		return c.errorHandler.Handle("change level", err)
	}

	c.app.println(c.app.styles.Success("Updated member " + formatID(tm.ID)))
	c.app.println(tm.Member.Details())
	return nil
}

// RenameCommand handles the rename command
type RenameCommand struct {
	app          *App
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler
}

// NewRenameCommand creates a new rename command handler
func NewRenameCommand(app *App) *RenameCommand {
	return &RenameCommand{app: app, businessAPI: app.businessAPI, errorHandler: NewErrorHandler()}
}

// Execute changes a member's name
func (c *RenameCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewInvalidInputError("command", "rename", "usage: team rename <member-id> <name...>")
	}

	id, err := parseID("member_id", args[0])
	if err != nil {
		return c.errorHandler.Handle("rename member", err)
	}

	tm, err := c.businessAPI.RenameMember(ctx, id, strings.Join(args[1:], " "))
	if err != nil {
		return c.errorHandler.Handle("rename member", err)
	}

	c.app.println(c.app.styles.Success("Updated member " + formatID(tm.ID)))
	c.app.println(tm.Member.Details())
	return nil
}

// ActCommand handles the act command
type ActCommand struct {
	app          *App
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler
}

// NewActCommand creates a new act command handler
func NewActCommand(app *App) *ActCommand {
	return &ActCommand{app: app, businessAPI: app.businessAPI, errorHandler: NewErrorHandler()}
}

// Execute performs one action, or lists the member's actions when none is given
func (c *ActCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 || len(args) > 2 {
		return errors.NewInvalidInputError("command", "act", "usage: team act <member-id> [action]")
	}

	id, err := parseID("member_id", args[0])
	if err != nil {
		return c.errorHandler.Handle("perform action", err)
	}

	if len(args) == 1 {
		tm, err := c.businessAPI.GetMember(ctx, id)
		if err != nil {
			return c.errorHandler.Handle("list actions", err)
		}
		c.app.println(c.app.styles.Heading("Actions for " + tm.Member.Name() + " (" + tm.Member.RoleLabel() + "):"))
		for _, name := range domain.ActionNames(tm.Member) {
			c.app.println("  " + name)
		}
		return nil
	}

	result, err := c.businessAPI.PerformAction(ctx, id, args[1])
	if err != nil {
		return c.errorHandler.Handle("perform action", err)
	}

	c.app.println(result.Phrase)
	return nil
}

// DismissCommand handles the dismiss command
type DismissCommand struct {
	app          *App
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler
}

// NewDismissCommand creates a new dismiss command handler
func NewDismissCommand(app *App) *DismissCommand {
	return &DismissCommand{app: app, businessAPI: app.businessAPI, errorHandler: NewErrorHandler()}
}

// Execute removes a member from the roster
func (c *DismissCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "dismiss", "usage: team dismiss <member-id>")
	}

	id, err := parseID("member_id", args[0])
	if err != nil {
		return c.errorHandler.Handle("dismiss member", err)
	}

	if err := c.businessAPI.DismissMember(ctx, id); err != nil {
		return c.errorHandler.Handle("dismiss member", err)
	}

	c.app.println(c.app.styles.Success("Dismissed member " + formatID(id)))
	return nil
}
