package services

import (
	"context"
	"fmt"

	"team-tracker/internal/config"
	"team-tracker/internal/domain"
	"team-tracker/internal/errors"
	"team-tracker/internal/logging"
	"team-tracker/internal/repository/sqlite"
	"team-tracker/internal/validation"
)

// rosterServiceImpl implements the RosterService interface
type rosterServiceImpl struct {
	repo            sqlite.Repository
	mapper          *domain.Mapper
	memberValidator *validation.MemberValidator
	clock           Clock
}

// NewRosterService creates a new RosterService instance. A nil cfg uses
// the default name limits.
func NewRosterService(repo sqlite.Repository, cfg *config.Config, opts ...Option) RosterService {
	o := newOptions(opts)
	return &rosterServiceImpl{
		repo:            repo,
		mapper:          domain.NewMapper(),
		memberValidator: validation.NewMemberValidatorWithConfig(cfg),
		clock:           o.clock,
	}
}

// HireMember validates and stores a new member
func (r *rosterServiceImpl) HireMember(ctx context.Context, kind, name, level string) (*domain.TeamMember, error) {
	trimmedName, err := r.memberValidator.GetValidName(name)
	if err != nil {
		return nil, errors.NewValidationError("invalid member name", err)
	}
	if err := r.memberValidator.ValidateKind(kind, domain.KindNames()); err != nil {
		return nil, err
	}
	if err := r.memberValidator.ValidateLevel(level, domain.LevelNames()); err != nil {
		return nil, err
	}

	tm, err := domain.NewTeamMember(domain.RoleKind(kind), trimmedName, domain.Level(level), r.clock())
	if err != nil {
		return nil, err
	}

	dbMember := r.mapper.Member.ToDatabase(tm)
	if err := r.repo.CreateMember(ctx, &dbMember); err != nil {
		return nil, err
	}
	tm.ID = dbMember.ID

	logging.Debugf("hired member %d\n", tm.ID)
	return &tm, nil
}

// GetMember retrieves a member by its ID
func (r *rosterServiceImpl) GetMember(ctx context.Context, id int64) (*domain.TeamMember, error) {
	if err := r.memberValidator.ValidateMemberID(id); err != nil {
		return nil, errors.NewValidationError("invalid member ID", err)
	}

	dbMember, err := r.repo.GetMember(ctx, id)
	if err != nil {
		return nil, err
	}

	tm, err := r.mapper.Member.FromDatabase(*dbMember)
	if err != nil {
		return nil, errors.WrapError(err, errors.ErrorTypeDatabase, fmt.Sprintf("member %d has an unknown kind", id))
	}
	return &tm, nil
}

// ListMembers returns the roster in hiring order
func (r *rosterServiceImpl) ListMembers(ctx context.Context) ([]*domain.TeamMember, error) {
	dbMembers, err := r.repo.ListMembers(ctx)
	if err != nil {
		return nil, err
	}

	members, err := r.mapper.Member.FromDatabaseSlice(dbMembers)
	if err != nil {
		return nil, errors.WrapError(err, errors.ErrorTypeDatabase, "roster contains a member with an unknown kind")
	}

	result := make([]*domain.TeamMember, len(members))
	for i := range members {
		result[i] = &members[i]
	}
	return result, nil
}

// ChangeLevel sets a new level. An unknown level is rejected and the
// stored member is left as it was.
func (r *rosterServiceImpl) ChangeLevel(ctx context.Context, id int64, level string) (*domain.TeamMember, error) {
	tm, err := r.GetMember(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := tm.Member.SetLevel(level); err != nil {
		return nil, err
	}

	if err := r.save(ctx, tm); err != nil {
		return nil, err
	}

	logging.Debugf("member %d is now %s\n", id, level)
	return tm, nil
}

// RenameMember changes a member's name
func (r *rosterServiceImpl) RenameMember(ctx context.Context, id int64, name string) (*domain.TeamMember, error) {
	trimmedName, err := r.memberValidator.GetValidName(name)
	if err != nil {
		return nil, errors.NewValidationError("invalid member name", err)
	}

	tm, err := r.GetMember(ctx, id)
	if err != nil {
		return nil, err
	}

	tm.Member.SetName(trimmedName)
	if err := r.save(ctx, tm); err != nil {
		return nil, err
	}
	return tm, nil
}

// DismissMember removes a member from the roster. Task assignees keep
// their text but lose the link to the member.
func (r *rosterServiceImpl) DismissMember(ctx context.Context, id int64) error {
	if err := r.memberValidator.ValidateMemberID(id); err != nil {
		return errors.NewValidationError("invalid member ID", err)
	}

	if err := r.repo.DeleteMember(ctx, id); err != nil {
		return err
	}

	logging.Debugf("dismissed member %d\n", id)
	return nil
}

// Perform runs one of the member's actions
func (r *rosterServiceImpl) Perform(ctx context.Context, id int64, action string) (*ActionResult, error) {
	tm, err := r.GetMember(ctx, id)
	if err != nil {
		return nil, err
	}

	found, err := domain.FindAction(tm.Member, action)
	if err != nil {
		return nil, err
	}

	return &ActionResult{Member: tm, Action: found.Name, Phrase: found.Run()}, nil
}

func (r *rosterServiceImpl) save(ctx context.Context, tm *domain.TeamMember) error {
	dbMember := r.mapper.Member.ToDatabase(*tm)
	return r.repo.UpdateMember(ctx, &dbMember)
}
