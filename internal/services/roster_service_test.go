package services

import (
	"context"
	"strings"
	"testing"

	"team-tracker/internal/config"
	"team-tracker/internal/domain"
	"team-tracker/internal/errors"
	"team-tracker/internal/repository/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRosterService_HireMember(t *testing.T) {
	tests := []struct {
		name           string
		kind           string
		memberName     string
		level          string
		errorAssertion func(t *testing.T, err error)
	}{
		{
			name:       "should hire a frontend developer",
			kind:       "frontend",
			memberName: "Ann",
			level:      "Senior",
		},
		{
			name:       "should trim the name",
			kind:       "tester",
			memberName: "  Bo  ",
			level:      "Intern",
		},
		{
			name:       "should reject an empty name",
			kind:       "tester",
			memberName: " ",
			level:      "Intern",
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
			},
		},
		{
			name:       "should reject an unknown kind",
			kind:       "manager",
			memberName: "Cy",
			level:      "Senior",
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsInvalidValue(err))
				assert.Contains(t, errors.GetUserMessage(err), "frontend, backend, fullstack, designer, tester, developer")
			},
		},
		{
			name:       "should reject an unknown level",
			kind:       "backend",
			memberName: "Cy",
			level:      "Lead",
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsInvalidValue(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := setupServices(t)

			result, err := s.RosterService.HireMember(context.Background(), tt.kind, tt.memberName, tt.level)

			if tt.errorAssertion != nil {
				require.Error(t, err)
				tt.errorAssertion(t, err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Greater(t, result.ID, int64(0))
			assert.Equal(t, domain.RoleKind(tt.kind), result.Kind)
			assert.Equal(t, strings.TrimSpace(tt.memberName), result.Member.Name())
			assert.Equal(t, fixedNow, result.HiredAt)
		})
	}
}

func TestRosterService_NameLimitsFromConfig(t *testing.T) {
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	defer repo.Close()

	cfg := config.NewConfig()
	cfg.Validation.NameMaxLength = 3
	roster := NewRosterService(repo, cfg)

	_, err = roster.HireMember(context.Background(), "tester", "Bob", "Junior")
	require.NoError(t, err)

	_, err = roster.HireMember(context.Background(), "tester", "Bobby", "Junior")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
}

func TestRosterService_GetAndList(t *testing.T) {
	s, _ := setupServices(t)
	ctx := context.Background()

	ann := hire(t, s, "frontend", "Ann", "Senior")
	hire(t, s, "designer", "Eve", "Junior")

	got, err := s.RosterService.GetMember(ctx, ann.ID)
	require.NoError(t, err)
	assert.IsType(t, &domain.FrontEnd{}, got.Member)
	assert.Equal(t, ann.Member.Details(), got.Member.Details())

	_, err = s.RosterService.GetMember(ctx, 0)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))

	_, err = s.RosterService.GetMember(ctx, 999)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	members, err := s.RosterService.ListMembers(ctx)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "Ann", members[0].Member.Name())
	assert.Equal(t, domain.KindDesigner, members[1].Kind)
}

func TestRosterService_ListMembers_Empty(t *testing.T) {
	s, _ := setupServices(t)

	members, err := s.RosterService.ListMembers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestRosterService_ChangeLevel(t *testing.T) {
	s, _ := setupServices(t)
	ctx := context.Background()
	ann := hire(t, s, "frontend", "Ann", "Junior")

	updated, err := s.RosterService.ChangeLevel(ctx, ann.ID, "Middle")
	require.NoError(t, err)
	assert.Equal(t, domain.LevelMiddle, updated.Member.Level())

	_, err = s.RosterService.ChangeLevel(ctx, ann.ID, "Architect")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidValue(err))

	stored, err := s.RosterService.GetMember(ctx, ann.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LevelMiddle, stored.Member.Level())
}

func TestRosterService_RenameMember(t *testing.T) {
	s, _ := setupServices(t)
	ctx := context.Background()
	ann := hire(t, s, "backend", "Ann", "Junior")

	renamed, err := s.RosterService.RenameMember(ctx, ann.ID, "Ann Lee")
	require.NoError(t, err)
	assert.Equal(t, "Name: Ann Lee\nRole: BackEnd Developer\nExperience: Junior", renamed.Member.Details())

	_, err = s.RosterService.RenameMember(ctx, ann.ID, "")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))

	_, err = s.RosterService.RenameMember(ctx, 999, "Nobody")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestRosterService_DismissMember(t *testing.T) {
	s, _ := setupServices(t)
	ctx := context.Background()
	ann := hire(t, s, "tester", "Ann", "Junior")

	require.NoError(t, s.RosterService.DismissMember(ctx, ann.ID))

	_, err := s.RosterService.GetMember(ctx, ann.ID)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	err = s.RosterService.DismissMember(ctx, ann.ID)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	err = s.RosterService.DismissMember(ctx, -1)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
}

func TestRosterService_Perform(t *testing.T) {
	s, _ := setupServices(t)
	ctx := context.Background()
	dan := hire(t, s, "fullstack", "Dan", "Senior")

	result, err := s.RosterService.Perform(ctx, dan.ID, "createdb")
	require.NoError(t, err)
	assert.Equal(t, "CreateDb", result.Action)
	assert.Equal(t, "Create Database", result.Phrase)
	assert.Equal(t, dan.ID, result.Member.ID)

	_, err = s.RosterService.Perform(ctx, dan.ID, "RunUnitTests")
	assert.True(t, errors.IsInvalidValue(err))
}

func TestRosterService_UnknownStoredKind(t *testing.T) {
	s, repo := setupServices(t)
	ctx := context.Background()

	dbMember := &sqlite.Member{Kind: "manager", Name: "Old", Level: "Senior", HiredAt: fixedNow}
	require.NoError(t, repo.CreateMember(ctx, dbMember))

	_, err := s.RosterService.GetMember(ctx, dbMember.ID)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeDatabase))

	_, err = s.RosterService.ListMembers(ctx)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeDatabase))
}
