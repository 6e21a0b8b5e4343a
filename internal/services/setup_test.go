package services

import (
	"context"
	"testing"
	"time"

	"team-tracker/internal/domain"
	"team-tracker/internal/repository/sqlite"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 10, 31, 17, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

func setupServices(t *testing.T) (*ServiceContainer, sqlite.Repository) {
	t.Helper()

	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return NewServiceContainer(repo, nil, WithClock(fixedClock)), repo
}

func hire(t *testing.T, s *ServiceContainer, kind, name, level string) *domain.TeamMember {
	t.Helper()

	tm, err := s.RosterService.HireMember(context.Background(), kind, name, level)
	require.NoError(t, err)
	return tm
}
