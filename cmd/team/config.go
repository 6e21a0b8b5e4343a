package main

import (
	"io"
	"os"

	"team-tracker/internal/api"
	"team-tracker/internal/config"
	"team-tracker/internal/repository/sqlite"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// RepositoryFactory creates repository instances based on environment
type RepositoryFactory struct {
	env Environment
}

// NewRepositoryFactory creates a new repository factory for the given environment
func NewRepositoryFactory(env Environment) *RepositoryFactory {
	return &RepositoryFactory{env: env}
}

// CreateRepository creates a repository instance based on the current environment.
// Testing uses an in-memory database, development a database file in the
// working directory, production the configured file.
func (rf *RepositoryFactory) CreateRepository(cfg *config.Config) (sqlite.Repository, error) {
	switch rf.env {
	case Testing:
		return config.CreateTestRepository()
	case Development:
		devConfig := *cfg
		devConfig.Database.Dir = "."
		return config.CreateRepository(&devConfig)
	default:
		return config.CreateRepository(cfg)
	}
}

// OpenAPI opens the repository and builds the BusinessAPI over it
func (rf *RepositoryFactory) OpenAPI(cfg *config.Config) (api.BusinessAPI, io.Closer, error) {
	repo, err := rf.CreateRepository(cfg)
	if err != nil {
		return nil, nil, err
	}
	return api.New(repo, cfg), repo, nil
}

// GetEnvironment determines the current environment from TEAM_ENV
func GetEnvironment() Environment {
	switch os.Getenv("TEAM_ENV") {
	case "development":
		return Development
	case "testing":
		return Testing
	default:
		// Default to production for safety
		return Production
	}
}
