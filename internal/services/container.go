package services

import (
	"team-tracker/internal/config"
	"team-tracker/internal/repository/sqlite"
)

// NewServiceContainer wires the roster, task and reporting services to
// one repository. A nil cfg uses the default limits.
func NewServiceContainer(repo sqlite.Repository, cfg *config.Config, opts ...Option) *ServiceContainer {
	roster := NewRosterService(repo, cfg, opts...)
	tasks := NewTaskService(repo, roster, cfg)
	return &ServiceContainer{
		RosterService:    roster,
		TaskService:      tasks,
		ReportingService: NewReportingService(repo, tasks, roster, opts...),
	}
}
