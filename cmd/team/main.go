package main

import (
	"fmt"
	"os"

	"team-tracker/internal/cli"
	"team-tracker/internal/config"
)

func main() {
	// Load configuration: defaults, then TEAM_* environment variables.
	// Flags are applied by the root command before the database is opened.
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	factory := NewRepositoryFactory(GetEnvironment())
	root := cli.NewRootCommandWithFactory(factory.OpenAPI, cfg)

	if err := root.Execute(); err != nil {
		root.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
