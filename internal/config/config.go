package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// DefaultDateFormat renders dates the way an en-US long date with time reads.
const DefaultDateFormat = "January 2, 2006 at 3:04 PM"

// DefaultKeywords are the role keywords reports group assignees by.
var DefaultKeywords = []string{"Designer", "Developer", "Tester"}

// Config holds all configuration options for the team tracker
type Config struct {
	Database    DatabaseConfig
	Display     DisplayConfig
	Validation  ValidationConfig
	Application ApplicationConfig
	Commands    CommandsConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `env:"TEAM_DB_DIR"`
	Filename       string        `env:"TEAM_DB_FILENAME"`
	QueryTimeout   time.Duration `env:"TEAM_DB_QUERY_TIMEOUT"`
	DirPermissions uint32        `env:"TEAM_DB_DIR_PERMISSIONS"`
}

// DisplayConfig holds output formatting configuration
type DisplayConfig struct {
	DateFormat string   `env:"TEAM_DISPLAY_DATE_FORMAT"`
	Keywords   []string `env:"TEAM_DISPLAY_KEYWORDS"`
	Color      bool     `env:"TEAM_DISPLAY_COLOR"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	NameMinLength int `env:"TEAM_VALIDATION_NAME_MIN"`
	NameMaxLength int `env:"TEAM_VALIDATION_NAME_MAX"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TEAM_APP_TIMEOUT"`
	Verbose bool          `env:"TEAM_APP_VERBOSE"`
}

// CommandsConfig holds command-specific defaults
type CommandsConfig struct {
	ExportDefaultFormat string `env:"TEAM_EXPORT_DEFAULT_FORMAT"`
	ScenarioFile        string `env:"TEAM_SCENARIO_FILE"`
}

// NewConfig creates a new configuration with defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Database: DatabaseConfig{
			Dir:            filepath.Join(homeDir, ".team"),
			Filename:       "team.db",
			QueryTimeout:   10 * time.Second,
			DirPermissions: 0755,
		},
		Display: DisplayConfig{
			DateFormat: DefaultDateFormat,
			Keywords:   append([]string(nil), DefaultKeywords...),
			Color:      false,
		},
		Validation: ValidationConfig{
			NameMinLength: 1,
			NameMaxLength: 100,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
		Commands: CommandsConfig{
			ExportDefaultFormat: "csv",
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// LoadFromEnvironment loads configuration from environment variables.
// Unparseable values are ignored and keep the current setting.
func (c *Config) LoadFromEnvironment() error {
	if dir := os.Getenv("TEAM_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TEAM_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("TEAM_DB_QUERY_TIMEOUT"); timeout != "" {
		c.Database.QueryTimeout = ParseDurationWithFallback(timeout, c.Database.QueryTimeout)
	}
	if perms := os.Getenv("TEAM_DB_DIR_PERMISSIONS"); perms != "" {
		c.Database.DirPermissions = ParseUint32WithFallback(perms, 8, c.Database.DirPermissions)
	}

	if format := os.Getenv("TEAM_DISPLAY_DATE_FORMAT"); format != "" {
		c.Display.DateFormat = format
	}
	if keywords := os.Getenv("TEAM_DISPLAY_KEYWORDS"); keywords != "" {
		c.Display.Keywords = SplitList(keywords)
	}
	if color := os.Getenv("TEAM_DISPLAY_COLOR"); color != "" {
		c.Display.Color = ParseBoolWithFallback(color, c.Display.Color)
	}

	if minLen := os.Getenv("TEAM_VALIDATION_NAME_MIN"); minLen != "" {
		c.Validation.NameMinLength = ParseIntWithFallback(minLen, c.Validation.NameMinLength)
	}
	if maxLen := os.Getenv("TEAM_VALIDATION_NAME_MAX"); maxLen != "" {
		c.Validation.NameMaxLength = ParseIntWithFallback(maxLen, c.Validation.NameMaxLength)
	}

	if timeout := os.Getenv("TEAM_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("TEAM_APP_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}

	if format := os.Getenv("TEAM_EXPORT_DEFAULT_FORMAT"); format != "" {
		c.Commands.ExportDefaultFormat = format
	}
	if file := os.Getenv("TEAM_SCENARIO_FILE"); file != "" {
		c.Commands.ScenarioFile = file
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}

	if c.Display.DateFormat == "" {
		return &ConfigError{Field: "display.date_format", Message: "date format cannot be empty"}
	}
	if len(c.Display.Keywords) == 0 {
		return &ConfigError{Field: "display.keywords", Message: "at least one role keyword is required"}
	}

	if c.Validation.NameMinLength < 1 {
		return &ConfigError{Field: "validation.name_min_length", Message: "name minimum length must be at least 1"}
	}
	if c.Validation.NameMaxLength < c.Validation.NameMinLength {
		return &ConfigError{Field: "validation.name_max_length", Message: "name maximum length must be greater than minimum length"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	if c.Commands.ExportDefaultFormat != "csv" {
		return &ConfigError{Field: "commands.export_default_format", Message: "only csv export is supported"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

// SplitList splits a comma separated list, dropping blank items.
func SplitList(s string) []string {
	var items []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
