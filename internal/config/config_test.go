package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "team.db", cfg.Database.Filename)
	assert.Equal(t, DefaultDateFormat, cfg.Display.DateFormat)
	assert.Equal(t, []string{"Designer", "Developer", "Tester"}, cfg.Display.Keywords)
	assert.Equal(t, "csv", cfg.Commands.ExportDefaultFormat)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TEAM_DB_DIR", "/tmp/team")
	t.Setenv("TEAM_DB_QUERY_TIMEOUT", "3s")
	t.Setenv("TEAM_DB_DIR_PERMISSIONS", "700")
	t.Setenv("TEAM_DISPLAY_KEYWORDS", "Developer, Tester,")
	t.Setenv("TEAM_DISPLAY_COLOR", "true")
	t.Setenv("TEAM_VALIDATION_NAME_MAX", "not-a-number")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, "/tmp/team/team.db", cfg.GetDatabasePath())
	assert.Equal(t, 3*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, uint32(0700), cfg.Database.DirPermissions)
	assert.Equal(t, []string{"Developer", "Tester"}, cfg.Display.Keywords)
	assert.True(t, cfg.Display.Color)
	assert.Equal(t, 100, cfg.Validation.NameMaxLength)
}

func TestLoadWithOverrides(t *testing.T) {
	t.Setenv("TEAM_DISPLAY_DATE_FORMAT", "2006-01-02")

	format := "02/01/2006 15:04"
	verbose := true
	cfg, err := NewLoader().LoadWithOverrides(&ConfigOverrides{
		DateFormat: &format,
		Verbose:    &verbose,
		Keywords:   []string{"Developer"},
	})
	require.NoError(t, err)

	assert.Equal(t, format, cfg.Display.DateFormat)
	assert.True(t, cfg.Application.Verbose)
	assert.Equal(t, []string{"Developer"}, cfg.Display.Keywords)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"empty dir", func(c *Config) { c.Database.Dir = "" }, "database.dir"},
		{"no keywords", func(c *Config) { c.Display.Keywords = nil }, "display.keywords"},
		{"max below min", func(c *Config) { c.Validation.NameMaxLength = 0 }, "validation.name_max_length"},
		{"zero timeout", func(c *Config) { c.Application.Timeout = 0 }, "application.timeout"},
		{"unsupported export", func(c *Config) { c.Commands.ExportDefaultFormat = "xml" }, "commands.export_default_format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			var configErr *ConfigError
			require.ErrorAs(t, err, &configErr)
			assert.Equal(t, tt.field, configErr.Field)
		})
	}
}
