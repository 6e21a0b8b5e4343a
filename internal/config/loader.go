package config

import "time"

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load applies, in order: defaults, environment variables, validation.
// Command line flags are applied later through LoadWithOverrides.
func (l *Loader) Load() (*Config, error) {
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		overrides.Apply(config)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides. Nil fields are left alone.
type ConfigOverrides struct {
	DBDir          *string
	DBFilename     *string
	DBQueryTimeout *time.Duration

	DateFormat *string
	Keywords   []string
	Color      *bool

	NameMinLength *int
	NameMaxLength *int

	Timeout *time.Duration
	Verbose *bool

	ExportDefaultFormat *string
	ScenarioFile        *string
}

// Apply copies every set override onto config.
func (o *ConfigOverrides) Apply(config *Config) {
	if o.DBDir != nil {
		config.Database.Dir = *o.DBDir
	}
	if o.DBFilename != nil {
		config.Database.Filename = *o.DBFilename
	}
	if o.DBQueryTimeout != nil {
		config.Database.QueryTimeout = *o.DBQueryTimeout
	}

	if o.DateFormat != nil {
		config.Display.DateFormat = *o.DateFormat
	}
	if len(o.Keywords) > 0 {
		config.Display.Keywords = o.Keywords
	}
	if o.Color != nil {
		config.Display.Color = *o.Color
	}

	if o.NameMinLength != nil {
		config.Validation.NameMinLength = *o.NameMinLength
	}
	if o.NameMaxLength != nil {
		config.Validation.NameMaxLength = *o.NameMaxLength
	}

	if o.Timeout != nil {
		config.Application.Timeout = *o.Timeout
	}
	if o.Verbose != nil {
		config.Application.Verbose = *o.Verbose
	}

	if o.ExportDefaultFormat != nil {
		config.Commands.ExportDefaultFormat = *o.ExportDefaultFormat
	}
	if o.ScenarioFile != nil {
		config.Commands.ScenarioFile = *o.ScenarioFile
	}
}
