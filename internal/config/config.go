// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/iwvelando/solar-forecast/internal/engine"
	"github.com/iwvelando/solar-forecast/internal/settings"
	"github.com/iwvelando/solar-forecast/pkg/constants"
	"github.com/iwvelando/solar-forecast/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for solar-forecast.
type Configuration struct {
	Settings         settings.Dictionary `yaml:"settings,omitempty"`
	SettingsDatabase string              `yaml:"settingsDatabase,omitempty"`
	Projection       ProjectionConfig    `yaml:"projection,omitempty"`
	Scenarios        []Scenario
	Logging          LoggingConfig `yaml:"logging,omitempty"`
	Output           OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// ProjectionConfig holds the projection defaults shared by all scenarios.
type ProjectionConfig struct {
	InflationRate float64 `yaml:"inflationRate,omitempty" mapstructure:"inflationRate"`
	Years         int     `yaml:"years,omitempty" mapstructure:"years"`
}

// Scenario is one household to simulate.
type Scenario struct {
	Name          string
	Active        bool
	Input         engine.Input `mapstructure:",squash"`
	InflationRate *float64     `yaml:"inflationRate,omitempty" mapstructure:"inflationRate"`
	Years         *int         `yaml:"years,omitempty" mapstructure:"years"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %w", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader parses a YAML configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config, %w", err)
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	for i := range configuration.Scenarios {
		s := &configuration.Scenarios[i]
		s.Input.Country = engine.Country(strings.ToUpper(strings.TrimSpace(string(s.Input.Country))))
	}

	return &configuration, nil
}

// InflationRateFor returns the scenario's inflation rate, falling back to
// the shared projection default.
func (c *Configuration) InflationRateFor(s Scenario) float64 {
	if s.InflationRate != nil {
		return *s.InflationRate
	}
	return c.Projection.InflationRate
}

// YearsFor returns the scenario's projection horizon, falling back to the
// shared default and then to constants.DefaultProjectionYears.
func (c *Configuration) YearsFor(s Scenario) int {
	if s.Years != nil && *s.Years > 0 {
		return *s.Years
	}
	if c.Projection.Years > 0 {
		return c.Projection.Years
	}
	return constants.DefaultProjectionYears
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	active := 0
	seen := make(map[string]bool)
	for i, s := range c.Scenarios {
		name := s.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i+1)
			warnings = append(warnings, fmt.Sprintf("scenario %s has no name", name))
		} else if seen[name] {
			warnings = append(warnings, fmt.Sprintf("scenario name %q is used more than once", name))
		}
		seen[name] = true

		if !s.Active {
			continue
		}
		active++

		if err := validation.ValidateInput(s.Input); err != nil {
			for _, line := range strings.Split(err.Error(), "\n") {
				warnings = append(warnings, fmt.Sprintf("scenario %s: %s", name, line))
			}
		}
		if err := validation.ValidateProjection(c.InflationRateFor(s), c.YearsFor(s)); err != nil {
			warnings = append(warnings, fmt.Sprintf("scenario %s: %s", name, err))
		}
	}

	if active == 0 {
		warnings = append(warnings, "no active scenarios configured")
	}

	keys := make([]string, 0, len(c.Settings))
	for key := range c.Settings {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if !isKnownKey(key) {
			warnings = append(warnings, fmt.Sprintf("settings key %q is not recognized and will be ignored", key))
		}
	}

	return warnings
}

func isKnownKey(key string) bool {
	for _, known := range settings.KnownKeys() {
		if strings.EqualFold(known, key) {
			return true
		}
	}
	return false
}
