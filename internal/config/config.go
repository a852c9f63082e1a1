// Package config provides configuration loading and validation for the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/jonathan/resume-extractor/internal/dates"
	"github.com/jonathan/resume-extractor/internal/patterns"
)

// EnvPrefix is the prefix of environment variables that override the config file
const EnvPrefix = "RESUME_"

// Config represents the CLI configuration that can be loaded from a YAML file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Selection
	Fields      []string `koanf:"fields"`       // Fields to extract; empty means all
	Debug       bool     `koanf:"debug"`        // Debug diagnostics for every field
	DebugFields []string `koanf:"debug_fields"` // Debug diagnostics for these fields only

	// Execution
	Workers int `koanf:"workers" validate:"gte=0,lte=256"` // 0 means one per CPU

	// Paths
	InputDir  string `koanf:"input_dir"`  // Directory scanned by --all
	OutputDir string `koanf:"output_dir"` // Directory export files are written to

	// Behavior
	Format       string `koanf:"format" validate:"omitempty,oneof=csv xlsx json"`
	TwoDigitYear string `koanf:"two_digit_year" validate:"omitempty,oneof=year day"` // How "Mar 15" is read
	LogFormat    string `koanf:"log_format" validate:"omitempty,oneof=console json"`

	// Vocabulary extras
	ExtraSkills []string          `koanf:"extra_skills" validate:"dive,required"`
	ExtraCities []string          `koanf:"extra_cities" validate:"dive,required"`
	CityAliases map[string]string `koanf:"city_aliases" validate:"dive,keys,required,endkeys,required"`
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		InputDir:     "resumes",
		OutputDir:    "output",
		Format:       "csv",
		TwoDigitYear: "year",
		LogFormat:    "console",
	}
}

// ConfigError describes an invalid or unreadable configuration
type ConfigError struct {
	Field   string
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	msg := "config error"
	if e.Field != "" {
		msg += fmt.Sprintf(": '%s'", e.Field)
	}
	msg += ": " + e.Message
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// LoadConfig loads configuration from an optional YAML file, then overrides it
// with RESUME_* environment variables. List values in the environment are
// comma-separated. The result is validated but not merged with defaults.
func LoadConfig(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, &ConfigError{Message: fmt.Sprintf("failed to read config file %s", path), Cause: err}
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, &ConfigError{Message: "failed to parse config YAML", Cause: err}
		}
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
		return nil, &ConfigError{Message: "failed to load environment variables", Cause: err}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, &ConfigError{Message: "failed to unmarshal config", Cause: err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var listKeys = map[string]bool{
	"fields":       true,
	"debug_fields": true,
	"extra_skills": true,
	"extra_cities": true,
}

// envValue maps RESUME_TWO_DIGIT_YEAR to two_digit_year and splits list values
func envValue(key, value string) (string, any) {
	k := strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	if !listKeys[k] {
		return k, value
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return k, items
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("koanf"), ",", 2)[0]
	})
	return v
}

// Validate checks that the configuration has valid values
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &ConfigError{
			Field:   fe.Field(),
			Message: fmt.Sprintf("invalid value %v (rule %s)", fe.Value(), fe.Tag()),
		}
	}
	return &ConfigError{Message: "validation failed", Cause: err}
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.InputDir == "" {
		result.InputDir = defaults.InputDir
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}
	if result.TwoDigitYear == "" {
		result.TwoDigitYear = defaults.TwoDigitYear
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	// Int fields: use default if zero
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}

	// Slices: use default if empty
	if len(result.Fields) == 0 {
		result.Fields = defaults.Fields
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Vocabulary returns the pattern-library extras named by the config
func (c *Config) Vocabulary() patterns.Extras {
	return patterns.Extras{
		Skills:      c.ExtraSkills,
		Cities:      c.ExtraCities,
		CityAliases: c.CityAliases,
	}
}

// TwoDigitMode returns how bare two-digit month numbers are read
func (c *Config) TwoDigitMode() dates.TwoDigitMode {
	mode, _ := dates.ParseTwoDigitMode(c.TwoDigitYear)
	return mode
}

// DebugFieldSet returns the per-field debug switches as a set
func (c *Config) DebugFieldSet() map[string]bool {
	set := make(map[string]bool, len(c.DebugFields))
	for _, f := range c.DebugFields {
		set[f] = true
	}
	return set
}
