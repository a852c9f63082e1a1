package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-extractor/internal/dates"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_ValidYAML(t *testing.T) {
	path := writeConfig(t, `
fields: [name, email, skills]
debug_fields: [location]
workers: 4
format: xlsx
two_digit_year: day
extra_skills: [elixir]
extra_cities: [mangalore]
city_aliases:
  bombay: mumbai
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, []string{"name", "email", "skills"}, cfg.Fields)
	assert.Equal(t, map[string]bool{"location": true}, cfg.DebugFieldSet())
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "xlsx", cfg.Format)
	assert.Equal(t, dates.TwoDigitDay, cfg.TwoDigitMode())

	vocab := cfg.Vocabulary()
	assert.Equal(t, []string{"elixir"}, vocab.Skills)
	assert.Equal(t, []string{"mangalore"}, vocab.Cities)
	assert.Equal(t, map[string]string{"bombay": "mumbai"}, vocab.CityAliases)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	path := writeConfig(t, "format: xlsx\nworkers: 2\n")
	t.Setenv("RESUME_FORMAT", "json")
	t.Setenv("RESUME_FIELDS", "name, email")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, []string{"name", "email"}, cfg.Fields)
}

func TestLoadConfig_EmptyPathUsesEnvironment(t *testing.T) {
	t.Setenv("RESUME_LOG_FORMAT", "json")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "fields: [unclosed\n")

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.yaml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		field string
	}{
		{"bad format", Config{Format: "pdf"}, "format"},
		{"bad two digit mode", Config{TwoDigitYear: "month"}, "two_digit_year"},
		{"negative workers", Config{Workers: -1}, "workers"},
		{"blank extra skill", Config{ExtraSkills: []string{""}}, "extra_skills[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.Error(t, err)

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}

	ok := Defaults()
	assert.NoError(t, ok.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{Format: "json", Workers: 3}
	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, "json", merged.Format)
	assert.Equal(t, 3, merged.Workers)
	assert.Equal(t, "output", merged.OutputDir)
	assert.Equal(t, "resumes", merged.InputDir)
	assert.Equal(t, "year", merged.TwoDigitYear)
	assert.Equal(t, "console", merged.LogFormat)
}

func TestConfigError(t *testing.T) {
	cause := errors.New("boom")
	err := &ConfigError{Field: "format", Message: "bad", Cause: cause}
	assert.Equal(t, "config error: 'format': bad: boom", err.Error())
	assert.ErrorIs(t, err, cause)
}
