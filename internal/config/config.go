package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	apperrors "classmate/internal/errors"
	"classmate/internal/validation"
)

// EnvPrefix namespaces every environment variable, e.g. CLASSMATE_LOGGING_LEVEL.
const EnvPrefix = "CLASSMATE"

// Config represents the complete application configuration
type Config struct {
	Roster    RosterConfig    `yaml:"roster" envconfig:"ROSTER"`
	Output    OutputConfig    `yaml:"output" envconfig:"OUTPUT"`
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Telemetry TelemetryConfig `yaml:"telemetry" envconfig:"TELEMETRY"`
}

// RosterConfig describes where the roster export lives and how to read it
type RosterConfig struct {
	InputDir       string `yaml:"input_dir" envconfig:"INPUT_DIR"`
	IdentityColumn string `yaml:"identity_column" envconfig:"IDENTITY_COLUMN" validate:"label"`
	SkipColumns    int    `yaml:"skip_columns" envconfig:"SKIP_COLUMNS" validate:"min=0"`
}

// OutputConfig controls which reports are written and where
type OutputConfig struct {
	Dir      string `yaml:"dir" envconfig:"DIR"`
	BaseName string `yaml:"base_name" envconfig:"BASE_NAME" validate:"required,filename"`
	Banner   string `yaml:"banner" envconfig:"BANNER"`
	Console  bool   `yaml:"console" envconfig:"CONSOLE"`
	Workbook bool   `yaml:"workbook" envconfig:"WORKBOOK"`
	CSV      bool   `yaml:"csv" envconfig:"CSV"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=stderr file both none"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" validate:"required_if=Output file,required_if=Output both"`
}

// TelemetryConfig switches the trace and metrics files on
type TelemetryConfig struct {
	Tracing     bool   `yaml:"tracing" envconfig:"TRACING"`
	TraceFile   string `yaml:"trace_file" envconfig:"TRACE_FILE" validate:"required_if=Tracing true"`
	Metrics     bool   `yaml:"metrics" envconfig:"METRICS"`
	MetricsFile string `yaml:"metrics_file" envconfig:"METRICS_FILE" validate:"required_if=Metrics true"`
}

// Load builds the configuration from defaults, then the config file if one
// exists, then environment variables. Later sources win.
func Load() (*Config, error) {
	cfg := Default()

	// Load from config file if exists
	if configFile := getConfigFilePath(); configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, apperrors.NewConfigError("failed to load config from file", err).
				WithContext("path", configFile)
		}
	}

	// Environment variables override file and defaults
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, apperrors.NewConfigError("failed to load config from env", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile overlays the YAML file at filePath onto cfg. Keys absent from
// the file keep their current values.
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// validate validates the configuration
func (c *Config) validate() error {
	return validation.NewStructValidator().Struct(c)
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	if explicit := os.Getenv(EnvPrefix + "_CONFIG"); explicit != "" {
		return explicit
	}

	// Check for config file in common locations
	locations := []string{
		"classmate.yaml",
		"configs/classmate.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use env vars only
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Roster: RosterConfig{
			InputDir:       "",
			IdentityColumn: DefaultIdentityColumn,
			SkipColumns:    DefaultSkipColumns,
		},
		Output: OutputConfig{
			Dir:      "",
			BaseName: DefaultOutputBaseName,
			Banner:   DefaultBanner,
			Console:  true,
			Workbook: false,
			CSV:      false,
		},
		Logging: LoggingConfig{
			Level:    "warn",
			Format:   "json",
			Output:   "stderr",
			FilePath: "logs/classmate.log",
		},
		Telemetry: TelemetryConfig{
			Tracing:     false,
			TraceFile:   "logs/classmate-trace.json",
			Metrics:     false,
			MetricsFile: "classmate.prom",
		},
	}
}
