package logger

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds logging configuration for a wfcgen process.
type Config struct {
	Level          string `yaml:"level"`
	ConsoleEnabled bool   `yaml:"console_enabled"`
	ConsoleFormat  string `yaml:"console_format"`
	FileEnabled    bool   `yaml:"file_enabled"`
	FilePath       string `yaml:"file_path"`
	FileFormat     string `yaml:"file_format"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
	FileMaxBackups int    `yaml:"file_max_backups"`
	FileMaxAgeDays int    `yaml:"file_max_age_days"`
}

// loggingDocument is the top-level YAML shape: logging settings live
// under a "logging" key alongside the build config's own top-level keys,
// so the two can share one config file.
type loggingDocument struct {
	Logging Config `yaml:"logging"`
}

// LoadConfig loads logging configuration from a YAML file and applies
// WFCGEN_LOG_* environment variable overrides afterward. A missing or
// unparsable file is not an error: defaults are returned silently,
// matching the build config's own "missing file -> defaults" contract
// (internal/config.LoadConfig).
func LoadConfig(configPath string) (Config, error) {
	config := Config{
		Level:          "INFO",
		ConsoleEnabled: true,
		ConsoleFormat:  "text",
		FileEnabled:    false,
		FilePath:       "logs/wfcgen.log",
		FileFormat:     "text",
		FileMaxSizeMB:  10,
		FileMaxBackups: 5,
		FileMaxAgeDays: 30,
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err == nil {
			var doc loggingDocument
			if err := yaml.Unmarshal(data, &doc); err == nil {
				if doc.Logging.Level != "" {
					config.Level = doc.Logging.Level
				}
				config.ConsoleEnabled = doc.Logging.ConsoleEnabled
				if doc.Logging.ConsoleFormat != "" {
					config.ConsoleFormat = doc.Logging.ConsoleFormat
				}
				config.FileEnabled = doc.Logging.FileEnabled
				if doc.Logging.FilePath != "" {
					config.FilePath = doc.Logging.FilePath
				}
				if doc.Logging.FileFormat != "" {
					config.FileFormat = doc.Logging.FileFormat
				}
				if doc.Logging.FileMaxSizeMB > 0 {
					config.FileMaxSizeMB = doc.Logging.FileMaxSizeMB
				}
				if doc.Logging.FileMaxBackups > 0 {
					config.FileMaxBackups = doc.Logging.FileMaxBackups
				}
				if doc.Logging.FileMaxAgeDays > 0 {
					config.FileMaxAgeDays = doc.Logging.FileMaxAgeDays
				}
			}
		}
		// Silently use defaults if the file doesn't exist or can't be parsed.
	}

	if level := os.Getenv("WFCGEN_LOG_LEVEL"); level != "" {
		config.Level = level
	}
	if format := os.Getenv("WFCGEN_LOG_CONSOLE_FORMAT"); format != "" {
		config.ConsoleFormat = format
	}
	if enabled := os.Getenv("WFCGEN_LOG_FILE_ENABLED"); enabled != "" {
		if parsed, err := strconv.ParseBool(enabled); err == nil {
			config.FileEnabled = parsed
		}
	}
	if path := os.Getenv("WFCGEN_LOG_FILE_PATH"); path != "" {
		config.FilePath = path
	}

	return config, nil
}
