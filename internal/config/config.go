package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// StdoutOutput selects standard output as the export destination.
	StdoutOutput = "-"

	defaultFormat   = "json"
	defaultIndent   = 2
	defaultLogLevel = "info"
	maxIndent       = 8

	envPrefix = "EMAILCONFIG_"
)

var supportedFormats = map[string]struct{}{
	"json": {},
	"yaml": {},
}

var supportedLogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// Config aggregates the exporter settings resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	Format   string
	Output   string
	Indent   int
	LogLevel string
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	Format   string `yaml:"format"`
	Output   string `yaml:"output"`
	Indent   *int   `yaml:"indent"`
	LogLevel string `yaml:"log_level"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile string
	Format     *string
	Output     *string
	Indent     *int
	LogLevel   *string
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	applyEnvConfig(&cfg)

	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg)
	}

	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func defaultConfig() Config {
	return Config{
		Format:   defaultFormat,
		Output:   StdoutOutput,
		Indent:   defaultIndent,
		LogLevel: defaultLogLevel,
	}
}

func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) {
	if yamlCfg.Format != "" {
		cfg.Format = normalize(yamlCfg.Format)
	}
	if yamlCfg.Output != "" {
		cfg.Output = yamlCfg.Output
	}
	if yamlCfg.Indent != nil {
		cfg.Indent = *yamlCfg.Indent
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = normalize(yamlCfg.LogLevel)
	}
}

func applyEnvConfig(cfg *Config) {
	if format := strings.TrimSpace(os.Getenv(envPrefix + "FORMAT")); format != "" {
		cfg.Format = normalize(format)
	}

	if output := strings.TrimSpace(os.Getenv(envPrefix + "OUTPUT")); output != "" {
		cfg.Output = output
	}

	if indent := strings.TrimSpace(os.Getenv(envPrefix + "INDENT")); indent != "" {
		if value, err := strconv.Atoi(indent); err == nil && value >= 0 {
			cfg.Indent = value
		}
	}

	if level := strings.TrimSpace(os.Getenv(envPrefix + "LOG_LEVEL")); level != "" {
		cfg.LogLevel = normalize(level)
	}
}

func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides.Format != nil && *overrides.Format != "" {
		cfg.Format = normalize(*overrides.Format)
	}
	if overrides.Output != nil && *overrides.Output != "" {
		cfg.Output = *overrides.Output
	}
	if overrides.Indent != nil && *overrides.Indent >= 0 {
		cfg.Indent = *overrides.Indent
	}
	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = normalize(*overrides.LogLevel)
	}
}

func validateConfig(cfg Config) error {
	if _, ok := supportedFormats[cfg.Format]; !ok {
		return fmt.Errorf("unsupported format %q (want json or yaml)", cfg.Format)
	}
	if cfg.Indent < 0 || cfg.Indent > maxIndent {
		return fmt.Errorf("indent must be between 0 and %d, got %d", maxIndent, cfg.Indent)
	}
	if _, ok := supportedLogLevels[cfg.LogLevel]; !ok {
		return fmt.Errorf("unsupported log level %q", cfg.LogLevel)
	}
	if strings.TrimSpace(cfg.Output) == "" {
		return fmt.Errorf("output cannot be empty")
	}
	return nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
