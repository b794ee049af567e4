// Package config provides Viper-based configuration loading for swngen.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// File, when set, additionally writes logs to a rotated file.
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// ContentConfig locates the reference tables and optional rule scripts.
type ContentConfig struct {
	// Dir holds the classes, backgrounds, skills, foci, psionics, spells,
	// abilities and equipment subdirectories.
	Dir string `mapstructure:"dir"`
	// ScriptsDir holds *.lua hook scripts. Empty disables scripting.
	ScriptsDir string `mapstructure:"scripts_dir"`
	// InstructionLimit bounds Lua opcodes per hook call; 0 uses the default.
	InstructionLimit int `mapstructure:"instruction_limit"`
}

// GenerationConfig holds defaults for generation requests.
type GenerationConfig struct {
	Level              int    `mapstructure:"level"`
	AttributeMethod    string `mapstructure:"attribute_method"`
	TechLevel          int    `mapstructure:"tech_level"`
	FocusPower         string `mapstructure:"focus_power"`
	AllocationAttempts int    `mapstructure:"allocation_attempts"`
	BatchWorkers       int    `mapstructure:"batch_workers"`
	// Seed makes runs reproducible when non-zero.
	Seed uint64 `mapstructure:"seed"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging"`
	Content    ContentConfig    `mapstructure:"content"`
	Generation GenerationConfig `mapstructure:"generation"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateContent(c.Content); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateGeneration(c.Generation); err != nil {
		errs = append(errs, err.Error())
	}
	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	var errs []string
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of [debug, info, warn, error], got %q", l.Level))
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		errs = append(errs, fmt.Sprintf("logging.format must be one of [json, console], got %q", l.Format))
	}
	if l.MaxSizeMB < 0 || l.MaxBackups < 0 || l.MaxAgeDays < 0 {
		errs = append(errs, "logging rotation limits must not be negative")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateContent(c ContentConfig) error {
	var errs []string
	if c.Dir == "" {
		errs = append(errs, "content.dir must not be empty")
	}
	if c.InstructionLimit < 0 {
		errs = append(errs, fmt.Sprintf("content.instruction_limit must be >= 0, got %d", c.InstructionLimit))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateGeneration(g GenerationConfig) error {
	var errs []string
	if g.Level < 1 || g.Level > 10 {
		errs = append(errs, fmt.Sprintf("generation.level must be 1-10, got %d", g.Level))
	}
	validMethods := map[string]bool{"roll": true, "array": true}
	if !validMethods[g.AttributeMethod] {
		errs = append(errs, fmt.Sprintf("generation.attribute_method must be one of [roll, array], got %q", g.AttributeMethod))
	}
	if g.TechLevel < 0 || g.TechLevel > 5 {
		errs = append(errs, fmt.Sprintf("generation.tech_level must be 0-5, got %d", g.TechLevel))
	}
	validPower := map[string]bool{"weak": true, "normal": true, "strong": true}
	if !validPower[g.FocusPower] {
		errs = append(errs, fmt.Sprintf("generation.focus_power must be one of [weak, normal, strong], got %q", g.FocusPower))
	}
	if g.AllocationAttempts < 1 {
		errs = append(errs, fmt.Sprintf("generation.allocation_attempts must be >= 1, got %d", g.AllocationAttempts))
	}
	if g.BatchWorkers < 1 {
		errs = append(errs, fmt.Sprintf("generation.batch_workers must be >= 1, got %d", g.BatchWorkers))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path uses defaults and the
// environment only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := NewViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}
	return LoadFromViper(v)
}

// NewViper returns a Viper instance with defaults and SWN_ environment
// overrides applied, ready for flag binding.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("SWN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", "")
	v.SetDefault("logging.max_size_mb", 10)
	v.SetDefault("logging.max_backups", 3)
	v.SetDefault("logging.max_age_days", 28)

	v.SetDefault("content.dir", "content")
	v.SetDefault("content.scripts_dir", "")
	v.SetDefault("content.instruction_limit", 0)

	v.SetDefault("generation.level", 1)
	v.SetDefault("generation.attribute_method", "roll")
	v.SetDefault("generation.tech_level", 4)
	v.SetDefault("generation.focus_power", "normal")
	v.SetDefault("generation.allocation_attempts", 1000)
	v.SetDefault("generation.batch_workers", 4)
	v.SetDefault("generation.seed", 0)
}
