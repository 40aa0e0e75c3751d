// Package config loads the per-run configuration of acrolint.
//
// Configuration comes from three places, later ones winning:
// built-in defaults, an optional .acrolint.yaml in the scan root, and CLI flags.
// The exclude and allow lists are read from exclude_files.txt and
// allow_words.txt in the scan root.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/harrison/acrolint/internal/models"
	"gopkg.in/yaml.v3"
)

// FileName is the optional YAML configuration file looked up in the scan root
const FileName = ".acrolint.yaml"

// Config represents acrolint configuration options
type Config struct {
	// Extension is the document suffix to scan (e.g. ".tex")
	Extension string `yaml:"extension"`

	// MatchMode selects last-per-line (legacy) or all findings per line
	MatchMode models.MatchMode `yaml:"match_mode"`

	// LogLevel sets the diagnostic verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogDir enables per-run log files when non-empty
	LogDir string `yaml:"log_dir"`

	// ExcludeGlobs are doublestar patterns matched against root-relative paths
	ExcludeGlobs []string `yaml:"exclude_globs"`

	// RespectGitignore skips files ignored by the root .gitignore
	RespectGitignore bool `yaml:"respect_gitignore"`

	// Excludes are path substrings read from exclude_files.txt
	Excludes []string `yaml:"-"`

	// Allowed are acronyms read from allow_words.txt
	Allowed []string `yaml:"-"`
}

// DefaultConfig returns a Config with the defaults of a flag-less run
func DefaultConfig() *Config {
	return &Config{
		Extension: ".tex",
		MatchMode: models.MatchModeLastPerLine,
		LogLevel:  "warn",
		LogDir:    "",
		Excludes:  []string{},
		Allowed:   []string{},
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from file (merging with defaults)
	if fileCfg.Extension != "" {
		cfg.Extension = fileCfg.Extension
	}
	if fileCfg.MatchMode != "" {
		mode, err := models.ParseMatchMode(string(fileCfg.MatchMode))
		if err != nil {
			return nil, err
		}
		cfg.MatchMode = mode
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.LogDir != "" {
		cfg.LogDir = fileCfg.LogDir
	}
	if len(fileCfg.ExcludeGlobs) > 0 {
		cfg.ExcludeGlobs = fileCfg.ExcludeGlobs
	}
	if fileCfg.RespectGitignore {
		cfg.RespectGitignore = true
	}

	return cfg, nil
}

// Load builds the run configuration for rootDir: .acrolint.yaml (if any)
// plus the exclude and allow lists.
// A rootDir that is a single document gets the defaults and empty lists.
func Load(rootDir string) (*Config, error) {
	if info, err := os.Stat(rootDir); err == nil && !info.IsDir() {
		return DefaultConfig(), nil
	}

	cfg, err := LoadConfig(filepath.Join(rootDir, FileName))
	if err != nil {
		return nil, err
	}
	cfg.Excludes = LoadList(rootDir, ExcludeListName)
	cfg.Allowed = LoadList(rootDir, AllowListName)
	return cfg, nil
}

// MergeWithFlags merges CLI flags into the configuration.
// Non-nil flag values override configuration values; exclude globs are appended.
func (c *Config) MergeWithFlags(extension *string, matchMode *models.MatchMode, logLevel *string, logDir *string, excludeGlobs []string, respectGitignore *bool) {
	if extension != nil {
		c.Extension = *extension
	}
	if matchMode != nil {
		c.MatchMode = *matchMode
	}
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if logDir != nil {
		c.LogDir = *logDir
	}
	c.ExcludeGlobs = append(c.ExcludeGlobs, excludeGlobs...)
	if respectGitignore != nil {
		c.RespectGitignore = *respectGitignore
	}
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Extension) == "" {
		return fmt.Errorf("extension cannot be empty")
	}

	if _, err := models.ParseMatchMode(string(c.MatchMode)); err != nil {
		return err
	}

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	for _, pattern := range c.ExcludeGlobs {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid exclude glob %q", pattern)
		}
	}

	return nil
}
