package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/harrison/acrolint/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

// TestDefaultConfig verifies default configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ".tex", cfg.Extension)
	assert.Equal(t, models.MatchModeLastPerLine, cfg.MatchMode)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Empty(t, cfg.LogDir)
	assert.Empty(t, cfg.Excludes)
	assert.Empty(t, cfg.Allowed)
	assert.NoError(t, cfg.Validate())
}

func TestLoadList(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "allow_words.txt", "  NASA \nBAR\r\n\nBAR\n")

	list := LoadList(dir, AllowListName)

	assert.Equal(t, []string{"NASA", "BAR", "", "BAR"}, list)
}

func TestLoadListMissingFile(t *testing.T) {
	list := LoadList(t.TempDir(), ExcludeListName)

	require.NotNil(t, list)
	assert.Empty(t, list)
}

func TestLoadListEmptyFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "exclude_files.txt", "")

	assert.Empty(t, LoadList(dir, ExcludeListName))
}

// TestLoadConfigValidFile tests loading a valid YAML config file
func TestLoadConfigValidFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, `extension: .md
match_mode: all
log_level: debug
log_dir: /tmp/acrolint-logs
exclude_globs:
  - "drafts/**"
respect_gitignore: true
`)

	cfg, err := LoadConfig(filepath.Join(dir, FileName))
	require.NoError(t, err)

	assert.Equal(t, ".md", cfg.Extension)
	assert.Equal(t, models.MatchModeAll, cfg.MatchMode)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/acrolint-logs", cfg.LogDir)
	assert.Equal(t, []string{"drafts/**"}, cfg.ExcludeGlobs)
	assert.True(t, cfg.RespectGitignore)
}

// TestLoadConfigFileNotExists tests fallback to defaults when file doesn't exist
func TestLoadConfigFileNotExists(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/.acrolint.yaml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigPartialFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, "log_level: info\n")

	cfg, err := LoadConfig(filepath.Join(dir, FileName))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ".tex", cfg.Extension, "unset values keep defaults")
	assert.Equal(t, models.MatchModeLastPerLine, cfg.MatchMode)
}

func TestLoadConfigMalformed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, "extension: [unclosed\n")

	_, err := LoadConfig(filepath.Join(dir, FileName))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadConfigInvalidMatchMode(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, "match_mode: first\n")

	_, err := LoadConfig(filepath.Join(dir, FileName))
	assert.Error(t, err)
}

func TestLoadReadsLists(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "exclude_files.txt", "drafts\n")
	writeFile(t, dir, "allow_words.txt", "BAR\nNASA\n")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"drafts"}, cfg.Excludes)
	assert.Equal(t, []string{"BAR", "NASA"}, cfg.Allowed)
	assert.Equal(t, ".tex", cfg.Extension)
}

func TestMergeWithFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ExcludeGlobs = []string{"a/**"}

	ext := ".md"
	mode := models.MatchModeAll
	level := "debug"
	gitignore := true
	cfg.MergeWithFlags(&ext, &mode, &level, nil, []string{"b/**"}, &gitignore)

	assert.Equal(t, ".md", cfg.Extension)
	assert.Equal(t, models.MatchModeAll, cfg.MatchMode)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Empty(t, cfg.LogDir, "nil flag leaves value untouched")
	assert.Equal(t, []string{"a/**", "b/**"}, cfg.ExcludeGlobs)
	assert.True(t, cfg.RespectGitignore)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"empty extension", func(c *Config) { c.Extension = " " }, "extension cannot be empty"},
		{"bad match mode", func(c *Config) { c.MatchMode = "first" }, "invalid match mode"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "invalid log_level"},
		{"bad glob", func(c *Config) { c.ExcludeGlobs = []string{"[a-"} }, "invalid exclude glob"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadRootIsFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "paper.tex", "ABC\n")

	cfg, err := Load(filepath.Join(dir, "paper.tex"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadListInvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "allow_words.txt", "NASA\n\xff\xfeBAR\n")

	assert.Empty(t, LoadList(dir, AllowListName))
}
