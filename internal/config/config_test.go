package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"storage_dir": "/var/lib/resumes",
		"reviewer": "Jane Doe",
		"model": "gemini-2.5-pro",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "/var/lib/resumes", cfg.StorageDir)
	assert.Equal(t, "Jane Doe", cfg.Reviewer)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_PostingFileMissing(t *testing.T) {
	cfg := &Config{Posting: "/nonexistent/posting.txt"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "posting file not found")
}

func TestValidate_StorageDirIsFile(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(tmpFile, []byte("x"), 0644))

	cfg := &Config{StorageDir: tmpFile}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestValidate_OK(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "posting.txt")
	require.NoError(t, os.WriteFile(tmpFile, []byte("Backend Engineer"), 0644))

	cfg := &Config{Posting: tmpFile, StorageDir: t.TempDir()}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Reviewer: "Jane Doe"}
	defaults := Config{StorageDir: "data", Reviewer: "ignored", Model: "gemini-2.5-flash"}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "data", merged.StorageDir)
	assert.Equal(t, "Jane Doe", merged.Reviewer)
	assert.Equal(t, "gemini-2.5-flash", merged.Model)
}

func TestDefaultConfig(t *testing.T) {
	assert.Equal(t, "data", DefaultConfig().StorageDir)
}
