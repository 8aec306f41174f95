package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveReviewer_FlagWins(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{"reviewer": "Config Reviewer"}`), 0644))

	reviewer, err := resolveReviewer("Flag Reviewer", tmpFile)
	require.NoError(t, err)
	assert.Equal(t, "Flag Reviewer", reviewer)
}

func TestResolveReviewer_ConfigDefault(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{"reviewer": "Config Reviewer"}`), 0644))

	reviewer, err := resolveReviewer("", tmpFile)
	require.NoError(t, err)
	assert.Equal(t, "Config Reviewer", reviewer)
}

func TestResolveReviewer_NoConfig(t *testing.T) {
	reviewer, err := resolveReviewer("", "")
	require.NoError(t, err)
	assert.Empty(t, reviewer)
}

func TestResolveReviewer_BadConfig(t *testing.T) {
	_, err := resolveReviewer("", "/nonexistent/config.json")
	assert.Error(t, err)
}
