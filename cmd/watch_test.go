package cmd

import (
	"testing"
	"time"

	"github.com/plotdeck/plotdeck/internal/testutils"
	"github.com/stretchr/testify/assert"
)

// TestWatchCommand verifies that the watch command is properly initialized
// with the correct usage and description.
func TestWatchCommand(t *testing.T) {
	assert.NotNil(t, watchCmd)
	assert.Equal(t, "watch", watchCmd.Use)
	assert.Equal(t, "Watch live metric plots in collapsible panels", watchCmd.Short)
}

// TestWatchCommandFlags verifies that the watch command has the expected
// command-line flags with their defaults.
func TestWatchCommandFlags(t *testing.T) {
	assert.NotNil(t, watchCmd.Flags().Lookup("interval"))
	assert.NotNil(t, watchCmd.Flags().Lookup("remote"))
	assert.NotNil(t, watchCmd.Flags().Lookup("command"))
	assert.NotNil(t, watchCmd.Flags().Lookup("key"))
	assert.NotNil(t, watchCmd.Flags().Lookup("record"))

	assert.Equal(t, 2*time.Second, watchInterval)
	assert.False(t, watchRecord)
}

// TestBuildSourcesLocal verifies the default source set: goroutines and the
// demo walk are always present, load only where /proc/loadavg exists.
func TestBuildSourcesLocal(t *testing.T) {
	env := testutils.SetupTestEnvironment(t)
	defer env.Cleanup()

	sources, cleanup, err := buildSources()
	assert.NoError(t, err)
	defer cleanup()

	labels := map[string]bool{}
	for _, src := range sources {
		labels[src.Label()] = true
	}
	assert.True(t, labels["goroutines"])
	assert.True(t, labels["demo"])
}

// TestBuildSourcesRemoteValidation verifies that --remote input is
// validated before any connection is attempted.
func TestBuildSourcesRemoteValidation(t *testing.T) {
	env := testutils.SetupTestEnvironment(t)
	defer env.Cleanup()

	watchRemote = "not-a-target"
	defer func() { watchRemote = "" }()

	_, _, err := buildSources()
	assert.Error(t, err)

	watchRemote = "ops@host:/with/path"
	_, _, err = buildSources()
	assert.ErrorContains(t, err, "not a path")

	watchRemote = "ops@host"
	watchKeyFile = ""
	_, _, err = buildSources()
	assert.ErrorContains(t, err, "requires --key")
}

// TestNewRecordingPath verifies that recording paths land in the
// configured recordings directory.
func TestNewRecordingPath(t *testing.T) {
	env := testutils.SetupTestEnvironment(t)
	defer env.Cleanup()

	path, err := newRecordingPath()
	assert.NoError(t, err)
	assert.Contains(t, path, env.RecordingsDir)
	assert.Contains(t, path, "session-")
	assert.Contains(t, path, ".jsonl")
}
