package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ConfigDir returns the plotdeck state directory, honoring the
// PLOTDECK_CONFIG_DIR override used by tests.
func ConfigDir() (string, error) {
	if dir := os.Getenv("PLOTDECK_CONFIG_DIR"); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".plotdeck"), nil
}

// RecordingsDir returns the directory holding session recordings.
func RecordingsDir() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "recordings"), nil
}

// newRecordingPath returns a timestamped path for a fresh session recording.
func newRecordingPath() (string, error) {
	dir, err := RecordingsDir()
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("session-%s.jsonl", time.Now().Format("20060102-150405"))
	return filepath.Join(dir, name), nil
}
