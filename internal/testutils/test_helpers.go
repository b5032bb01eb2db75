package testutils

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

type TestEnvironment struct {
	TempDir       string
	ConfigDir     string
	RecordingsDir string
	RecordingFile string
	Cleanup       func()
}

// SetupTestEnvironment points PLOTDECK_CONFIG_DIR at a temp directory
// seeded with one recorded session.
func SetupTestEnvironment(t *testing.T) *TestEnvironment {
	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, ".plotdeck")
	recordingsDir := filepath.Join(configDir, "recordings")

	if err := os.MkdirAll(recordingsDir, 0700); err != nil {
		t.Fatalf("Failed to create recordings directory: %v", err)
	}

	recordingFile := filepath.Join(recordingsDir, "session-20260830-101500.jsonl")
	now := time.Now().UTC().Format(time.RFC3339)
	lines := fmt.Sprintf(`{"ts":%q,"label":"load","value":0.42}
{"ts":%q,"label":"load","value":0.57}
{"ts":%q,"label":"goroutines","value":12}
`, now, now, now)
	if err := os.WriteFile(recordingFile, []byte(lines), 0600); err != nil {
		t.Fatalf("Failed to create recording fixture: %v", err)
	}

	t.Setenv("PLOTDECK_CONFIG_DIR", configDir)

	return &TestEnvironment{
		TempDir:       tmpDir,
		ConfigDir:     configDir,
		RecordingsDir: recordingsDir,
		RecordingFile: recordingFile,
		Cleanup:       func() {},
	}
}
