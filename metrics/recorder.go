package metrics

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Recorder appends samples to a session file, one JSON object per line, so
// recordings can be tailed and exported while a session is live.
type Recorder struct {
	path string
	file *os.File
	enc  *json.Encoder
}

// NewRecorder opens (creating directories as needed) the recording at path
// for appending.
func NewRecorder(path string) (*Recorder, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create recording directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open recording: %w", err)
	}

	return &Recorder{
		path: path,
		file: file,
		enc:  json.NewEncoder(file),
	}, nil
}

// Path returns the recording file path.
func (r *Recorder) Path() string {
	return r.path
}

// Record appends one sample.
func (r *Recorder) Record(s Sample) error {
	if err := r.enc.Encode(s); err != nil {
		return fmt.Errorf("failed to write sample: %w", err)
	}
	return nil
}

func (r *Recorder) Close() error {
	return r.file.Close()
}
