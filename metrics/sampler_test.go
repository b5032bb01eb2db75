package metrics

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

type stubSource struct {
	label string
	value float64
	err   error
}

func (s stubSource) Label() string            { return s.label }
func (s stubSource) Sample() (float64, error) { return s.value, s.err }

func TestSamplerCollect(t *testing.T) {
	t.Parallel()

	s := NewSampler(time.Second,
		stubSource{label: "a", value: 1},
		stubSource{label: "b", value: 2},
	)

	samples, err := s.Collect()
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(samples) != 2 {
		t.Fatalf("Collect() returned %d samples, want 2", len(samples))
	}
	if samples[0].Label != "a" || samples[0].Value != 1 {
		t.Fatalf("unexpected first sample: %+v", samples[0])
	}
	if samples[1].Label != "b" || samples[1].Value != 2 {
		t.Fatalf("unexpected second sample: %+v", samples[1])
	}
}

func TestSamplerCollectSkipsFailingSource(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	s := NewSampler(time.Second,
		stubSource{label: "bad", err: boom},
		stubSource{label: "good", value: 3},
	)

	samples, err := s.Collect()
	if !errors.Is(err, boom) {
		t.Fatalf("Collect() error = %v, want wrapped %v", err, boom)
	}
	if len(samples) != 1 || samples[0].Label != "good" {
		t.Fatalf("Collect() samples = %+v, want only the good source", samples)
	}
}

func TestSamplerLabels(t *testing.T) {
	t.Parallel()

	s := NewSampler(time.Second, stubSource{label: "x"}, stubSource{label: "y"})
	labels := s.Labels()
	if len(labels) != 2 || labels[0] != "x" || labels[1] != "y" {
		t.Fatalf("Labels() = %v", labels)
	}
}

func TestSamplerRecords(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "rec", "session.jsonl")
	rec, err := NewRecorder(path)
	if err != nil {
		t.Fatalf("NewRecorder() error = %v", err)
	}
	defer rec.Close()

	s := NewSampler(time.Second, stubSource{label: "a", value: 1.5})
	s.SetRecorder(rec)

	if _, err := s.Collect(); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if _, err := s.Collect(); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open recording: %v", err)
	}
	defer file.Close()

	var lines int
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var sample Sample
		if err := json.Unmarshal(scanner.Bytes(), &sample); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", lines+1, err)
		}
		if sample.Label != "a" || sample.Value != 1.5 {
			t.Fatalf("unexpected recorded sample: %+v", sample)
		}
		lines++
	}
	if lines != 2 {
		t.Fatalf("recording has %d lines, want 2", lines)
	}
}
