package metrics

import (
	"errors"
	"fmt"
	"time"
)

// Sample is one recorded observation of a series.
type Sample struct {
	Time  time.Time `json:"ts"`
	Label string    `json:"label"`
	Value float64   `json:"value"`
}

// Sampler polls a set of sources on an interval. Collection itself is
// pull-based so the TUI can drive it from a tick command.
type Sampler struct {
	sources  []Source
	interval time.Duration
	recorder *Recorder
}

func NewSampler(interval time.Duration, sources ...Source) *Sampler {
	return &Sampler{
		sources:  sources,
		interval: interval,
	}
}

// SetRecorder attaches a recorder; every collected sample is appended to it.
func (s *Sampler) SetRecorder(r *Recorder) {
	s.recorder = r
}

func (s *Sampler) Interval() time.Duration {
	return s.interval
}

// Labels returns the source labels in polling order.
func (s *Sampler) Labels() []string {
	labels := make([]string, 0, len(s.sources))
	for _, src := range s.sources {
		labels = append(labels, src.Label())
	}
	return labels
}

// Collect polls every source once. Failing sources are skipped and their
// errors joined; the returned samples cover the sources that succeeded.
func (s *Sampler) Collect() ([]Sample, error) {
	now := time.Now()
	samples := make([]Sample, 0, len(s.sources))
	var errs []error

	for _, src := range s.sources {
		v, err := src.Sample()
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", src.Label(), err))
			continue
		}

		sample := Sample{Time: now, Label: src.Label(), Value: v}
		samples = append(samples, sample)

		if s.recorder != nil {
			if err := s.recorder.Record(sample); err != nil {
				errs = append(errs, fmt.Errorf("record %s: %w", src.Label(), err))
			}
		}
	}

	return samples, errors.Join(errs...)
}
