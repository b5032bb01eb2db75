package metrics

import (
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// Source produces one numeric sample per poll for a labeled series.
type Source interface {
	Label() string
	Sample() (float64, error)
}

// LoadAverage samples the one-minute load average from /proc/loadavg.
type LoadAverage struct {
	path string
}

func NewLoadAverage() *LoadAverage {
	return &LoadAverage{path: "/proc/loadavg"}
}

// NewLoadAveragePath reads from an alternate file, used in tests.
func NewLoadAveragePath(path string) *LoadAverage {
	return &LoadAverage{path: path}
}

func (l *LoadAverage) Label() string {
	return "load"
}

func (l *LoadAverage) Sample() (float64, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return 0, fmt.Errorf("failed to read load average: %w", err)
	}
	return firstFloat(string(data))
}

// Goroutines samples the process goroutine count, handy as an always
// available local series.
type Goroutines struct{}

func (Goroutines) Label() string {
	return "goroutines"
}

func (Goroutines) Sample() (float64, error) {
	return float64(runtime.NumGoroutine()), nil
}

// RandomWalk is a demo source producing a bounded random walk, used when no
// real source is configured so the dashboard has something to draw.
type RandomWalk struct {
	label string
	value float64
	step  float64
	rng   *rand.Rand
}

func NewRandomWalk(label string, seed int64) *RandomWalk {
	return &RandomWalk{
		label: label,
		value: 50,
		step:  5,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

func (r *RandomWalk) Label() string {
	return r.label
}

func (r *RandomWalk) Sample() (float64, error) {
	r.value += (r.rng.Float64()*2 - 1) * r.step
	if r.value < 0 {
		r.value = 0
	}
	if r.value > 100 {
		r.value = 100
	}
	return r.value, nil
}

// firstFloat parses the first whitespace-separated float in s. Remote
// commands and proc files both lead with the value we want.
func firstFloat(s string) (float64, error) {
	for _, field := range strings.Fields(s) {
		v, err := strconv.ParseFloat(field, 64)
		if err == nil {
			return v, nil
		}
	}
	return 0, fmt.Errorf("no numeric value in %q", strings.TrimSpace(s))
}
