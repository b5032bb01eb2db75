package sentry

import (
	"fmt"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
)

// Config holds crash reporting options. An empty DSN disables reporting
// entirely, which is the default for local builds.
type Config struct {
	DSN         string
	Environment string
	Release     string
	Debug       bool
	SampleRate  float64

	// Error messages to drop before sending.
	FilteredErrors []string

	ServiceName string
	InstanceID  string
}

// Init initializes crash reporting. Safe to call with an empty DSN.
func Init(cfg Config) error {
	if cfg.DSN == "" {
		return nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      cfg.Environment,
		Release:          cfg.Release,
		Debug:            cfg.Debug,
		AttachStacktrace: true,
		SampleRate:       cfg.SampleRate,

		BeforeSend: func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
			if event.Message != "" {
				for _, filtered := range cfg.FilteredErrors {
					if strings.Contains(event.Message, filtered) {
						return nil
					}
				}
			}
			for _, exception := range event.Exception {
				for _, filtered := range cfg.FilteredErrors {
					if strings.Contains(exception.Value, filtered) {
						return nil
					}
				}
			}

			if event.Extra == nil {
				event.Extra = make(map[string]interface{})
			}
			event.Extra["service_name"] = cfg.ServiceName
			event.Extra["instance_id"] = cfg.InstanceID

			return event
		},
	})

	if err != nil {
		return fmt.Errorf("failed to initialize Sentry: %w", err)
	}

	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("service", cfg.ServiceName)
		scope.SetTag("environment", cfg.Environment)
		if cfg.InstanceID != "" {
			scope.SetTag("instance_id", cfg.InstanceID)
		}
	})

	return nil
}

// Flush flushes buffered events with timeout.
func Flush(timeout time.Duration) bool {
	return sentry.Flush(timeout)
}

// Recover reports a recovered panic value.
func Recover(r interface{}) {
	sentry.CurrentHub().Recover(r)
	sentry.Flush(5 * time.Second)
}

// CaptureError captures an error with typed options.
func CaptureError(err error, opts *EventOptions) *sentry.EventID {
	if err == nil {
		return nil
	}

	var eventID *sentry.EventID
	sentry.WithScope(func(scope *sentry.Scope) {
		if opts != nil {
			if opts.Tags != nil {
				for k, v := range opts.Tags.ToMap() {
					scope.SetTag(k, v)
				}
			}
			if opts.Extra != nil {
				for k, v := range opts.Extra.ToMap() {
					scope.SetExtra(k, v)
				}
			}
			if opts.Level != nil {
				scope.SetLevel(*opts.Level)
			}
			if len(opts.Fingerprint) > 0 {
				scope.SetFingerprint(opts.Fingerprint)
			}
		}
		eventID = sentry.CaptureException(err)
	})

	return eventID
}
