package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/plotdeck/plotdeck/cmd"
	"github.com/plotdeck/plotdeck/internal/console"
	"github.com/plotdeck/plotdeck/internal/version"
	"github.com/plotdeck/plotdeck/sentry"
)

func main() {
	console.Init()

	_ = initSentry()
	defer sentry.Flush(5 * time.Second)

	defer func() {
		if r := recover(); r != nil {
			sentry.Recover(r)
			panic(r)
		}
	}()

	cmd.Execute()
}

func initSentry() error {
	// DSN is injected at build time - if empty, crash reporting is disabled
	if version.SentryDSN == "" {
		return nil
	}

	return sentry.Init(sentry.Config{
		DSN:         version.SentryDSN,
		Environment: getEnvironment(),
		Release:     fmt.Sprintf("plotdeck@%s", version.BuildVersion),
		SampleRate:  1.0,
		ServiceName: "plotdeck",
		InstanceID:  getInstanceID(),
		FilteredErrors: []string{
			"context canceled",
		},
	})
}

func getEnvironment() string {
	if version.BuildVersion == "dev" {
		return "dev"
	}
	return "production"
}

func getInstanceID() string {
	if id := os.Getenv("HOSTNAME"); id != "" {
		return id
	}
	if id := os.Getenv("COMPUTERNAME"); id != "" {
		return id
	}
	return runtime.GOOS
}
