//go:build !windows

package tui

import (
	"os"
	"os/signal"
	"syscall"
	"time"
)

// disableResizeRedraws prevents Bubble Tea from receiving SIGWINCH when
// PLOTDECK_NO_RESIZE=1, so no redraws are triggered on terminal resize.
// Debug escape hatch for terminals that emit resize storms. The goroutine
// waits for Bubble Tea to register its listener first.
func disableResizeRedraws() {
	if os.Getenv("PLOTDECK_NO_RESIZE") != "1" {
		return
	}
	go func() {
		time.Sleep(100 * time.Millisecond)
		signal.Reset(syscall.SIGWINCH)
	}()
}
