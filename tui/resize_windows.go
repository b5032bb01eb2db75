//go:build windows

package tui

// disableResizeRedraws is a no-op on Windows because Windows does not
// support SIGWINCH.
func disableResizeRedraws() {}
