//go:build !windows

package console

// Init is a no-op outside Windows; VT processing and UTF-8 are assumed.
func Init() {}
