package utils

import (
	"fmt"
	"strings"
)

// Target identifies a remote destination in user@host or
// user@host:path form.
type Target struct {
	User string
	Host string
	Path string
}

// ParseTarget splits "user@host" or "user@host:path". User and host are
// required; an empty path means the remote home directory.
func ParseTarget(s string) (Target, error) {
	var t Target

	at := strings.Index(s, "@")
	if at <= 0 {
		return t, fmt.Errorf("invalid target %q: expected user@host[:path]", s)
	}
	t.User = s[:at]

	rest := s[at+1:]
	if colon := strings.Index(rest, ":"); colon >= 0 {
		t.Host = rest[:colon]
		t.Path = rest[colon+1:]
	} else {
		t.Host = rest
	}

	if t.Host == "" {
		return t, fmt.Errorf("invalid target %q: missing host", s)
	}

	return t, nil
}
