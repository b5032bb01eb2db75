package version

// These are injected at build time via -ldflags.
var (
	BuildVersion = "dev"
	BuildCommit  = "unknown"
	SentryDSN    = ""
)
