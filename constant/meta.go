// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Anigraph is the canonical application identifier used for filesystem paths and CLI branding.
	Anigraph = "anigraph"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent is the HTTP User-Agent sent with every GraphQL request.
	UserAgent = Anigraph + "/" + Version + " (+https://github.com/anisan-cli/anigraph)"
)

// Build metadata, injected through -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
