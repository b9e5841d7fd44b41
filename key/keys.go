// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Anilist API - these keys select the endpoint and how requests are authenticated.
const (
	AnilistEndpoint = "anilist.endpoint"
	AnilistUseToken = "anilist.use_token"
	TitleLanguage   = "anilist.title_language"
)

// HTTP Transport - these keys tune the shared GraphQL transport.
const (
	HTTPTimeout           = "http.timeout"
	HTTPRequestsPerMinute = "http.requests_per_minute"
)

// Rate Limit Awareness - these keys configure cooperative throttling while draining connections.
const (
	RateLimitObey      = "ratelimit.obey"
	RateLimitTolerance = "ratelimit.tolerance"
	RateLimitTimeout   = "ratelimit.timeout"
)

// Connection Continuation - these keys control how failed continuation pages are retried.
const (
	ContinuationMaxRetries = "continuation.max_retries"
	ContinuationRetryDelay = "continuation.retry_delay"
)

// Search Interaction - these keys define how search input is remembered for completion.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern the command-line presentation.
const (
	CliColored   = "cli.colored"
	IconsVariant = "icons.variant"
)
