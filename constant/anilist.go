package constant

const (
	// AnilistEndpoint is the public AniList GraphQL endpoint.
	AnilistEndpoint = "https://graphql.anilist.co"

	// RateLimitRemainingHeader carries the number of calls left in the current rate limit window.
	RateLimitRemainingHeader = "X-RateLimit-Remaining"
)
