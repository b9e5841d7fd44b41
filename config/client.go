package config

import (
	"time"

	"github.com/anisan-cli/anigraph/anilist"
	"github.com/anisan-cli/anigraph/auth"
	"github.com/anisan-cli/anigraph/key"
	"github.com/anisan-cli/anigraph/network"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"
)

// ClientOptions builds anilist client options from the current configuration.
func ClientOptions() *anilist.Options {
	transport := network.NewGraphQL(viper.GetString(key.AnilistEndpoint))
	transport.HTTP = network.NewHTTPClient(viper.GetDuration(key.HTTPTimeout))

	if perMinute := viper.GetInt(key.HTTPRequestsPerMinute); perMinute > 0 {
		transport.Limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1)
	}

	if viper.GetBool(key.AnilistUseToken) {
		transport.Token = auth.GetToken
	}

	return &anilist.Options{
		Transport:          transport,
		ObeyRateLimit:      viper.GetBool(key.RateLimitObey),
		RateLimitTolerance: viper.GetInt(key.RateLimitTolerance),
		RateLimitTimeout:   viper.GetDuration(key.RateLimitTimeout),
		MaxPageRetries:     viper.GetInt(key.ContinuationMaxRetries),
		RetryDelay:         viper.GetDuration(key.ContinuationRetryDelay),
	}
}

// NewClient returns an anilist client configured from the current configuration.
func NewClient() *anilist.Client {
	return anilist.New(ClientOptions())
}
