package anilist

import (
	"context"
	"net/http"
	"time"

	"github.com/anisan-cli/anigraph/log"
	"github.com/anisan-cli/anigraph/metric"
	"github.com/anisan-cli/anigraph/network"
)

// DefaultRateLimitTimeout is how long a client obeying the rate limit waits once the
// remaining calls drop below its tolerance.
const DefaultRateLimitTimeout = time.Minute

// Transport executes a single GraphQL request. Implementations must be safe for
// concurrent use and make exactly one attempt per call.
type Transport interface {
	Send(ctx context.Context, query string, variables map[string]any, out any) (network.Metadata, error)
}

// Options configures a Client. The zero value targets the public AniList endpoint.
type Options struct {
	// Endpoint overrides the AniList GraphQL endpoint. Ignored when Transport is set.
	Endpoint string
	// HTTPClient is used by the default transport. Ignored when Transport is set.
	HTTPClient *http.Client
	// Transport replaces the default HTTP transport.
	Transport Transport

	// ObeyRateLimit makes continuation wait RateLimitTimeout before a request
	// whenever fewer than RateLimitTolerance calls remain.
	ObeyRateLimit      bool
	RateLimitTolerance int
	RateLimitTimeout   time.Duration

	// MaxPageRetries bounds the attempts at a failing continuation page.
	// Zero retries forever.
	MaxPageRetries int
	// RetryDelay is waited between attempts at a failing continuation page.
	RetryDelay time.Duration
}

// Client looks up AniList entities. It keeps no per-call state and is safe for
// concurrent use when its transport is.
type Client struct {
	transport Transport
	options   Options
	sleep     func(ctx context.Context, d time.Duration) error
}

// New returns a client configured by options. A nil options is the zero Options.
func New(options *Options) *Client {
	var opts Options
	if options != nil {
		opts = *options
	}

	if opts.RateLimitTimeout <= 0 {
		opts.RateLimitTimeout = DefaultRateLimitTimeout
	}

	if opts.Transport == nil {
		graphql := network.NewGraphQL(opts.Endpoint)
		graphql.HTTP = opts.HTTPClient
		opts.Transport = graphql
	}

	return &Client{
		transport: opts.Transport,
		options:   opts,
		sleep:     sleepContext,
	}
}

// fetch sends query and decodes the response into out. A not-found answer is reported
// through found rather than as an error.
func (c *Client) fetch(ctx context.Context, query string, variables map[string]any, out any) (remaining int, found bool, err error) {
	meta, err := c.transport.Send(ctx, query, variables, out)
	if err != nil {
		remaining = remainingFromError(err)
		if network.IsNotFound(err) {
			log.Infof("Anilist has no entity for %v", variables)
			c.observe(remaining)
			return remaining, false, nil
		}

		return remaining, false, err
	}

	remaining = RemainingCalls(meta)
	c.observe(remaining)
	return remaining, true, nil
}

func (c *Client) observe(remaining int) {
	metric.RateLimitRemaining.Set(float64(remaining))
}

// throttle waits out the rate limit window when the client obeys the rate limit
// and fewer than the tolerated calls remain.
func (c *Client) throttle(ctx context.Context, remaining int) error {
	if !c.options.ObeyRateLimit || remaining >= c.options.RateLimitTolerance {
		return nil
	}

	log.Infof("Only %d calls remaining, waiting %s", remaining, c.options.RateLimitTimeout)
	return c.sleep(ctx, c.options.RateLimitTimeout)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// lookup fetches a single entity. A missing entity is returned as nil with a nil error.
func lookup[R, T any](ctx context.Context, c *Client, query string, variables map[string]any, entity func(*R) *T) (*T, int, error) {
	var response R
	remaining, found, err := c.fetch(ctx, query, variables, &response)
	if err != nil || !found {
		return nil, remaining, err
	}

	return entity(&response), remaining, nil
}

