package network

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/anisan-cli/anigraph/constant"
	"github.com/anisan-cli/anigraph/log"
	"github.com/anisan-cli/anigraph/metric"
	"golang.org/x/time/rate"
)

// Metadata describes the HTTP response a GraphQL payload arrived with.
// Header is nil when the result did not come from an HTTP exchange.
type Metadata struct {
	Status int
	Header http.Header
}

// GraphQLError is a single entry of the "errors" array of a GraphQL response.
type GraphQLError struct {
	Message string `json:"message"`
	Status  int    `json:"status,omitempty"`
}

// FetchError is returned by Send when the API answered with a non-2xx status,
// or with errors and no data.
type FetchError struct {
	Status int
	Header http.Header
	Errors []GraphQLError
}

func (e *FetchError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("graphql request failed with status %d", e.Status)
	}

	messages := make([]string, len(e.Errors))
	for i, gqlErr := range e.Errors {
		messages[i] = gqlErr.Message
	}
	return fmt.Sprintf("graphql request failed with status %d: %s", e.Status, strings.Join(messages, "; "))
}

// Metadata returns the response metadata that accompanied the failure.
func (e *FetchError) Metadata() Metadata {
	return Metadata{Status: e.Status, Header: e.Header}
}

// IsNotFound reports whether err is a FetchError for a missing entity.
func IsNotFound(err error) bool {
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		return false
	}
	return fetchErr.Status == http.StatusNotFound
}

// GraphQL sends queries to a GraphQL endpoint over HTTP. It holds no per-request state
// and is safe for concurrent use.
type GraphQL struct {
	// Endpoint is the URL queries are POSTed to.
	Endpoint string
	// HTTP is the client used for the exchange. Client is used when nil.
	HTTP *http.Client
	// Token, when set, supplies a bearer token for the Authorization header.
	// An error from Token means the request goes out unauthenticated.
	Token func() (string, error)
	// Limiter, when set, paces outgoing requests.
	Limiter *rate.Limiter
}

// NewGraphQL returns a transport for endpoint, defaulting to the public AniList endpoint.
func NewGraphQL(endpoint string) *GraphQL {
	if endpoint == "" {
		endpoint = constant.AnilistEndpoint
	}
	return &GraphQL{Endpoint: endpoint}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors"`
}

// Send executes query with variables and decodes the "data" member of the response into out.
// It makes exactly one network attempt.
func (g *GraphQL) Send(ctx context.Context, query string, variables map[string]any, out any) (Metadata, error) {
	if g.Limiter != nil {
		if err := g.Limiter.Wait(ctx); err != nil {
			return Metadata{}, fmt.Errorf("wait for request slot: %w", err)
		}
	}

	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return Metadata{}, fmt.Errorf("marshal graphql request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.Endpoint, bytes.NewReader(body))
	if err != nil {
		return Metadata{}, fmt.Errorf("create graphql request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", constant.UserAgent)
	if g.Token != nil {
		if token, err := g.Token(); err == nil && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	client := g.HTTP
	if client == nil {
		client = Client
	}

	started := time.Now()
	resp, err := client.Do(req)
	elapsed := time.Since(started)
	metric.RequestDuration.Observe(elapsed.Seconds())
	if err != nil {
		metric.Requests.WithLabelValues("error").Inc()
		log.Error(err)
		return Metadata{}, fmt.Errorf("send graphql request: %w", err)
	}
	defer resp.Body.Close()

	metric.Requests.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()
	log.Debugf("Anilist answered %d in %s", resp.StatusCode, elapsed)
	meta := Metadata{Status: resp.StatusCode, Header: resp.Header}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return meta, fmt.Errorf("read graphql response: %w", err)
	}

	var envelope graphQLResponse
	decodeErr := json.Unmarshal(raw, &envelope)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Errorf("Anilist returned status code %d", resp.StatusCode)
		return meta, &FetchError{Status: resp.StatusCode, Header: resp.Header, Errors: envelope.Errors}
	}

	if decodeErr != nil {
		return meta, fmt.Errorf("decode graphql response: %w", decodeErr)
	}

	if len(envelope.Errors) > 0 {
		if isNull(envelope.Data) {
			status := resp.StatusCode
			if envelope.Errors[0].Status != 0 {
				status = envelope.Errors[0].Status
			}
			return meta, &FetchError{Status: status, Header: resp.Header, Errors: envelope.Errors}
		}
		log.Warnf("Anilist returned partial data with %d errors", len(envelope.Errors))
	}

	if out == nil || isNull(envelope.Data) {
		return meta, nil
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return meta, fmt.Errorf("decode graphql data: %w", err)
	}

	return meta, nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
