package anilist

import (
	"context"
	"encoding/json"
	"net/http"
	"regexp"
	"strconv"
	"sync"
	"time"

	"github.com/anisan-cli/anigraph/network"
	"github.com/samber/lo"
)

var pagePattern = regexp.MustCompile(`\(page: (\d+)`)

// request is a single call recorded by fakeTransport.
type request struct {
	query     string
	variables map[string]any
	// page is the connection page the query asks for, 0 when it embeds none.
	page int
}

// fakeTransport answers queries through respond and records every call.
type fakeTransport struct {
	mu       sync.Mutex
	requests []request
	respond  func(request) (any, network.Metadata, error)
}

func (f *fakeTransport) Send(_ context.Context, query string, variables map[string]any, out any) (network.Metadata, error) {
	req := request{query: query, variables: variables}
	if match := pagePattern.FindStringSubmatch(query); match != nil {
		req.page = lo.Must(strconv.Atoi(match[1]))
	}

	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	data, meta, err := f.respond(req)
	if err != nil {
		return meta, err
	}

	if out != nil && data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return meta, err
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return meta, err
		}
	}

	return meta, nil
}

func (f *fakeTransport) pages() []int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return lo.Map(f.requests, func(r request, _ int) int { return r.page })
}

func (f *fakeTransport) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.requests)
}

func remainingMeta(remaining int) network.Metadata {
	header := http.Header{}
	header.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
	return network.Metadata{Status: http.StatusOK, Header: header}
}

func notFound(remaining int) error {
	return &network.FetchError{
		Status: http.StatusNotFound,
		Header: remainingMeta(remaining).Header,
		Errors: []network.GraphQLError{{Message: "Not Found.", Status: http.StatusNotFound}},
	}
}

func serverError() error {
	return &network.FetchError{Status: http.StatusInternalServerError, Header: http.Header{}}
}

// span returns the ids a connection of total items holds on page.
func span(total, page int) []int {
	from := (page-1)*PageSize + 1
	to := min(page*PageSize, total)
	if from > to {
		return []int{}
	}

	return lo.RangeFrom(from, to-from+1)
}

// catalog serves an entity whose paginated connection holds total items with ids 1..total.
// failures maps a page to the number of times it fails before succeeding.
// Every successful page reports 100-page remaining calls.
type catalog struct {
	parentID int
	total    int
	failures map[int]int
}

func (c *catalog) fail(page int) bool {
	if c.failures[page] > 0 {
		c.failures[page]--
		return true
	}
	return false
}

func (c *catalog) mediaTransport() *fakeTransport {
	return &fakeTransport{respond: func(r request) (any, network.Metadata, error) {
		if c.fail(r.page) {
			return nil, remainingMeta(1), serverError()
		}

		edges := lo.Map(span(c.total, r.page), func(id, _ int) CharacterEdge {
			return CharacterEdge{
				Node:        NodeRef{ID: id},
				Role:        CharacterRoleSupporting,
				VoiceActors: []NodeRef{{ID: 1000 + id}},
			}
		})

		media := map[string]any{"id": c.parentID, "characters": CharacterConnection{Edges: edges}}
		if r.page == 1 {
			media["title"] = Title{Romaji: "Shingeki no Kyojin", English: "Attack on Titan"}
		}

		return map[string]any{"Media": media}, remainingMeta(100 - r.page), nil
	}}
}

func (c *catalog) characterTransport() *fakeTransport {
	return &fakeTransport{respond: func(r request) (any, network.Metadata, error) {
		if c.fail(r.page) {
			return nil, remainingMeta(1), serverError()
		}

		ids := span(c.total, r.page)
		connection := CharacterMediaConnection{
			Nodes: lo.Map(ids, func(id, _ int) MediaNode { return MediaNode{ID: id, Type: MediaTypeAnime} }),
			Edges: lo.Map(ids, func(id, _ int) CharacterMediaEdge {
				return CharacterMediaEdge{Node: NodeRef{ID: id}, CharacterRole: CharacterRoleMain}
			}),
		}

		return map[string]any{"Character": map[string]any{"id": c.parentID, "media": connection}}, remainingMeta(100 - r.page), nil
	}}
}

func (c *catalog) staffTransport() *fakeTransport {
	return &fakeTransport{respond: func(r request) (any, network.Metadata, error) {
		if c.fail(r.page) {
			return nil, remainingMeta(1), serverError()
		}

		edges := lo.Map(span(c.total, r.page), func(id, _ int) StaffCharacterEdge {
			var edge StaffCharacterEdge
			edge.Node.ID = id
			edge.Node.Media.Nodes = []MediaNode{{ID: id % 3, Type: MediaTypeAnime}}
			return edge
		})

		staff := map[string]any{"id": c.parentID, "characters": StaffCharacterConnection{Edges: edges}}
		return map[string]any{"Staff": staff}, remainingMeta(100 - r.page), nil
	}}
}

func newTestClient(transport Transport, options Options) *Client {
	options.Transport = transport
	client := New(&options)
	client.sleep = func(ctx context.Context, _ time.Duration) error { return ctx.Err() }
	return client
}
