// Package query remembers search strings typed into lookups and suggests them back for completion.
// Only the search text is stored, never the entities it resolved to.
package query

import (
	"strings"
	"sync"

	"github.com/anisan-cli/anigraph/filesystem"
	"github.com/anisan-cli/anigraph/key"
	"github.com/anisan-cli/anigraph/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// Scope separates the searches of different entity kinds, e.g. "media" or "staff".
type Scope string

const (
	ScopeMedia     Scope = "media"
	ScopeCharacter Scope = "character"
	ScopeStaff     Scope = "staff"
	ScopeStudio    Scope = "studio"
	ScopeUser      Scope = "user"
)

type queryRecord struct {
	Scope Scope  `json:"scope"`
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

var cacher = gache.New[map[string]*queryRecord](
	&gache.Options{
		Path:       where.Queries(),
		FileSystem: &filesystem.GacheFs{},
	},
)

var (
	mu              sync.Mutex
	suggestionCache = make(map[string][]*queryRecord)
)

func recordKey(scope Scope, q string) string {
	return string(scope) + ":" + q
}

// Remember records a search in the persistent history or raises its rank by weight.
func Remember(scope Scope, q string, weight int) error {
	q = sanitize(q)
	if q == "" {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	cached, expired, err := cacher.Get()
	if expired || err != nil || cached == nil {
		cached = make(map[string]*queryRecord)
	}

	if record, ok := cached[recordKey(scope, q)]; ok {
		record.Rank += weight
	} else {
		cached[recordKey(scope, q)] = &queryRecord{Scope: scope, Rank: weight, Query: q}
	}

	// ranks changed, cached suggestions are stale
	suggestionCache = make(map[string][]*queryRecord)
	return cacher.Set(cached)
}

// Suggest returns the highest ranked past search of scope matching q.
func Suggest(scope Scope, q string) mo.Option[string] {
	suggestions := SuggestMany(scope, q)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}
	return mo.Some(suggestions[0])
}

// SuggestMany returns the past searches of scope fuzzily matching q, highest rank first.
func SuggestMany(scope Scope, q string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return []string{}
	}

	q = sanitize(q)

	mu.Lock()
	defer mu.Unlock()

	var records []*queryRecord
	if prev, ok := suggestionCache[recordKey(scope, q)]; ok {
		records = prev
	} else {
		cached, expired, err := cacher.Get()
		if err != nil || expired || cached == nil {
			return []string{}
		}

		for _, record := range cached {
			if record.Scope == scope && fuzzy.Match(q, record.Query) {
				records = append(records, record)
			}
		}

		slices.SortFunc(records, func(a, b *queryRecord) int {
			if a.Rank != b.Rank {
				return b.Rank - a.Rank
			}
			return strings.Compare(a.Query, b.Query)
		})

		suggestionCache[recordKey(scope, q)] = records
	}

	return lo.Map(records, func(r *queryRecord, _ int) string {
		return r.Query
	})
}

func sanitize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
