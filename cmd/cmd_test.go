package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/anisan-cli/anigraph/anilist"
	"github.com/anisan-cli/anigraph/config"
	"github.com/anisan-cli/anigraph/filesystem"
	"github.com/anisan-cli/anigraph/key"
	"github.com/anisan-cli/anigraph/query"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	lo.Must0(config.Setup())
	viper.Set(key.HTTPRequestsPerMinute, 0)
}

// anilistServer serves a media entry with 30 characters, split over two pages.
type anilistServer struct {
	mu      sync.Mutex
	queries []string
}

func (a *anilistServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Query     string         `json:"query"`
		Variables map[string]any `json:"variables"`
	}
	lo.Must0(json.NewDecoder(r.Body).Decode(&body))

	a.mu.Lock()
	a.queries = append(a.queries, body.Query)
	page := len(a.queries)
	a.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-RateLimit-Remaining", fmt.Sprint(90-page))

	id, byID := body.Variables["id"]
	search, bySearch := body.Variables["search"]
	if byID && id != float64(21) || bySearch && search != "one piece" {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"data": {"Media": null}, "errors": [{"message": "Not Found.", "status": 404}]}`))
		return
	}

	var from, to int
	switch {
	case strings.Contains(body.Query, "characters (page: 1,"):
		from, to = 1, anilist.PageSize
	case strings.Contains(body.Query, "characters (page: 2,"):
		from, to = anilist.PageSize+1, 30
	}

	edges := lo.Map(lo.RangeFrom(from, to-from+1), func(id, _ int) map[string]any {
		return map[string]any{"node": map[string]any{"id": id}, "role": "SUPPORTING", "voiceActors": []any{}}
	})
	_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"Media": map[string]any{
		"id":         21,
		"title":      map[string]any{"romaji": "One Piece"},
		"characters": map[string]any{"edges": edges},
	}}})
}

// resetFlags restores every flag to its default, flag values outlive a single Execute.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if slice, ok := f.Value.(pflag.SliceValue); ok {
			_ = slice.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}

	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

func execute(args ...string) (string, error) {
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestMediaCommand(t *testing.T) {
	Convey("Given an AniList server", t, func() {
		handler := &anilistServer{}
		server := httptest.NewServer(handler)
		Reset(server.Close)

		Convey("When media is searched with --json and --rate-limit", func() {
			out, err := execute("media", "one", "piece", "--json", "--rate-limit", "--endpoint", server.URL)
			So(err, ShouldBeNil)

			var result struct {
				Data               anilist.Media `json:"data"`
				RateLimitRemaining int           `json:"rateLimitRemaining"`
			}
			So(json.Unmarshal([]byte(out), &result), ShouldBeNil)

			Convey("Then every character is printed with the last page's rate limit", func() {
				So(result.Data.CharacterIDs(), ShouldResemble, lo.RangeFrom(1, 30))
				So(result.RateLimitRemaining, ShouldEqual, 88)
				So(handler.queries, ShouldHaveLength, 2)
			})

			Convey("Then the search is remembered for completion", func() {
				So(query.SuggestMany(query.ScopeMedia, "one"), ShouldContain, "one piece")
			})
		})

		Convey("When the media does not exist", func() {
			out, err := execute("media", "--id", "404", "--json", "--rate-limit", "--endpoint", server.URL)

			Convey("Then null data is printed without an error", func() {
				So(err, ShouldBeNil)
				So(out, ShouldContainSubstring, `"data": null`)
				So(out, ShouldContainSubstring, `"rateLimitRemaining": 89`)
			})
		})
	})

	Convey("Given a search that matches nothing", t, func() {
		handler := &anilistServer{}
		server := httptest.NewServer(handler)
		Reset(server.Close)
		So(query.Remember(query.ScopeMedia, "one piece", 1), ShouldBeNil)

		Convey("When it resembles a past search", func() {
			out, err := execute("media", "one", "pice", "--endpoint", server.URL)

			Convey("Then the past search is suggested", func() {
				So(err, ShouldBeNil)
				So(out, ShouldContainSubstring, "not found")
				So(out, ShouldContainSubstring, "did you mean one piece?")
				So(query.SuggestMany(query.ScopeMedia, "one pice"), ShouldNotContain, "one pice")
			})
		})

		Convey("When JSON is requested", func() {
			out, err := execute("media", "one", "pice", "--json", "--endpoint", server.URL)

			Convey("Then only the JSON document is printed", func() {
				So(err, ShouldBeNil)
				So(strings.TrimSpace(out), ShouldEqual, "null")
			})
		})
	})

	Convey("Given invalid arguments", t, func() {
		_, err := execute("media", "--type", "novel", "titan")
		So(err, ShouldNotBeNil)

		_, err = execute("media", "season", "monsoon", "2020")
		So(err, ShouldNotBeNil)

		_, err = execute("review", "abc")
		So(err, ShouldNotBeNil)
	})
}

func TestQueryCommand(t *testing.T) {
	Convey("query prints continuation documents", t, func() {
		out, err := execute("query", "--kind", "characters-of-staff", "--page", "3")
		So(err, ShouldBeNil)
		So(out, ShouldContainSubstring, "Staff (id: $id)")
		So(out, ShouldContainSubstring, "characters (page: 3, perPage: 25)")
	})

	Convey("query prints static documents by name", t, func() {
		out, err := execute("query", "media-by-id")
		So(err, ShouldBeNil)
		So(out, ShouldContainSubstring, "Media (id: $id)")

		_, err = execute("query", "media-by-nothing")
		So(err, ShouldNotBeNil)
	})
}

func TestSchemaCommand(t *testing.T) {
	Convey("schema reflects the printed entities", t, func() {
		for _, name := range schemaNames() {
			schema, err := reflectSchema(name)
			So(err, ShouldBeNil)
			So(schema, ShouldNotBeNil)
		}

		out, err := execute("schema", "character")
		So(err, ShouldBeNil)
		So(out, ShouldContainSubstring, "Every media entry the character appears in.")

		_, err = reflectSchema("anime")
		So(err, ShouldNotBeNil)
	})
}

func TestConfigCommand(t *testing.T) {
	Convey("Given the configuration commands", t, func() {
		Reset(func() {
			_, _ = execute("config", "reset", key.RateLimitTimeout)
			_, _ = execute("config", "reset", key.ContinuationMaxRetries)
		})

		Convey("When a duration is set", func() {
			_, err := execute("config", "set", key.RateLimitTimeout, "30s")
			So(err, ShouldBeNil)

			Convey("Then it is stored as a duration", func() {
				So(viper.GetDuration(key.RateLimitTimeout), ShouldEqual, 30*time.Second)
				So(config.ClientOptions().RateLimitTimeout, ShouldEqual, 30*time.Second)

				out, err := execute("config", "get", key.RateLimitTimeout)
				So(err, ShouldBeNil)
				So(out, ShouldEqual, "30s\n")
			})

			Convey("Then it is saved to the configuration file", func() {
				data, err := filesystem.API().ReadFile(configFile())
				So(err, ShouldBeNil)
				So(string(data), ShouldContainSubstring, "[ratelimit]")
			})

			Convey("Then reset restores the default", func() {
				_, err := execute("config", "reset", key.RateLimitTimeout)
				So(err, ShouldBeNil)
				So(viper.GetDuration(key.RateLimitTimeout), ShouldEqual, anilist.DefaultRateLimitTimeout)
			})
		})

		Convey("When an invalid duration is set", func() {
			_, err := execute("config", "set", key.RateLimitTimeout, "soon")

			Convey("Then it is rejected and the value is kept", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "invalid duration")
				So(viper.GetDuration(key.RateLimitTimeout), ShouldEqual, anilist.DefaultRateLimitTimeout)
			})
		})

		Convey("When the retry bound is set", func() {
			_, err := execute("config", "set", key.ContinuationMaxRetries, "3")
			So(err, ShouldBeNil)

			Convey("Then new clients give up after that many attempts", func() {
				So(config.ClientOptions().MaxPageRetries, ShouldEqual, 3)
			})
		})

		Convey("When a negative retry bound is set", func() {
			_, err := execute("config", "set", "--", key.ContinuationMaxRetries, "-1")
			So(err, ShouldNotBeNil)
			So(config.ClientOptions().MaxPageRetries, ShouldEqual, 0)
		})

		Convey("When an unknown key is used", func() {
			_, err := execute("config", "set", "ratelimit.timout", "1s")

			Convey("Then the closest key is suggested", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, key.RateLimitTimeout)
			})
		})

		Convey("When reset is given nothing to reset", func() {
			_, err := execute("config", "reset")
			So(err, ShouldNotBeNil)

			_, err = execute("config", "reset", "--all", key.RateLimitTimeout)
			So(err, ShouldNotBeNil)
		})

		Convey("When keys are described as JSON", func() {
			out, err := execute("config", "info", "--key", key.RateLimitTimeout, "--json")
			So(err, ShouldBeNil)

			var fields []map[string]any
			So(json.Unmarshal([]byte(out), &fields), ShouldBeNil)
			So(fields, ShouldHaveLength, 1)
			So(fields[0]["key"], ShouldEqual, key.RateLimitTimeout)
			So(fields[0]["type"], ShouldEqual, "duration")
		})
	})
}

func TestRender(t *testing.T) {
	Convey("Given a media entry", t, func() {
		media := &anilist.Media{
			ID:           21,
			Title:        anilist.Title{Romaji: "One Piece", English: "One Piece"},
			Format:       anilist.MediaFormat("TV"),
			Genres:       []string{"Action", "Adventure"},
			AverageScore: 88,
		}

		Convey("Then the text view lists its fields", func() {
			text := renderMedia(media)(80)
			So(text, ShouldContainSubstring, "One Piece")
			So(text, ShouldContainSubstring, "Action, Adventure")
			So(text, ShouldContainSubstring, "0 characters")
			So(text, ShouldNotContainSubstring, "Episodes")
		})
	})

	Convey("field skips zero values", t, func() {
		So(field("Episodes", 0), ShouldBeEmpty)
		So(field("URL", ""), ShouldBeEmpty)
		So(field("Score", 88), ShouldContainSubstring, "88")
		So(field("Popularity", count(0)), ShouldBeEmpty)
		So(count(123456), ShouldEqual, "123,456")
	})

	Convey("labels are sorted", t, func() {
		So(labels(map[string]string{"status": "200", "kind": "x"}), ShouldEqual, `{kind="x",status="200"}`)
		So(labels(nil), ShouldBeEmpty)
	})
}
