package anilist

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/anisan-cli/anigraph/metric"
	"github.com/anisan-cli/anigraph/network"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMediaLookup(t *testing.T) {
	Convey("Given a media lookup", t, func() {
		ctx := context.Background()

		Convey("When the media has fewer characters than a page", func() {
			shelf := &catalog{parentID: 21, total: 12}
			transport := shelf.mediaTransport()
			client := newTestClient(transport, Options{})

			media, remaining, err := client.MediaByIDWithRateLimit(ctx, 21)

			Convey("Then no continuation is attempted", func() {
				So(err, ShouldBeNil)
				So(transport.count(), ShouldEqual, 1)
				So(media.CharacterIDs(), ShouldResemble, lo.RangeFrom(1, 12))
				So(remaining, ShouldEqual, 99)
			})
		})

		Convey("When the media has exactly a page of characters", func() {
			shelf := &catalog{parentID: 21, total: PageSize}
			transport := shelf.mediaTransport()
			client := newTestClient(transport, Options{})

			media, err := client.MediaByID(ctx, 21)

			Convey("Then exactly one empty continuation page is fetched", func() {
				So(err, ShouldBeNil)
				So(transport.pages(), ShouldResemble, []int{1, 2})
				So(len(media.Characters.Edges), ShouldEqual, PageSize)
			})
		})

		Convey("When the media has 164 characters", func() {
			shelf := &catalog{parentID: 21, total: 164}
			transport := shelf.mediaTransport()
			client := newTestClient(transport, Options{})

			media, remaining, err := client.MediaByIDWithRateLimit(ctx, 21)

			Convey("Then the head page comes first and every page follows in order", func() {
				So(err, ShouldBeNil)
				So(transport.pages(), ShouldResemble, []int{1, 2, 3, 4, 5, 6, 7})
				So(media.CharacterIDs(), ShouldResemble, lo.RangeFrom(1, 164))
				So(media.VoiceActorIDs(), ShouldHaveLength, 164)
				So(media.Name(), ShouldEqual, "Attack on Titan")
			})

			Convey("Then the rate limit of the last page is returned", func() {
				So(remaining, ShouldEqual, 93)
			})
		})

		Convey("When the media is looked up by its MyAnimeList id", func() {
			shelf := &catalog{parentID: 21, total: 30}
			transport := shelf.mediaTransport()
			client := newTestClient(transport, Options{})

			media, err := client.MediaByMalIDAndType(ctx, 5114, MediaTypeAnime)

			Convey("Then continuation addresses the AniList id", func() {
				So(err, ShouldBeNil)
				So(len(media.Characters.Edges), ShouldEqual, 30)
				So(transport.requests[0].variables, ShouldResemble, map[string]any{"idMal": 5114, "type": MediaTypeAnime})
				So(transport.requests[1].variables, ShouldResemble, map[string]any{"id": 21})
			})
		})

		Convey("When the media does not exist", func() {
			transport := &fakeTransport{respond: func(request) (any, network.Metadata, error) {
				return nil, network.Metadata{Status: http.StatusNotFound}, notFound(33)
			}}
			client := newTestClient(transport, Options{})

			media, remaining, err := client.MediaBySearchWithRateLimit(ctx, "no such show")

			Convey("Then nil is returned with the rate limit of the failure", func() {
				So(err, ShouldBeNil)
				So(media, ShouldBeNil)
				So(remaining, ShouldEqual, 33)
				So(transport.count(), ShouldEqual, 1)
				So(testutil.ToFloat64(metric.RateLimitRemaining), ShouldEqual, 33)
			})
		})

		Convey("When the lookup fails for another reason", func() {
			transport := &fakeTransport{respond: func(request) (any, network.Metadata, error) {
				return nil, network.Metadata{}, serverError()
			}}
			client := newTestClient(transport, Options{})

			media, err := client.MediaByID(ctx, 1)

			Convey("Then the error is returned", func() {
				So(media, ShouldBeNil)
				var fetchErr *network.FetchError
				So(errors.As(err, &fetchErr), ShouldBeTrue)
				So(fetchErr.Status, ShouldEqual, http.StatusInternalServerError)
			})
		})

		Convey("When continuation is aborted", func() {
			shelf := &catalog{parentID: 21, total: 40, failures: map[int]int{2: 10}}
			transport := shelf.mediaTransport()
			client := newTestClient(transport, Options{MaxPageRetries: 1})

			media, err := client.MediaByID(ctx, 21)

			Convey("Then no partial media is returned", func() {
				So(media, ShouldBeNil)
				So(errors.Is(err, ErrContinuationAborted), ShouldBeTrue)
			})
		})
	})
}

func TestCharacterAndStaffLookup(t *testing.T) {
	Convey("Given people lookups", t, func() {
		ctx := context.Background()

		Convey("When a character appears in 52 media entries", func() {
			shelf := &catalog{parentID: 40, total: 52}
			transport := shelf.characterTransport()
			client := newTestClient(transport, Options{})

			character, err := client.CharacterByID(ctx, 40)

			Convey("Then two continuation calls complete the media", func() {
				So(err, ShouldBeNil)
				So(transport.pages(), ShouldResemble, []int{1, 2, 3})
				So(character.MediaIDs(), ShouldResemble, lo.RangeFrom(1, 52))
				So(character.MainRoles(), ShouldHaveLength, 52)
				So(character.MediaOfType(MediaTypeManga), ShouldBeEmpty)
			})
		})

		Convey("When a staff member is found by search", func() {
			shelf := &catalog{parentID: 95011, total: 26}
			transport := shelf.staffTransport()
			client := newTestClient(transport, Options{})

			staff, remaining, err := client.StaffBySearchWithRateLimit(ctx, "Kaji Yuuki")

			Convey("Then the characters are drained by id", func() {
				So(err, ShouldBeNil)
				So(staff.CharacterIDs(), ShouldResemble, lo.RangeFrom(1, 26))
				So(staff.MediaOfCharacters(), ShouldHaveLength, 3)
				So(transport.requests[1].variables, ShouldResemble, map[string]any{"id": 95011})
				So(remaining, ShouldEqual, 98)
			})
		})
	})
}

func TestFlatLookups(t *testing.T) {
	Convey("Given lookups without paginated connections", t, func() {
		ctx := context.Background()

		respond := func(payload any) *fakeTransport {
			return &fakeTransport{respond: func(request) (any, network.Metadata, error) {
				return payload, remainingMeta(80), nil
			}}
		}

		Convey("UserByName decodes the user", func() {
			transport := respond(map[string]any{"User": map[string]any{
				"id":      1,
				"name":    "Josh",
				"options": map[string]any{"titleLanguage": "ROMAJI"},
			}})
			user, remaining, err := newTestClient(transport, Options{}).UserByNameWithRateLimit(ctx, "Josh")

			So(err, ShouldBeNil)
			So(user.Name, ShouldEqual, "Josh")
			So(user.TitleLanguage(), ShouldEqual, TitleRomaji)
			So(remaining, ShouldEqual, 80)
			So(transport.requests[0].variables, ShouldResemble, map[string]any{"name": "Josh"})
		})

		Convey("RecommendationByID exposes the linked ids", func() {
			transport := respond(map[string]any{"Recommendation": map[string]any{
				"id":                  1,
				"rating":              12,
				"media":               map[string]any{"id": 1},
				"mediaRecommendation": map[string]any{"id": 2},
				"user":                nil,
			}})
			recommendation, err := newTestClient(transport, Options{}).RecommendationByID(ctx, 1)

			So(err, ShouldBeNil)
			So(recommendation.MediaID(), ShouldEqual, 1)
			So(recommendation.RecommendedMediaID(), ShouldEqual, 2)
			So(recommendation.UserID(), ShouldEqual, 0)
		})

		Convey("SearchMedia returns a page without draining its entries", func() {
			edges := lo.Map(lo.RangeFrom(1, PageSize), func(id, _ int) CharacterEdge { return CharacterEdge{Node: NodeRef{ID: id}} })
			transport := respond(map[string]any{"Page": map[string]any{
				"pageInfo": PageInfo{Total: 2, CurrentPage: 1, LastPage: 1, PerPage: 5},
				"media": []map[string]any{
					{"id": 1, "characters": CharacterConnection{Edges: edges}},
					{"id": 2},
				},
			}})
			page, err := newTestClient(transport, Options{}).SearchMediaByType(ctx, "titan", MediaTypeAnime, 1, 5)

			So(err, ShouldBeNil)
			So(page.PageInfo.HasNextPage, ShouldBeFalse)
			So(page.Media, ShouldHaveLength, 2)
			So(transport.count(), ShouldEqual, 1)
			So(transport.requests[0].variables["type"], ShouldEqual, MediaTypeAnime)
		})

		Convey("MediaForSeason sends the season variables", func() {
			transport := respond(map[string]any{"Page": map[string]any{"media": []any{}}})
			_, err := newTestClient(transport, Options{}).MediaForSeason(ctx, 2, SeasonFall, 2019)

			So(err, ShouldBeNil)
			So(transport.requests[0].variables, ShouldResemble, map[string]any{"page": 2, "season": SeasonFall, "seasonYear": 2019})
			So(strings.Contains(transport.requests[0].query, "seasonYear: $seasonYear"), ShouldBeTrue)
		})

		Convey("A null entity is reported as missing", func() {
			transport := respond(map[string]any{"Studio": nil})
			studio, err := newTestClient(transport, Options{}).StudioBySearch(ctx, "nobody")

			So(err, ShouldBeNil)
			So(studio, ShouldBeNil)
		})
	})
}

func TestNew(t *testing.T) {
	Convey("New", t, func() {
		Convey("Defaults the transport and rate limit timeout", func() {
			client := New(nil)
			So(client.options.RateLimitTimeout, ShouldEqual, DefaultRateLimitTimeout)

			graphql, ok := client.transport.(*network.GraphQL)
			So(ok, ShouldBeTrue)
			So(graphql.Endpoint, ShouldEqual, "https://graphql.anilist.co")
		})

		Convey("Honours a custom endpoint", func() {
			client := New(&Options{Endpoint: "http://localhost:4000/graphql"})
			So(client.transport.(*network.GraphQL).Endpoint, ShouldEqual, "http://localhost:4000/graphql")
		})
	})
}
