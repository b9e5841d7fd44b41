package network

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"golang.org/x/time/rate"
)

func newServer(handler http.HandlerFunc) (*httptest.Server, *GraphQL) {
	server := httptest.NewServer(handler)
	transport := NewGraphQL(server.URL)
	transport.HTTP = server.Client()
	return server, transport
}

func TestSend(t *testing.T) {
	Convey("GraphQL.Send", t, func() {
		ctx := context.Background()

		Convey("Posts query and variables and decodes data", func() {
			var received graphQLRequest
			var headers http.Header
			server, transport := newServer(func(w http.ResponseWriter, r *http.Request) {
				headers = r.Header.Clone()
				_ = json.NewDecoder(r.Body).Decode(&received)
				w.Header().Set("X-RateLimit-Remaining", "88")
				_, _ = w.Write([]byte(`{"data":{"Media":{"id":1}}}`))
			})
			defer server.Close()

			var out struct {
				Media struct {
					ID int `json:"id"`
				} `json:"Media"`
			}
			meta, err := transport.Send(ctx, "query ($id: Int) { Media (id: $id) { id } }", map[string]any{"id": 1}, &out)

			So(err, ShouldBeNil)
			So(out.Media.ID, ShouldEqual, 1)
			So(meta.Status, ShouldEqual, http.StatusOK)
			So(meta.Header.Get("X-RateLimit-Remaining"), ShouldEqual, "88")
			So(received.Query, ShouldContainSubstring, "Media (id: $id)")
			So(received.Variables["id"], ShouldEqual, float64(1))
			So(headers.Get("Content-Type"), ShouldEqual, "application/json")
			So(headers.Get("Authorization"), ShouldBeEmpty)
		})

		Convey("Surfaces 404 as a FetchError carrying headers", func() {
			server, transport := newServer(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("X-RateLimit-Remaining", "12")
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(`{"data":{"Media":null},"errors":[{"message":"Not Found.","status":404}]}`))
			})
			defer server.Close()

			meta, err := transport.Send(ctx, "{ Media { id } }", nil, nil)

			So(err, ShouldNotBeNil)
			So(IsNotFound(err), ShouldBeTrue)

			var fetchErr *FetchError
			So(errors.As(err, &fetchErr), ShouldBeTrue)
			So(fetchErr.Header.Get("X-RateLimit-Remaining"), ShouldEqual, "12")
			So(fetchErr.Errors[0].Message, ShouldEqual, "Not Found.")
			So(fetchErr.Error(), ShouldContainSubstring, "Not Found.")
			So(meta.Status, ShouldEqual, http.StatusNotFound)
		})

		Convey("Treats errors without data as a failure", func() {
			server, transport := newServer(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"data":null,"errors":[{"message":"Too Many Requests.","status":429}]}`))
			})
			defer server.Close()

			_, err := transport.Send(ctx, "{ Media { id } }", nil, nil)

			var fetchErr *FetchError
			So(errors.As(err, &fetchErr), ShouldBeTrue)
			So(fetchErr.Status, ShouldEqual, http.StatusTooManyRequests)
			So(IsNotFound(err), ShouldBeFalse)
		})

		Convey("Keeps partial data when errors accompany it", func() {
			server, transport := newServer(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"data":{"Media":{"id":5}},"errors":[{"message":"field deprecated"}]}`))
			})
			defer server.Close()

			var out struct {
				Media struct {
					ID int `json:"id"`
				} `json:"Media"`
			}
			_, err := transport.Send(ctx, "{ Media { id } }", nil, &out)
			So(err, ShouldBeNil)
			So(out.Media.ID, ShouldEqual, 5)
		})

		Convey("Reports malformed bodies", func() {
			server, transport := newServer(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`<html>bad gateway</html>`))
			})
			defer server.Close()

			_, err := transport.Send(ctx, "{ Media { id } }", nil, &struct{}{})
			So(err, ShouldNotBeNil)
			So(IsNotFound(err), ShouldBeFalse)
		})

		Convey("Attaches the bearer token when available", func() {
			var auth string
			server, transport := newServer(func(w http.ResponseWriter, r *http.Request) {
				auth = r.Header.Get("Authorization")
				_, _ = w.Write([]byte(`{"data":{}}`))
			})
			defer server.Close()

			transport.Token = func() (string, error) { return "secret", nil }
			_, err := transport.Send(ctx, "{ Viewer { id } }", nil, nil)
			So(err, ShouldBeNil)
			So(auth, ShouldEqual, "Bearer secret")

			transport.Token = func() (string, error) { return "", errors.New("no token") }
			_, err = transport.Send(ctx, "{ Viewer { id } }", nil, nil)
			So(err, ShouldBeNil)
			So(auth, ShouldBeEmpty)
		})

		Convey("Stops waiting for the limiter when the context ends", func() {
			server, transport := newServer(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"data":{}}`))
			})
			defer server.Close()

			transport.Limiter = rate.NewLimiter(rate.Every(time.Hour), 1)
			_, err := transport.Send(ctx, "{ a }", nil, nil)
			So(err, ShouldBeNil)

			short, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
			defer cancel()
			_, err = transport.Send(short, "{ a }", nil, nil)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestNewGraphQL(t *testing.T) {
	Convey("NewGraphQL defaults to the AniList endpoint", t, func() {
		So(NewGraphQL("").Endpoint, ShouldEqual, "https://graphql.anilist.co")
		So(NewGraphQL("http://localhost:8080").Endpoint, ShouldEqual, "http://localhost:8080")
	})

	Convey("NewHTTPClient falls back to the default timeout", t, func() {
		So(NewHTTPClient(0).Timeout, ShouldEqual, DefaultTimeout)
		So(NewHTTPClient(time.Second).Timeout, ShouldEqual, time.Second)
	})
}
