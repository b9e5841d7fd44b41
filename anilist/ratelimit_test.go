package anilist

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/anisan-cli/anigraph/network"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRemainingCalls(t *testing.T) {
	Convey("Given response metadata", t, func() {
		header := http.Header{}

		Convey("When the header holds a number", func() {
			header.Set("X-RateLimit-Remaining", "59")

			Convey("Then that number is returned", func() {
				So(RemainingCalls(network.Metadata{Header: header}), ShouldEqual, 59)
			})
		})

		Convey("When the header was stored without canonicalization", func() {
			header["x-ratelimit-remaining"] = []string{" 12 "}

			Convey("Then it is still found", func() {
				So(RemainingCalls(network.Metadata{Header: header}), ShouldEqual, 12)
			})
		})

		Convey("When the header is missing", func() {
			Convey("Then 0 is returned", func() {
				So(RemainingCalls(network.Metadata{Header: header}), ShouldEqual, 0)
			})
		})

		Convey("When the header is not a number", func() {
			header.Set("X-RateLimit-Remaining", "plenty")

			Convey("Then 0 is returned", func() {
				So(RemainingCalls(network.Metadata{Header: header}), ShouldEqual, 0)
			})
		})

		Convey("When the header is negative", func() {
			header.Set("X-RateLimit-Remaining", "-3")

			Convey("Then 0 is returned", func() {
				So(RemainingCalls(network.Metadata{Header: header}), ShouldEqual, 0)
			})
		})

		Convey("When the metadata carries no headers", func() {
			Convey("Then 0 is returned", func() {
				So(RemainingCalls(network.Metadata{}), ShouldEqual, 0)
			})
		})
	})
}

func TestRemainingFromError(t *testing.T) {
	Convey("Given a failed request", t, func() {
		Convey("When it is a FetchError with headers", func() {
			header := http.Header{}
			header.Set("X-RateLimit-Remaining", "7")
			err := fmt.Errorf("fetch media: %w", &network.FetchError{Status: http.StatusNotFound, Header: header})

			Convey("Then the remaining calls are read from it", func() {
				So(remainingFromError(err), ShouldEqual, 7)
			})
		})

		Convey("When it is any other error", func() {
			Convey("Then 0 is returned", func() {
				So(remainingFromError(errors.New("connection reset")), ShouldEqual, 0)
			})
		})
	})
}
