package anilist

import (
	"errors"
	"net/textproto"
	"strconv"
	"strings"

	"github.com/anisan-cli/anigraph/constant"
	"github.com/anisan-cli/anigraph/network"
)

// RemainingCalls reads the number of calls left in the current rate limit window
// from response metadata. It returns 0 when the header is missing or unparseable,
// or when the metadata carries no headers at all.
func RemainingCalls(meta network.Metadata) int {
	if meta.Header == nil {
		return 0
	}

	values := meta.Header.Values(constant.RateLimitRemainingHeader)
	if len(values) == 0 {
		// headers set without canonicalization
		want := textproto.CanonicalMIMEHeaderKey(constant.RateLimitRemainingHeader)
		for name, v := range meta.Header {
			if textproto.CanonicalMIMEHeaderKey(name) == want {
				values = v
				break
			}
		}
	}

	if len(values) == 0 {
		return 0
	}

	remaining, err := strconv.Atoi(strings.TrimSpace(values[0]))
	if err != nil || remaining < 0 {
		return 0
	}

	return remaining
}

// remainingFromError extracts the rate limit carried by a failed request.
func remainingFromError(err error) int {
	var fetchErr *network.FetchError
	if !errors.As(err, &fetchErr) {
		return 0
	}

	return RemainingCalls(fetchErr.Metadata())
}
