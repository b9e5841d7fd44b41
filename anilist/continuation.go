package anilist

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/anisan-cli/anigraph/log"
	"github.com/anisan-cli/anigraph/metric"
	"github.com/sirupsen/logrus"
)

// PageSize is the number of items AniList returns per page of a connection.
// A page holding exactly PageSize items is the only sign that another page may follow.
const PageSize = 25

// ContinuationStartPage is the first page fetched when draining a connection.
// Page 1 always arrives embedded in the entity lookup.
const ContinuationStartPage = 2

// ErrContinuationAborted is returned when draining a connection stops before its last page,
// either because the context ended or because a page kept failing past MaxPageRetries.
var ErrContinuationAborted = errors.New("connection draining aborted")

// drainer walks the pages of one connection kind.
// R is the response payload of a page query and P the connection shape accumulated.
type drainer[R, P any] struct {
	kind ConnectionKind
	// page extracts the connection page carried by a response, and its item count.
	page  func(*R) (P, int)
	merge func(acc, next P) P
}

// drain fetches every page of the connection from startPage on, until a page holds fewer
// than PageSize items. A failed page is retried without advancing. The returned count is
// the rate limit reported by the last successful page; remaining seeds the throttle.
func (d drainer[R, P]) drain(ctx context.Context, c *Client, parentID, startPage, remaining int) (P, int, error) {
	var accumulated P

	logger := log.WithFields(logrus.Fields{
		"kind":   d.kind.String(),
		"parent": parentID,
	})

	page := startPage
	lastSize := math.MaxInt
	failures := 0

	for lastSize >= PageSize {
		if err := c.throttle(ctx, remaining); err != nil {
			return accumulated, remaining, d.aborted(parentID, page, err)
		}

		var response R
		meta, err := c.transport.Send(ctx, ConnectionQuery(d.kind, page), map[string]any{"id": parentID}, &response)
		if err != nil {
			failures++
			metric.ContinuationRetries.WithLabelValues(d.kind.String()).Inc()
			logger.WithFields(logrus.Fields{"page": page, "attempt": failures}).Warnf("fetch page: %s", err)

			if ctx.Err() != nil {
				return accumulated, remaining, d.aborted(parentID, page, ctx.Err())
			}

			if c.options.MaxPageRetries > 0 && failures > c.options.MaxPageRetries {
				return accumulated, remaining, d.aborted(parentID, page, fmt.Errorf("%d attempts failed: %w", failures, err))
			}

			if err := c.sleep(ctx, c.options.RetryDelay); err != nil {
				return accumulated, remaining, d.aborted(parentID, page, err)
			}

			continue
		}

		items, size := d.page(&response)
		accumulated = d.merge(accumulated, items)
		lastSize = size
		failures = 0

		remaining = RemainingCalls(meta)
		c.observe(remaining)
		metric.ContinuationPages.WithLabelValues(d.kind.String()).Inc()
		logger.WithField("page", page).Debugf("fetched %d items", size)

		page++
	}

	return accumulated, remaining, nil
}

func (d drainer[R, P]) aborted(parentID, page int, cause error) error {
	return fmt.Errorf("%w: %s of %d at page %d: %w", ErrContinuationAborted, d.kind, parentID, page, cause)
}

type mediaCharactersPage struct {
	Media struct {
		Characters CharacterConnection `json:"characters"`
	} `json:"Media"`
}

type characterMediaPage struct {
	Character struct {
		Media CharacterMediaConnection `json:"media"`
	} `json:"Character"`
}

type staffCharactersPage struct {
	Staff struct {
		Characters StaffCharacterConnection `json:"characters"`
	} `json:"Staff"`
}

// A null parent decodes to an empty page, which ends the walk.
var (
	mediaCharacters = drainer[mediaCharactersPage, CharacterConnection]{
		kind: CharactersOfMedia,
		page: func(r *mediaCharactersPage) (CharacterConnection, int) {
			return r.Media.Characters, r.Media.Characters.size()
		},
		merge: func(acc, next CharacterConnection) CharacterConnection {
			acc.Edges = append(acc.Edges, next.Edges...)
			return acc
		},
	}

	characterMedia = drainer[characterMediaPage, CharacterMediaConnection]{
		kind: MediaOfCharacter,
		page: func(r *characterMediaPage) (CharacterMediaConnection, int) {
			return r.Character.Media, r.Character.Media.size()
		},
		merge: func(acc, next CharacterMediaConnection) CharacterMediaConnection {
			acc.Nodes = append(acc.Nodes, next.Nodes...)
			acc.Edges = append(acc.Edges, next.Edges...)
			return acc
		},
	}

	staffCharacters = drainer[staffCharactersPage, StaffCharacterConnection]{
		kind: CharactersOfStaff,
		page: func(r *staffCharactersPage) (StaffCharacterConnection, int) {
			return r.Staff.Characters, r.Staff.Characters.size()
		},
		merge: func(acc, next StaffCharacterConnection) StaffCharacterConnection {
			acc.Edges = append(acc.Edges, next.Edges...)
			return acc
		},
	}
)

func (c CharacterConnection) size() int {
	return len(c.Edges)
}

// size counts nodes and edges alike; AniList sends both for the same page.
func (c CharacterMediaConnection) size() int {
	return max(len(c.Nodes), len(c.Edges))
}

func (c StaffCharacterConnection) size() int {
	return len(c.Edges)
}

// AllMediaCharacters returns the character edges of a media entry from page on.
// It blocks until every page has been fetched, retrying failed pages.
func (c *Client) AllMediaCharacters(ctx context.Context, mediaID, page int) ([]CharacterEdge, error) {
	edges, _, err := c.AllMediaCharactersWithRateLimit(ctx, mediaID, page)
	return edges, err
}

// AllMediaCharactersWithRateLimit is AllMediaCharacters that also returns the remaining calls.
func (c *Client) AllMediaCharactersWithRateLimit(ctx context.Context, mediaID, page int) ([]CharacterEdge, int, error) {
	connection, remaining, err := mediaCharacters.drain(ctx, c, mediaID, page, math.MaxInt)
	return connection.Edges, remaining, err
}

// AllCharacterMedia returns the media nodes and edges of a character from page on.
func (c *Client) AllCharacterMedia(ctx context.Context, characterID, page int) (CharacterMediaConnection, error) {
	connection, _, err := c.AllCharacterMediaWithRateLimit(ctx, characterID, page)
	return connection, err
}

func (c *Client) AllCharacterMediaWithRateLimit(ctx context.Context, characterID, page int) (CharacterMediaConnection, int, error) {
	return characterMedia.drain(ctx, c, characterID, page, math.MaxInt)
}

// AllStaffCharacters returns the character edges of a staff member from page on.
func (c *Client) AllStaffCharacters(ctx context.Context, staffID, page int) ([]StaffCharacterEdge, error) {
	edges, _, err := c.AllStaffCharactersWithRateLimit(ctx, staffID, page)
	return edges, err
}

func (c *Client) AllStaffCharactersWithRateLimit(ctx context.Context, staffID, page int) ([]StaffCharacterEdge, int, error) {
	connection, remaining, err := staffCharacters.drain(ctx, c, staffID, page, math.MaxInt)
	return connection.Edges, remaining, err
}
