package anilist

import "context"

// MediaByID returns the media entry with the given AniList id, with every character.
// If the media is not found, it returns nil.
func (c *Client) MediaByID(ctx context.Context, id int) (*Media, error) {
	media, _, err := c.MediaByIDWithRateLimit(ctx, id)
	return media, err
}

// MediaByIDWithRateLimit is MediaByID that also returns the remaining calls.
func (c *Client) MediaByIDWithRateLimit(ctx context.Context, id int) (*Media, int, error) {
	return c.media(ctx, mediaByIDQuery, map[string]any{"id": id})
}

// MediaByMalID returns the media entry with the given MyAnimeList id.
// When both an anime and a manga share the id, which one is returned is up to AniList;
// use MediaByMalIDAndType to choose.
func (c *Client) MediaByMalID(ctx context.Context, malID int) (*Media, error) {
	media, _, err := c.MediaByMalIDWithRateLimit(ctx, malID)
	return media, err
}

func (c *Client) MediaByMalIDWithRateLimit(ctx context.Context, malID int) (*Media, int, error) {
	return c.media(ctx, mediaByMalIDQuery, map[string]any{"idMal": malID})
}

// MediaByMalIDAndType returns the anime or manga with the given MyAnimeList id.
func (c *Client) MediaByMalIDAndType(ctx context.Context, malID int, mediaType MediaType) (*Media, error) {
	media, _, err := c.MediaByMalIDAndTypeWithRateLimit(ctx, malID, mediaType)
	return media, err
}

func (c *Client) MediaByMalIDAndTypeWithRateLimit(ctx context.Context, malID int, mediaType MediaType) (*Media, int, error) {
	return c.media(ctx, mediaByMalIDAndTypeQuery, map[string]any{"idMal": malID, "type": mediaType})
}

// MediaBySearch returns the best match for search.
func (c *Client) MediaBySearch(ctx context.Context, search string) (*Media, error) {
	media, _, err := c.MediaBySearchWithRateLimit(ctx, search)
	return media, err
}

func (c *Client) MediaBySearchWithRateLimit(ctx context.Context, search string) (*Media, int, error) {
	return c.media(ctx, mediaBySearchQuery, map[string]any{"search": search})
}

// MediaBySearchAndType returns the best anime or manga match for search.
func (c *Client) MediaBySearchAndType(ctx context.Context, search string, mediaType MediaType) (*Media, error) {
	media, _, err := c.MediaBySearchAndTypeWithRateLimit(ctx, search, mediaType)
	return media, err
}

func (c *Client) MediaBySearchAndTypeWithRateLimit(ctx context.Context, search string, mediaType MediaType) (*Media, int, error) {
	return c.media(ctx, mediaBySearchTypeQuery, map[string]any{"search": search, "type": mediaType})
}

// media looks up a media entry and drains its characters when the first page is full.
// Continuation always addresses the media by its AniList id, whatever the lookup used.
func (c *Client) media(ctx context.Context, query string, variables map[string]any) (*Media, int, error) {
	media, remaining, err := lookup(ctx, c, query, variables, func(r *mediaResponse) *Media { return r.Media })
	if err != nil || media == nil {
		return nil, remaining, err
	}

	if media.Characters.size() < PageSize {
		return media, remaining, nil
	}

	rest, remaining, err := mediaCharacters.drain(ctx, c, media.ID, ContinuationStartPage, remaining)
	if err != nil {
		return nil, remaining, err
	}

	media.Characters = mediaCharacters.merge(media.Characters, rest)
	return media, remaining, nil
}

// SearchMedia returns one page of media entries matching search.
// Pages are not drained; use PageInfo.HasNextPage to walk them.
func (c *Client) SearchMedia(ctx context.Context, search string, page, perPage int) (*Page, error) {
	result, _, err := c.SearchMediaWithRateLimit(ctx, search, page, perPage)
	return result, err
}

func (c *Client) SearchMediaWithRateLimit(ctx context.Context, search string, page, perPage int) (*Page, int, error) {
	return lookup(ctx, c, mediaPageQuery, map[string]any{
		"search":  search,
		"page":    page,
		"perPage": perPage,
	}, func(r *pageResponse) *Page { return r.Page })
}

// SearchMediaByType returns one page of anime or manga matching search.
func (c *Client) SearchMediaByType(ctx context.Context, search string, mediaType MediaType, page, perPage int) (*Page, error) {
	result, _, err := c.SearchMediaByTypeWithRateLimit(ctx, search, mediaType, page, perPage)
	return result, err
}

func (c *Client) SearchMediaByTypeWithRateLimit(ctx context.Context, search string, mediaType MediaType, page, perPage int) (*Page, int, error) {
	return lookup(ctx, c, mediaPageByTypeQuery, map[string]any{
		"search":  search,
		"type":    mediaType,
		"page":    page,
		"perPage": perPage,
	}, func(r *pageResponse) *Page { return r.Page })
}

// MediaForSeason returns one page of the media that aired in the given season.
func (c *Client) MediaForSeason(ctx context.Context, page int, season MediaSeason, year int) (*Page, error) {
	result, _, err := c.MediaForSeasonWithRateLimit(ctx, page, season, year)
	return result, err
}

func (c *Client) MediaForSeasonWithRateLimit(ctx context.Context, page int, season MediaSeason, year int) (*Page, int, error) {
	return lookup(ctx, c, seasonQuery, map[string]any{
		"page":       page,
		"season":     season,
		"seasonYear": year,
	}, func(r *pageResponse) *Page { return r.Page })
}
