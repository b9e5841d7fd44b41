package anilist

import "context"

// UserByName returns the user with the given name, or nil if there is none.
func (c *Client) UserByName(ctx context.Context, name string) (*User, error) {
	user, _, err := c.UserByNameWithRateLimit(ctx, name)
	return user, err
}

func (c *Client) UserByNameWithRateLimit(ctx context.Context, name string) (*User, int, error) {
	return lookup(ctx, c, userByNameQuery, map[string]any{"name": name}, func(r *userResponse) *User { return r.User })
}

// UserByID returns the user with the given id, or nil if there is none.
func (c *Client) UserByID(ctx context.Context, id int) (*User, error) {
	user, _, err := c.UserByIDWithRateLimit(ctx, id)
	return user, err
}

func (c *Client) UserByIDWithRateLimit(ctx context.Context, id int) (*User, int, error) {
	return lookup(ctx, c, userByIDQuery, map[string]any{"id": id}, func(r *userResponse) *User { return r.User })
}

// StudioByID returns the studio with the given id, or nil if there is none.
func (c *Client) StudioByID(ctx context.Context, id int) (*Studio, error) {
	studio, _, err := c.StudioByIDWithRateLimit(ctx, id)
	return studio, err
}

func (c *Client) StudioByIDWithRateLimit(ctx context.Context, id int) (*Studio, int, error) {
	return lookup(ctx, c, studioByIDQuery, map[string]any{"id": id}, func(r *studioResponse) *Studio { return r.Studio })
}

// StudioBySearch returns the best studio match for search.
func (c *Client) StudioBySearch(ctx context.Context, search string) (*Studio, error) {
	studio, _, err := c.StudioBySearchWithRateLimit(ctx, search)
	return studio, err
}

func (c *Client) StudioBySearchWithRateLimit(ctx context.Context, search string) (*Studio, int, error) {
	return lookup(ctx, c, studioBySearchQuery, map[string]any{"search": search}, func(r *studioResponse) *Studio { return r.Studio })
}

// ReviewByID returns the review with the given id, or nil if there is none.
func (c *Client) ReviewByID(ctx context.Context, id int) (*Review, error) {
	review, _, err := c.ReviewByIDWithRateLimit(ctx, id)
	return review, err
}

func (c *Client) ReviewByIDWithRateLimit(ctx context.Context, id int) (*Review, int, error) {
	return lookup(ctx, c, reviewByIDQuery, map[string]any{"id": id}, func(r *reviewResponse) *Review { return r.Review })
}

// RecommendationByID returns the recommendation with the given id, or nil if there is none.
func (c *Client) RecommendationByID(ctx context.Context, id int) (*Recommendation, error) {
	recommendation, _, err := c.RecommendationByIDWithRateLimit(ctx, id)
	return recommendation, err
}

func (c *Client) RecommendationByIDWithRateLimit(ctx context.Context, id int) (*Recommendation, int, error) {
	return lookup(ctx, c, recommendationByIDQuery, map[string]any{"id": id}, func(r *recommendationResponse) *Recommendation {
		return r.Recommendation
	})
}

// AiringScheduleByID returns a single airing schedule entry.
func (c *Client) AiringScheduleByID(ctx context.Context, id int) (*AiringSchedule, error) {
	schedule, _, err := c.AiringScheduleByIDWithRateLimit(ctx, id)
	return schedule, err
}

func (c *Client) AiringScheduleByIDWithRateLimit(ctx context.Context, id int) (*AiringSchedule, int, error) {
	return lookup(ctx, c, airingScheduleByIDQuery, map[string]any{"id": id}, func(r *airingScheduleResponse) *AiringSchedule {
		return r.AiringSchedule
	})
}
