package anilist

import "context"

// CharacterByID returns the character with the given id, with every media entry it appears in.
// If the character is not found, it returns nil.
func (c *Client) CharacterByID(ctx context.Context, id int) (*Character, error) {
	character, _, err := c.CharacterByIDWithRateLimit(ctx, id)
	return character, err
}

func (c *Client) CharacterByIDWithRateLimit(ctx context.Context, id int) (*Character, int, error) {
	return c.character(ctx, characterByIDQuery, map[string]any{"id": id})
}

// CharacterBySearch returns the best match for search.
func (c *Client) CharacterBySearch(ctx context.Context, search string) (*Character, error) {
	character, _, err := c.CharacterBySearchWithRateLimit(ctx, search)
	return character, err
}

func (c *Client) CharacterBySearchWithRateLimit(ctx context.Context, search string) (*Character, int, error) {
	return c.character(ctx, characterBySearchQuery, map[string]any{"search": search})
}

func (c *Client) character(ctx context.Context, query string, variables map[string]any) (*Character, int, error) {
	character, remaining, err := lookup(ctx, c, query, variables, func(r *characterResponse) *Character { return r.Character })
	if err != nil || character == nil {
		return nil, remaining, err
	}

	if character.Media.size() < PageSize {
		return character, remaining, nil
	}

	rest, remaining, err := characterMedia.drain(ctx, c, character.ID, ContinuationStartPage, remaining)
	if err != nil {
		return nil, remaining, err
	}

	character.Media = characterMedia.merge(character.Media, rest)
	return character, remaining, nil
}

// StaffByID returns the staff member with the given id, with every character they voiced.
// If the staff member is not found, it returns nil.
func (c *Client) StaffByID(ctx context.Context, id int) (*Staff, error) {
	staff, _, err := c.StaffByIDWithRateLimit(ctx, id)
	return staff, err
}

func (c *Client) StaffByIDWithRateLimit(ctx context.Context, id int) (*Staff, int, error) {
	return c.staff(ctx, staffByIDQuery, map[string]any{"id": id})
}

// StaffBySearch returns the best match for search.
func (c *Client) StaffBySearch(ctx context.Context, search string) (*Staff, error) {
	staff, _, err := c.StaffBySearchWithRateLimit(ctx, search)
	return staff, err
}

func (c *Client) StaffBySearchWithRateLimit(ctx context.Context, search string) (*Staff, int, error) {
	return c.staff(ctx, staffBySearchQuery, map[string]any{"search": search})
}

func (c *Client) staff(ctx context.Context, query string, variables map[string]any) (*Staff, int, error) {
	staff, remaining, err := lookup(ctx, c, query, variables, func(r *staffResponse) *Staff { return r.Staff })
	if err != nil || staff == nil {
		return nil, remaining, err
	}

	if staff.Characters.size() < PageSize {
		return staff, remaining, nil
	}

	rest, remaining, err := staffCharacters.drain(ctx, c, staff.ID, ContinuationStartPage, remaining)
	if err != nil {
		return nil, remaining, err
	}

	staff.Characters = staffCharacters.merge(staff.Characters, rest)
	return staff, remaining, nil
}
