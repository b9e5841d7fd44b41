package anilist

import "github.com/samber/lo"

// Name is the name of a person or character.
type Name struct {
	First  string `json:"first"`
	Last   string `json:"last"`
	Full   string `json:"full" jsonschema:"description=Full name."`
	Native string `json:"native" jsonschema:"description=Name in its native language. Usually in kanji."`
	// Alternative names, only populated for characters.
	Alternative []string `json:"alternative,omitempty"`
}

// Image holds the portrait of a character or staff member.
type Image struct {
	Large  string `json:"large"`
	Medium string `json:"medium"`
}

// Character is a fictional character appearing in one or more media entries.
type Character struct {
	ID              int    `json:"id" jsonschema:"description=ID of the character on Anilist."`
	Name            Name   `json:"name"`
	Image           Image  `json:"image"`
	DescriptionMd   string `json:"descriptionMd"`
	DescriptionHTML string `json:"descriptionHtml"`
	SiteURL         string `json:"siteUrl"`
	// Media is drained past the first page when the character appears in more than PageSize entries.
	Media      CharacterMediaConnection `json:"media" jsonschema:"description=Every media entry the character appears in."`
	Favourites int                      `json:"favourites"`
	ModNotes   string                   `json:"modNotes"`
}

// MediaIDs returns the ids of every media entry the character appears in.
func (c *Character) MediaIDs() []int {
	return c.Media.IDs()
}

// MediaOfType returns the ids of the anime or manga the character appears in.
func (c *Character) MediaOfType(mediaType MediaType) []int {
	return lo.FilterMap(c.Media.Nodes, func(n MediaNode, _ int) (int, bool) {
		return n.ID, n.Type == mediaType
	})
}

// MainRoles returns the ids of the media entries where the character has a main role.
func (c *Character) MainRoles() []int {
	return lo.FilterMap(c.Media.Edges, func(e CharacterMediaEdge, _ int) (int, bool) {
		return e.Node.ID, e.CharacterRole == CharacterRoleMain
	})
}

type characterResponse struct {
	Character *Character `json:"Character"`
}
