package anilist

import "github.com/samber/lo"

// Staff is a voice actor or production staff member.
type Staff struct {
	ID              int           `json:"id" jsonschema:"description=ID of the staff member on Anilist."`
	Name            Name          `json:"name"`
	Language        StaffLanguage `json:"language"`
	DescriptionMd   string        `json:"descriptionMd"`
	DescriptionHTML string        `json:"descriptionHtml"`
	SiteURL         string        `json:"siteUrl"`
	// StaffMedia are the media entries the staff member worked on.
	StaffMedia IDConnection `json:"staffMedia"`
	// Characters is drained past the first page when the staff member voiced more than PageSize characters.
	Characters StaffCharacterConnection `json:"characters" jsonschema:"description=Every character voiced by the staff member."`
	// CharacterMedia are the media entries of the voiced characters.
	CharacterMedia IDConnection `json:"characterMedia"`
	Image          Image        `json:"image"`
	Favourites     int          `json:"favourites"`
	ModNotes       string       `json:"modNotes"`
}

func (s *Staff) StaffMediaIDs() []int {
	return s.StaffMedia.IDs()
}

// CharacterIDs returns the ids of every character the staff member voiced, in server order.
func (s *Staff) CharacterIDs() []int {
	return s.Characters.IDs()
}

func (s *Staff) CharacterMediaIDs() []int {
	return s.CharacterMedia.IDs()
}

// MediaOfCharacters returns the distinct media ids the voiced characters appear in.
// Unlike CharacterMediaIDs it covers every drained character, not only the first page.
func (s *Staff) MediaOfCharacters() []int {
	return lo.Uniq(lo.FlatMap(s.Characters.Edges, func(e StaffCharacterEdge, _ int) []int {
		return e.Node.Media.IDs()
	}))
}

type staffResponse struct {
	Staff *Staff `json:"Staff"`
}
