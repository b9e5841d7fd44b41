package anilist

// Studio is an animation studio or a production company.
type Studio struct {
	ID                int          `json:"id" jsonschema:"description=ID of the studio on Anilist."`
	Name              string       `json:"name"`
	IsAnimationStudio bool         `json:"isAnimationStudio"`
	Media             IDConnection `json:"media"`
	SiteURL           string       `json:"siteUrl"`
	Favourites        int          `json:"favourites"`
}

func (s *Studio) MediaIDs() []int {
	return s.Media.IDs()
}

type studioResponse struct {
	Studio *Studio `json:"Studio"`
}
