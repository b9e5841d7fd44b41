package anilist

import (
	"time"

	"github.com/samber/mo"
)

// MediaListTypeOptions are the list settings of a user for one media type.
type MediaListTypeOptions struct {
	SectionOrder                  []string `json:"sectionOrder"`
	SplitCompletedSectionByFormat bool     `json:"splitCompletedSectionByFormat"`
	CustomLists                   []string `json:"customLists"`
	AdvancedScoring               []string `json:"advancedScoring"`
	AdvancedScoringEnabled        bool     `json:"advancedScoringEnabled"`
}

// User is a public AniList profile.
type User struct {
	ID        int    `json:"id" jsonschema:"description=ID of the user on Anilist."`
	Name      string `json:"name"`
	AboutMd   string `json:"aboutMd"`
	AboutHTML string `json:"aboutHtml"`
	Avatar    struct {
		Large  string `json:"large"`
		Medium string `json:"medium"`
	} `json:"avatar"`
	BannerImage string `json:"bannerImage"`
	Options     struct {
		TitleLanguage       UserTitleLanguage `json:"titleLanguage"`
		DisplayAdultContent bool              `json:"displayAdultContent"`
		AiringNotifications bool              `json:"airingNotifications"`
		// ProfileColor is either a preset name (blue, purple, ...) or a hex code.
		ProfileColor string `json:"profileColor"`
	} `json:"options"`
	MediaListOptions struct {
		ScoreFormat ScoreFormat          `json:"scoreFormat"`
		RowOrder    string               `json:"rowOrder"`
		AnimeList   MediaListTypeOptions `json:"animeList"`
		MangaList   MediaListTypeOptions `json:"mangaList"`
	} `json:"mediaListOptions"`
	UnreadNotificationCount int    `json:"unreadNotificationCount"`
	SiteURL                 string `json:"siteUrl"`
	DonatorTier             int    `json:"donatorTier"`
	DonatorBadge            string `json:"donatorBadge"`
	ModeratorStatus         string `json:"moderatorStatus"`
	UpdatedAt               int    `json:"updatedAt"`
}

// TitleLanguage is the language the user wants media titles shown in.
func (u *User) TitleLanguage() UserTitleLanguage {
	return u.Options.TitleLanguage
}

func (u *User) ScoreFormat() ScoreFormat {
	return u.MediaListOptions.ScoreFormat
}

func (u *User) LastUpdated() mo.Option[time.Time] {
	return unixTime(u.UpdatedAt)
}

type userResponse struct {
	User *User `json:"User"`
}
