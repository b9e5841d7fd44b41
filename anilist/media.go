package anilist

import (
	"time"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Title holds the titles of a media entry in its three languages.
type Title struct {
	// Romaji is the romanized title.
	Romaji string `json:"romaji" jsonschema:"description=Romanized title of the media."`
	// English is the english title. Often empty for less known entries.
	English string `json:"english" jsonschema:"description=English title of the media."`
	// Native is the title in its native language. (Usually in kanji)
	Native string `json:"native" jsonschema:"description=Native title of the media. Usually in kanji."`
}

// Preferred returns the title in the given language, falling back to english and then romaji.
func (t Title) Preferred(language UserTitleLanguage) string {
	var preferred string
	switch language {
	case TitleNative, TitleNativeStylised:
		preferred = t.Native
	case TitleRomaji, TitleRomajiStylised:
		preferred = t.Romaji
	default:
		preferred = t.English
	}

	return lo.Ternary(preferred != "", preferred, t.Name())
}

// Name returns the english title if there is one, otherwise the romaji title.
func (t Title) Name() string {
	if t.English == "" {
		return t.Romaji
	}

	return t.English
}

// Trailer is a promotional video hosted on an external site.
type Trailer struct {
	ID        string `json:"id"`
	Site      string `json:"site"`
	Thumbnail string `json:"thumbnail"`
}

// CoverImage contains URLs for the different sizes of a cover.
type CoverImage struct {
	// ExtraLarge is the url of the extra large cover image.
	// If the image is not available, large will be used instead.
	ExtraLarge string `json:"extraLarge" jsonschema:"description=URL of the extra large cover image."`
	Large      string `json:"large" jsonschema:"description=URL of the large cover image."`
	Medium     string `json:"medium" jsonschema:"description=URL of the medium cover image."`
	// Color is the average color of the cover image as a hex string.
	Color string `json:"color" jsonschema:"description=Average color of the cover image."`
}

// Best returns the largest available cover URL.
func (c CoverImage) Best() string {
	return lo.CoalesceOrEmpty(c.ExtraLarge, c.Large, c.Medium)
}

// Tag is a descriptive tag attached to a media entry.
type Tag struct {
	ID          int    `json:"id"`
	Name        string `json:"name" jsonschema:"description=Name of the tag."`
	Description string `json:"description" jsonschema:"description=Description of the tag."`
	Category    string `json:"category"`
	// Rank is how relevant the tag is to the media, from 1 to 100.
	Rank             int  `json:"rank" jsonschema:"description=Relevance of the tag to the media from 1 to 100."`
	IsGeneralSpoiler bool `json:"isGeneralSpoiler"`
	IsMediaSpoiler   bool `json:"isMediaSpoiler"`
	IsAdult          bool `json:"isAdult"`
}

type ExternalLink struct {
	ID   int    `json:"id"`
	URL  string `json:"url"`
	Site string `json:"site"`
}

type StreamingEpisode struct {
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
	URL       string `json:"url"`
	Site      string `json:"site"`
}

// Ranking is a position of a media entry in one of the AniList charts.
type Ranking struct {
	ID     int         `json:"id"`
	Rank   int         `json:"rank"`
	Type   string      `json:"type" jsonschema:"enum=RATED,enum=POPULAR"`
	Format MediaFormat `json:"format"`
	// Year is zero for all-time rankings.
	Year    int         `json:"year"`
	Season  MediaSeason `json:"season"`
	AllTime bool        `json:"allTime"`
	Context string      `json:"context"`
}

// Trend is a daily snapshot of the activity around a media entry.
type Trend struct {
	MediaID      int  `json:"mediaId"`
	Date         int  `json:"date"`
	Trending     int  `json:"trending"`
	AverageScore int  `json:"averageScore"`
	Popularity   int  `json:"popularity"`
	InProgress   int  `json:"inProgress"`
	Releasing    bool `json:"releasing"`
	Episode      int  `json:"episode"`
}

// Stats holds the score and list status distributions of a media entry.
type Stats struct {
	ScoreDistribution []struct {
		Score  int `json:"score"`
		Amount int `json:"amount"`
	} `json:"scoreDistribution"`
	StatusDistribution []struct {
		Status MediaListStatus `json:"status"`
		Amount int             `json:"amount"`
	} `json:"statusDistribution"`
}

// Media is an anime or manga entry.
type Media struct {
	// ID is the unique identifier of the media on Anilist.
	ID int `json:"id" jsonschema:"description=ID of the media on Anilist."`
	// IDMal is the id of the media on MyAnimeList. Zero when unknown.
	IDMal int       `json:"idMal" jsonschema:"description=ID of the media on MyAnimeList."`
	Title Title     `json:"title" jsonschema:"description=Titles of the media."`
	Type  MediaType `json:"type" jsonschema:"enum=ANIME,enum=MANGA"`
	// Format is the release format, e.g. TV or MOVIE.
	Format MediaFormat `json:"format"`
	Status MediaStatus `json:"status" jsonschema:"enum=FINISHED,enum=RELEASING,enum=NOT_YET_RELEASED,enum=CANCELLED,enum=HIATUS"`
	// DescriptionMd is the description in markdown.
	DescriptionMd string `json:"descriptionMd" jsonschema:"description=Description of the media in markdown."`
	// DescriptionHTML is the description in html.
	DescriptionHTML string    `json:"descriptionHtml" jsonschema:"description=Description of the media in html."`
	StartDate       FuzzyDate `json:"startDate" jsonschema:"description=Date the media started releasing."`
	EndDate         FuzzyDate `json:"endDate" jsonschema:"description=Date the media ended releasing."`
	Season          MediaSeason `json:"season"`
	SeasonYear      int         `json:"seasonYear"`
	// SeasonInt is the year's last two digits followed by the season number, e.g. 194 for fall 2019.
	SeasonInt int `json:"seasonInt"`
	// Episodes is the total episode count when complete. Anime only.
	Episodes int `json:"episodes" jsonschema:"description=Total number of episodes when complete."`
	// Duration is the length of an episode in minutes.
	Duration int `json:"duration"`
	// Chapters and Volumes are manga only.
	Chapters        int         `json:"chapters"`
	Volumes         int         `json:"volumes"`
	CountryOfOrigin string      `json:"countryOfOrigin" jsonschema:"description=ISO 3166-1 alpha-2 country of origin."`
	IsLicensed      bool        `json:"isLicensed"`
	Source          MediaSource `json:"source"`
	Hashtag         string      `json:"hashtag"`
	Trailer         *Trailer    `json:"trailer"`
	// UpdatedAt is a unix timestamp.
	UpdatedAt    int        `json:"updatedAt"`
	CoverImage   CoverImage `json:"coverImage" jsonschema:"description=Cover image of the media."`
	BannerImage  string     `json:"bannerImage" jsonschema:"description=Banner image of the media."`
	Genres       []string   `json:"genres" jsonschema:"description=Genres of the media."`
	Synonyms     []string   `json:"synonyms" jsonschema:"description=Alternative titles of the media."`
	AverageScore int        `json:"averageScore" jsonschema:"description=Weighted average score of the media from 0 to 100."`
	MeanScore    int        `json:"meanScore"`
	Popularity   int        `json:"popularity"`
	IsLocked     bool       `json:"isLocked"`
	Trending     int        `json:"trending"`
	Favourites   int        `json:"favourites"`
	Tags         []Tag      `json:"tags"`
	IsAdult      bool       `json:"isAdult"`

	Relations MediaRelationConnection `json:"relations"`
	// Characters is drained past the first page when the media has more than PageSize characters.
	Characters CharacterConnection `json:"characters" jsonschema:"description=Every character of the media."`
	Staff      StaffConnection     `json:"staff"`
	Studios    StudioConnection    `json:"studios"`

	NextAiringEpisode *AiringSchedule `json:"nextAiringEpisode"`
	AiringSchedule    struct {
		Nodes []AiringSchedule `json:"nodes"`
	} `json:"airingSchedule"`
	Trends struct {
		Nodes []Trend `json:"nodes"`
	} `json:"trends"`
	ExternalLinks     []ExternalLink     `json:"externalLinks" jsonschema:"description=External links related to the media."`
	StreamingEpisodes []StreamingEpisode `json:"streamingEpisodes"`
	Rankings          []Ranking          `json:"rankings"`
	Reviews           IDConnection       `json:"reviews"`
	Recommendations   IDConnection       `json:"recommendations"`
	Stats             Stats              `json:"stats"`

	SiteURL                 string `json:"siteUrl" jsonschema:"description=URL of the media on Anilist."`
	AutoCreateForumThread   bool   `json:"autoCreateForumThread"`
	IsRecommendationBlocked bool   `json:"isRecommendationBlocked"`
	ModNotes                string `json:"modNotes"`
}

// Name returns the english title if there is one, otherwise the romaji title.
func (m *Media) Name() string {
	return m.Title.Name()
}

func (m *Media) StartedAt() mo.Option[time.Time] {
	return m.StartDate.Time()
}

func (m *Media) EndedAt() mo.Option[time.Time] {
	return m.EndDate.Time()
}

// LastUpdated returns when the entry was last changed on AniList.
func (m *Media) LastUpdated() mo.Option[time.Time] {
	return unixTime(m.UpdatedAt)
}

// CharacterIDs returns the ids of every character in server order.
func (m *Media) CharacterIDs() []int {
	return m.Characters.IDs()
}

// CharactersWithRole returns the character edges with the given role.
func (m *Media) CharactersWithRole(role CharacterRole) []CharacterEdge {
	return lo.Filter(m.Characters.Edges, func(e CharacterEdge, _ int) bool {
		return e.Role == role
	})
}

// VoiceActorIDs returns the distinct staff ids voicing any character of the media.
func (m *Media) VoiceActorIDs() []int {
	actors := lo.FlatMap(m.Characters.Edges, func(e CharacterEdge, _ int) []int {
		return nodeIDs(e.VoiceActors)
	})

	return lo.Uniq(actors)
}

func (m *Media) RelationIDs() []int {
	return lo.Map(m.Relations.Edges, func(e MediaRelationEdge, _ int) int { return e.Node.ID })
}

// RelationsOfType returns the ids of related media linked by the given relation.
func (m *Media) RelationsOfType(relation MediaRelationType) []int {
	return lo.FilterMap(m.Relations.Edges, func(e MediaRelationEdge, _ int) (int, bool) {
		return e.Node.ID, e.RelationType == relation
	})
}

func (m *Media) StaffIDs() []int {
	return lo.Map(m.Staff.Edges, func(e StaffEdge, _ int) int { return e.Node.ID })
}

func (m *Media) StudioIDs() []int {
	return lo.Map(m.Studios.Edges, func(e StudioEdge, _ int) int { return e.Node.ID })
}

// MainStudioIDs returns the ids of the studios that produced the media, excluding partners.
func (m *Media) MainStudioIDs() []int {
	return lo.FilterMap(m.Studios.Edges, func(e StudioEdge, _ int) (int, bool) {
		return e.Node.ID, e.IsMain
	})
}

func (m *Media) AiringScheduleIDs() []int {
	return lo.Map(m.AiringSchedule.Nodes, func(a AiringSchedule, _ int) int { return a.ID })
}

func (m *Media) ReviewIDs() []int {
	return m.Reviews.IDs()
}

func (m *Media) RecommendationIDs() []int {
	return m.Recommendations.IDs()
}

// mediaResponse is the payload of a single media lookup.
type mediaResponse struct {
	Media *Media `json:"Media"`
}
