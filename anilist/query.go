// Package anilist provides a client for the Anilist GraphQL API.
package anilist

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// ConnectionKind names a paginated sub-connection that is drained past its first page.
type ConnectionKind int

const (
	// CharactersOfMedia is the characters connection of a media entry.
	CharactersOfMedia ConnectionKind = iota
	// MediaOfCharacter is the media connection of a character.
	MediaOfCharacter
	// CharactersOfStaff is the characters connection of a staff member.
	CharactersOfStaff
)

// ConnectionKinds lists every ConnectionKind.
var ConnectionKinds = []ConnectionKind{CharactersOfMedia, MediaOfCharacter, CharactersOfStaff}

func (k ConnectionKind) String() string {
	switch k {
	case CharactersOfMedia:
		return "characters-of-media"
	case MediaOfCharacter:
		return "media-of-character"
	case CharactersOfStaff:
		return "characters-of-staff"
	default:
		return fmt.Sprintf("ConnectionKind(%d)", int(k))
	}
}

// ParseConnectionKind is the inverse of ConnectionKind.String.
func ParseConnectionKind(name string) (ConnectionKind, error) {
	for _, kind := range ConnectionKinds {
		if kind.String() == name {
			return kind, nil
		}
	}

	return 0, fmt.Errorf("unknown connection kind %q", name)
}

// parent is the root query field of the entity owning the connection.
func (k ConnectionKind) parent() string {
	switch k {
	case CharactersOfMedia:
		return "Media"
	case MediaOfCharacter:
		return "Character"
	case CharactersOfStaff:
		return "Staff"
	default:
		panic(fmt.Sprintf("anilist: invalid connection kind %d", int(k)))
	}
}

// fragment returns the selection of one page of the connection.
func (k ConnectionKind) fragment(page int) string {
	switch k {
	case CharactersOfMedia:
		return fmt.Sprintf(`characters (page: %d, perPage: %d) {
	edges {
		node {
			id
		}
		role
		voiceActors {
			id
		}
	}
}`, page, PageSize)
	case MediaOfCharacter:
		return fmt.Sprintf(`media (page: %d, perPage: %d) {
	nodes {
		id
		type
	}
	edges {
		node {
			id
		}
		characterRole
	}
}`, page, PageSize)
	case CharactersOfStaff:
		return fmt.Sprintf(`characters (page: %d, perPage: %d) {
	edges {
		node {
			id
			name {
				first
				last
			}
			media {
				nodes {
					id
					type
				}
			}
		}
	}
}`, page, PageSize)
	default:
		panic(fmt.Sprintf("anilist: invalid connection kind %d", int(k)))
	}
}

// ConnectionQuery returns the query document fetching page of the given connection
// for the parent entity bound to the $id variable.
func ConnectionQuery(kind ConnectionKind, page int) string {
	return fmt.Sprintf("query ($id: Int) {\n%s (id: $id) {\n%s\n}\n}", kind.parent(), kind.fragment(page))
}

// ValidateQuery reports whether query is a syntactically valid GraphQL document.
func ValidateQuery(query string) error {
	if _, err := parser.ParseQuery(&ast.Source{Name: "query", Input: query}); err != nil {
		return fmt.Errorf("invalid graphql query: %w", err)
	}

	return nil
}

// mediaSubquery is the selection of a complete media entry. The characters connection
// is embedded at its first page.
var mediaSubquery = `{
id
idMal
title {
	romaji
	english
	native
}
type
format
status(version: 2)
descriptionMd: description(asHtml: false)
descriptionHtml: description(asHtml: true)
startDate {
	year
	month
	day
}
endDate {
	year
	month
	day
}
season
seasonYear
seasonInt
episodes
duration
chapters
volumes
countryOfOrigin
isLicensed
source(version: 2)
hashtag
trailer {
	id
	site
	thumbnail
}
updatedAt
coverImage {
	extraLarge
	large
	medium
	color
}
bannerImage
genres
synonyms
averageScore
meanScore
popularity
isLocked
trending
favourites
tags {
	id
	name
	description
	category
	rank
	isGeneralSpoiler
	isMediaSpoiler
	isAdult
}
relations {
	edges {
		node {
			id
			title {
				romaji
				english
				native
			}
			type
		}
		relationType
	}
}
` + CharactersOfMedia.fragment(1) + `
staff {
	edges {
		node {
			id
		}
		role
	}
}
studios {
	edges {
		node {
			id
		}
		isMain
	}
}
isAdult
nextAiringEpisode {
	id
	airingAt
	timeUntilAiring
	episode
	mediaId
}
airingSchedule {
	nodes {
		id
		airingAt
		timeUntilAiring
		episode
		mediaId
	}
}
trends {
	nodes {
		mediaId
		date
		trending
		averageScore
		popularity
		inProgress
		releasing
		episode
	}
}
externalLinks {
	id
	url
	site
}
streamingEpisodes {
	title
	thumbnail
	url
	site
}
rankings {
	id
	rank
	type
	format
	year
	season
	allTime
	context
}
reviews {
	nodes {
		id
	}
}
recommendations {
	nodes {
		id
	}
}
stats {
	scoreDistribution {
		score
		amount
	}
	statusDistribution {
		status
		amount
	}
}
siteUrl
autoCreateForumThread
isRecommendationBlocked
modNotes
}`

// seasonSubquery is the lighter selection used when listing a whole season.
var seasonSubquery = `{
id
idMal
title {
	romaji
	english
	native
}
type
format
status(version: 2)
season
seasonYear
episodes
duration
source(version: 2)
genres
averageScore
popularity
coverImage {
	extraLarge
	large
	medium
	color
}
siteUrl
}`

var pageInfoSubquery = `pageInfo {
	total
	currentPage
	lastPage
	hasNextPage
	perPage
}`

var characterSubquery = `{
id
name {
	first
	last
	full
	native
	alternative
}
image {
	large
	medium
}
descriptionMd: description(asHtml: false)
descriptionHtml: description(asHtml: true)
siteUrl
` + MediaOfCharacter.fragment(1) + `
favourites
modNotes
}`

var staffSubquery = `{
id
name {
	first
	last
	full
	native
}
language
descriptionMd: description(asHtml: false)
descriptionHtml: description(asHtml: true)
siteUrl
staffMedia {
	nodes {
		id
	}
}
` + CharactersOfStaff.fragment(1) + `
characterMedia {
	nodes {
		id
	}
}
image {
	large
	medium
}
favourites
modNotes
}`

var studioSubquery = `{
id
name
isAnimationStudio
media {
	nodes {
		id
	}
}
siteUrl
favourites
}`

var userSubquery = `{
id
name
aboutMd: about(asHtml: false)
aboutHtml: about(asHtml: true)
avatar {
	large
	medium
}
bannerImage
options {
	titleLanguage
	displayAdultContent
	airingNotifications
	profileColor
}
mediaListOptions {
	scoreFormat
	rowOrder
	animeList {
		sectionOrder
		splitCompletedSectionByFormat
		customLists
		advancedScoring
		advancedScoringEnabled
	}
	mangaList {
		sectionOrder
		splitCompletedSectionByFormat
		customLists
		advancedScoring
		advancedScoringEnabled
	}
}
unreadNotificationCount
siteUrl
donatorTier
donatorBadge
moderatorStatus
updatedAt
}`

var reviewSubquery = `{
id
userId
mediaId
mediaType
summary
bodyMd: body(asHtml: false)
bodyHtml: body(asHtml: true)
rating
ratingAmount
score
private
siteUrl
createdAt
updatedAt
}`

var recommendationSubquery = `{
id
rating
media {
	id
}
mediaRecommendation {
	id
}
user {
	id
}
}`

var airingScheduleSubquery = `{
id
airingAt
timeUntilAiring
episode
mediaId
}`

var (
	mediaByIDQuery           = "query ($id: Int) { Media (id: $id) " + mediaSubquery + " }"
	mediaByMalIDQuery        = "query ($idMal: Int) { Media (idMal: $idMal) " + mediaSubquery + " }"
	mediaByMalIDAndTypeQuery = "query ($idMal: Int, $type: MediaType) { Media (idMal: $idMal, type: $type) " + mediaSubquery + " }"
	mediaBySearchQuery       = "query ($search: String) { Media (search: $search) " + mediaSubquery + " }"
	mediaBySearchTypeQuery   = "query ($search: String, $type: MediaType) { Media (search: $search, type: $type) " + mediaSubquery + " }"

	mediaPageQuery = "query ($search: String, $page: Int, $perPage: Int) { Page (page: $page, perPage: $perPage) { " +
		pageInfoSubquery + " media (search: $search) " + mediaSubquery + " } }"
	mediaPageByTypeQuery = "query ($search: String, $type: MediaType, $page: Int, $perPage: Int) { Page (page: $page, perPage: $perPage) { " +
		pageInfoSubquery + " media (search: $search, type: $type) " + mediaSubquery + " } }"
	seasonQuery = "query ($page: Int, $season: MediaSeason, $seasonYear: Int) { Page (page: $page) { " +
		pageInfoSubquery + " media (season: $season, seasonYear: $seasonYear) " + seasonSubquery + " } }"

	characterByIDQuery     = "query ($id: Int) { Character (id: $id) " + characterSubquery + " }"
	characterBySearchQuery = "query ($search: String) { Character (search: $search) " + characterSubquery + " }"

	staffByIDQuery     = "query ($id: Int) { Staff (id: $id) " + staffSubquery + " }"
	staffBySearchQuery = "query ($search: String) { Staff (search: $search) " + staffSubquery + " }"

	studioByIDQuery     = "query ($id: Int) { Studio (id: $id) " + studioSubquery + " }"
	studioBySearchQuery = "query ($search: String) { Studio (search: $search) " + studioSubquery + " }"

	userByIDQuery   = "query ($id: Int) { User (id: $id) " + userSubquery + " }"
	userByNameQuery = "query ($name: String) { User (name: $name) " + userSubquery + " }"

	reviewByIDQuery         = "query ($id: Int) { Review (id: $id) " + reviewSubquery + " }"
	recommendationByIDQuery = "query ($id: Int) { Recommendation (id: $id) " + recommendationSubquery + " }"
	airingScheduleByIDQuery = "query ($id: Int) { AiringSchedule (id: $id) " + airingScheduleSubquery + " }"
)

// Queries returns every static query document by name.
func Queries() map[string]string {
	return map[string]string{
		"media-by-id":           mediaByIDQuery,
		"media-by-mal-id":       mediaByMalIDQuery,
		"media-by-mal-id-type":  mediaByMalIDAndTypeQuery,
		"media-by-search":       mediaBySearchQuery,
		"media-by-search-type":  mediaBySearchTypeQuery,
		"media-page":            mediaPageQuery,
		"media-page-by-type":    mediaPageByTypeQuery,
		"media-season":          seasonQuery,
		"character-by-id":       characterByIDQuery,
		"character-by-search":   characterBySearchQuery,
		"staff-by-id":           staffByIDQuery,
		"staff-by-search":       staffBySearchQuery,
		"studio-by-id":          studioByIDQuery,
		"studio-by-search":      studioBySearchQuery,
		"user-by-id":            userByIDQuery,
		"user-by-name":          userByNameQuery,
		"review-by-id":          reviewByIDQuery,
		"recommendation-by-id":  recommendationByIDQuery,
		"airing-schedule-by-id": airingScheduleByIDQuery,
	}
}
