package anilist

import (
	"time"

	"github.com/samber/mo"
)

// Review is a user written review of a media entry.
type Review struct {
	ID           int       `json:"id" jsonschema:"description=ID of the review on Anilist."`
	UserID       int       `json:"userId"`
	MediaID      int       `json:"mediaId"`
	MediaType    MediaType `json:"mediaType"`
	Summary      string    `json:"summary"`
	BodyMd       string    `json:"bodyMd"`
	BodyHTML     string    `json:"bodyHtml"`
	Rating       int       `json:"rating"`
	RatingAmount int       `json:"ratingAmount"`
	// Score is the reviewer's score for the media from 0 to 100.
	Score     int    `json:"score"`
	Private   bool   `json:"private"`
	SiteURL   string `json:"siteUrl"`
	CreatedAt int    `json:"createdAt"`
	UpdatedAt int    `json:"updatedAt"`
}

func (r *Review) Created() mo.Option[time.Time] {
	return unixTime(r.CreatedAt)
}

// Recommendation suggests one media entry to people who liked another.
type Recommendation struct {
	ID     int `json:"id" jsonschema:"description=ID of the recommendation on Anilist."`
	Rating int `json:"rating"`
	// Media is the entry the recommendation was made for.
	Media               *NodeRef `json:"media"`
	MediaRecommendation *NodeRef `json:"mediaRecommendation"`
	User                *NodeRef `json:"user"`
}

// MediaID returns the id of the media the recommendation was made for, zero when hidden.
func (r *Recommendation) MediaID() int {
	return refID(r.Media)
}

// RecommendedMediaID returns the id of the recommended media, zero when hidden.
func (r *Recommendation) RecommendedMediaID() int {
	return refID(r.MediaRecommendation)
}

func (r *Recommendation) UserID() int {
	return refID(r.User)
}

// AiringSchedule is a single upcoming or past episode of an airing anime.
type AiringSchedule struct {
	ID int `json:"id" jsonschema:"description=ID of the schedule entry on Anilist."`
	// AiringAt is the unix time the episode airs at.
	AiringAt int `json:"airingAt"`
	// TimeUntilAiring is in seconds and negative once aired.
	TimeUntilAiring int `json:"timeUntilAiring"`
	Episode         int `json:"episode"`
	MediaID         int `json:"mediaId"`
}

func (a *AiringSchedule) AirsAt() mo.Option[time.Time] {
	return unixTime(a.AiringAt)
}

func refID(ref *NodeRef) int {
	if ref == nil {
		return 0
	}

	return ref.ID
}

type reviewResponse struct {
	Review *Review `json:"Review"`
}

type recommendationResponse struct {
	Recommendation *Recommendation `json:"Recommendation"`
}

type airingScheduleResponse struct {
	AiringSchedule *AiringSchedule `json:"AiringSchedule"`
}
