package anilist

import (
	"time"

	"github.com/samber/mo"
)

// FuzzyDate is a calendar date where any part may be unknown (zero).
type FuzzyDate struct {
	Year  int `json:"year" jsonschema:"description=Year of the date. Zero when unknown."`
	Month int `json:"month" jsonschema:"description=Month of the date from 1 to 12. Zero when unknown."`
	Day   int `json:"day" jsonschema:"description=Day of the month. Zero when unknown."`
}

// Time returns the date as a UTC time when all of its parts are known.
func (d FuzzyDate) Time() mo.Option[time.Time] {
	if d.Year == 0 || d.Month == 0 || d.Day == 0 {
		return mo.None[time.Time]()
	}

	return mo.Some(time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC))
}

// IsZero reports whether no part of the date is known.
func (d FuzzyDate) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// unixTime converts the unix seconds used across the API into a time, None for zero.
func unixTime(seconds int) mo.Option[time.Time] {
	if seconds == 0 {
		return mo.None[time.Time]()
	}

	return mo.Some(time.Unix(int64(seconds), 0).UTC())
}
