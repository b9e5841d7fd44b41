package anilist

// PageInfo describes the position of a top-level Page within its result set.
type PageInfo struct {
	Total       int  `json:"total"`
	CurrentPage int  `json:"currentPage"`
	LastPage    int  `json:"lastPage"`
	HasNextPage bool `json:"hasNextPage"`
	PerPage     int  `json:"perPage"`
}

// Page is one page of a media search. Unlike entity connections it carries
// an explicit has-more flag and is never drained automatically.
type Page struct {
	PageInfo PageInfo `json:"pageInfo"`
	Media    []*Media `json:"media"`
}

type pageResponse struct {
	Page *Page `json:"Page"`
}
