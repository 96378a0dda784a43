package api

import (
	"net/http"
	"strconv"

	"github.com/vportnov/airport-api/internal/store"
)

// PageResponse is the envelope every list endpoint returns. Next and
// Previous are URLs for the adjacent pages, preserving the request's other
// query parameters, or null at the edges.
type PageResponse struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  any     `json:"results"`
}

// NewPageResponse builds the pagination envelope for one page of results.
// Count is the total number of matches across all pages.
func NewPageResponse(r *http.Request, count int, params store.ListParams, results any) PageResponse {
	params = params.Normalize()

	var next, previous *string
	if params.Page*params.PageSize < count {
		next = pageURL(r, params.Page+1)
	}
	if params.Page > 1 {
		previous = pageURL(r, params.Page-1)
	}

	return PageResponse{
		Count:    count,
		Next:     next,
		Previous: previous,
		Results:  results,
	}
}

// pageURL rebuilds the request URL pointing at the given page, keeping all
// other query parameters intact.
func pageURL(r *http.Request, page int) *string {
	u := *r.URL
	query := u.Query()
	query.Set("page", strconv.Itoa(page))
	u.RawQuery = query.Encode()
	s := u.String()
	return &s
}
