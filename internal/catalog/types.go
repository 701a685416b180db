// Package catalog provides a client for the Open Library search API.
package catalog

import "bookfinder/internal/domain"

// CoverSize selects one of the cover service renditions.
type CoverSize string

const (
	CoverSmall  CoverSize = "S"
	CoverMedium CoverSize = "M"
	CoverLarge  CoverSize = "L"
)

// SearchResponse is the raw search.json response.
type SearchResponse struct {
	NumFound int   `json:"numFound"`
	Docs     []Doc `json:"docs"`
}

// Doc is a single record from search.json.
type Doc struct {
	Key              string   `json:"key"`
	Title            string   `json:"title"`
	AuthorName       []string `json:"author_name,omitempty"`
	FirstPublishYear *int     `json:"first_publish_year,omitempty"`
	CoverI           *int     `json:"cover_i,omitempty"`
}

// Summary projects the record into a BookSummary.
func (d Doc) Summary() domain.BookSummary {
	var authors []string
	if len(d.AuthorName) > 0 {
		authors = append(authors, d.AuthorName...)
	}
	return domain.BookSummary{
		Key:              d.Key,
		Title:            d.Title,
		Authors:          authors,
		FirstPublishYear: d.FirstPublishYear,
		CoverID:          d.CoverI,
	}
}

// Summaries projects every doc in the response, in order.
func (r *SearchResponse) Summaries() []domain.BookSummary {
	books := make([]domain.BookSummary, 0, len(r.Docs))
	for i := range r.Docs {
		books = append(books, r.Docs[i].Summary())
	}
	return books
}
