package domain

import (
	"strconv"
	"strings"
)

// BookSummary is a read-only projection of one catalog record
type BookSummary struct {
	Key              string   // opaque catalog key, e.g. "/works/OL45883W"
	Title            string
	Authors          []string // may be empty
	FirstPublishYear *int     // nil when the catalog has no year
	CoverID          *int     // nil when the record has no cover
}

// AuthorLine returns the authors joined for display, or "Unknown"
func (b BookSummary) AuthorLine() string {
	if len(b.Authors) == 0 {
		return "Unknown"
	}
	return strings.Join(b.Authors, ", ")
}

// YearLine returns the first publish year for display, or "N/A"
func (b BookSummary) YearLine() string {
	if b.FirstPublishYear == nil || *b.FirstPublishYear == 0 {
		return "N/A"
	}
	return strconv.Itoa(*b.FirstPublishYear)
}

// HasCover reports whether the record carries a cover id
func (b BookSummary) HasCover() bool {
	return b.CoverID != nil && *b.CoverID != 0
}
