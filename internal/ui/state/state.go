package state

import (
	"strings"

	"bookfinder/internal/domain"
)

// DefaultPageSize bounds how many results are shown per page
const DefaultPageSize = 10

// User-facing messages for the two failure branches of a fetch
const (
	NoResultsMessage   = "No books found. Try a different title."
	FetchFailedMessage = "Failed to fetch books. Please try again."
)

// Outcome is the derived result of the current fetch cycle
type Outcome int

const (
	OutcomeIdle Outcome = iota
	OutcomeLoading
	OutcomeSuccess
	OutcomeEmpty
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLoading:
		return "loading"
	case OutcomeSuccess:
		return "success"
	case OutcomeEmpty:
		return "empty"
	case OutcomeFailed:
		return "failed"
	default:
		return "idle"
	}
}

// SearchState contains all the search view state
type SearchState struct {
	Query    string
	Page     int // always >= 1
	NumFound int
	Loading  bool
	Error    string
	Results  []domain.BookSummary // at most PageSize entries

	PageSize int
	Cursor   int // index of the highlighted result
}

// NewSearchState creates an idle state. A pageSize below 1 uses DefaultPageSize.
func NewSearchState(pageSize int) *SearchState {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &SearchState{
		Page:     1,
		PageSize: pageSize,
	}
}

// Begin starts a fetch cycle for page. It returns false and leaves the state
// untouched when the query is blank.
func (s *SearchState) Begin(page int) bool {
	if strings.TrimSpace(s.Query) == "" {
		return false
	}
	if page < 1 {
		page = 1
	}

	s.Loading = true
	s.Error = ""
	s.Results = nil
	s.Cursor = 0
	s.Page = page
	return true
}

// Apply records a successful response
func (s *SearchState) Apply(numFound int, books []domain.BookSummary) {
	s.NumFound = numFound
	if len(books) == 0 {
		s.Error = NoResultsMessage
	} else {
		if len(books) > s.PageSize {
			books = books[:s.PageSize]
		}
		s.Results = books
		s.Cursor = 0
	}
	s.Loading = false
}

// Fail records a transport or decode failure
func (s *SearchState) Fail() {
	s.Error = FetchFailedMessage
	s.Loading = false
}

// CanPrev reports whether a previous page exists
func (s *SearchState) CanPrev() bool {
	return s.Page > 1
}

// CanNext reports whether numFound extends past the current page
func (s *SearchState) CanNext() bool {
	return s.Page*s.PageSize < s.NumFound
}

// ShowPagination reports whether the pagination row is rendered
func (s *SearchState) ShowPagination() bool {
	return len(s.Results) > 0
}

// Outcome derives the fetch outcome from the flat fields
func (s *SearchState) Outcome() Outcome {
	switch {
	case s.Loading:
		return OutcomeLoading
	case s.Error == FetchFailedMessage:
		return OutcomeFailed
	case s.Error == NoResultsMessage:
		return OutcomeEmpty
	case len(s.Results) > 0:
		return OutcomeSuccess
	default:
		return OutcomeIdle
	}
}

// MoveCursor moves the highlight by delta, clamped to the result list
func (s *SearchState) MoveCursor(delta int) {
	if len(s.Results) == 0 {
		s.Cursor = 0
		return
	}
	s.Cursor += delta
	if s.Cursor < 0 {
		s.Cursor = 0
	}
	if s.Cursor >= len(s.Results) {
		s.Cursor = len(s.Results) - 1
	}
}

// Selected returns the highlighted result
func (s *SearchState) Selected() (domain.BookSummary, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Results) {
		return domain.BookSummary{}, false
	}
	return s.Results[s.Cursor], true
}
