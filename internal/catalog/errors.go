package catalog

import (
	"errors"
	"fmt"
)

// Sentinel errors for catalog operations.
var (
	ErrUnexpectedStatus = errors.New("catalog: unexpected status")
	ErrDecode           = errors.New("catalog: malformed response")
)

// Error wraps an underlying error with the request that produced it.
type Error struct {
	Op    string // "search"
	Query string
	Page  int
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("catalog %s [%q page %d]: %v", e.Op, e.Query, e.Page, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func wrapError(op, query string, page int, err error) error {
	return &Error{
		Op:    op,
		Query: query,
		Page:  page,
		Err:   err,
	}
}
