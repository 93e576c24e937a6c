package loader

import (
	"errors"
	"fmt"
)

// FetchError means the source could not be retrieved.
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("error loading file %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError means the retrieved text is not usable delimited data.
type ParseError struct {
	Source string
	Line   int // 0 when the failure is not tied to a line
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("error parsing CSV %s (line %d): %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("error parsing CSV %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var (
	// ErrNoHeader is returned for input without a header row.
	ErrNoHeader = errors.New("no header row")
	// ErrMissingColumn is returned when a required column is absent.
	ErrMissingColumn = errors.New("missing required column")
)

// IsFetchFailure reports whether err came from retrieving the source.
func IsFetchFailure(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}

// IsParseFailure reports whether err came from parsing the source.
func IsParseFailure(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
