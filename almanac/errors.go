package almanac

import (
	"fmt"

	"github.com/liznear/advent-of-code-2023/model"
)

// ParseError means the input does not follow the almanac grammar.
type ParseError struct {
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("almanac: line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// ShapeError means the almanac is well formed line by line, but does not have
// the expected structure: wrong number or order of maps, or an odd seed count
// when seeds are read as ranges.
type ShapeError struct {
	Reason string
}

func (e *ShapeError) Error() string {
	return "almanac: " + e.Reason
}

// EntryInvariantError means a stage has a zero-length entry or two entries with
// overlapping source windows.
type EntryInvariantError struct {
	Stage  string
	Entry  model.Entry
	Reason string
}

func (e *EntryInvariantError) Error() string {
	return fmt.Sprintf("almanac: %s: entry %q: %s", e.Stage, e.Entry, e.Reason)
}
