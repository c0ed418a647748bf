package almanac

import (
	"fmt"
	"math"
	"sort"

	"github.com/emirpasic/gods/v2/maps/treemap"
	"go.uber.org/multierr"

	"github.com/liznear/advent-of-code-2023/model"
)

// Stage is one "<from>-to-<to> map" of the almanac. It is a total function on
// non-negative integers: values inside an entry's source window are shifted by
// the entry's offset, every other value maps to itself.
//
// A Stage is immutable once built.
type Stage struct {
	From model.Item
	To   model.Item

	// entries are keyed by source start. Source windows never overlap, so the
	// floor entry of x is the only one that may contain x. put relies on its
	// Floor and Ceiling to reject overlapping windows as entries arrive in any
	// order, and Apply uses Floor for point lookups.
	entries *treemap.Map[int64, model.Entry]

	// sorted holds the same entries ordered by source start, for range walks.
	sorted []model.Entry
}

// NewStage validates the entries and builds a Stage.
//
// Every zero-length entry, every entry whose windows would end past
// math.MaxInt64 and every entry whose source window overlaps an already
// accepted one is reported as an *EntryInvariantError. All of them are
// returned together; use multierr.Errors to get them one by one.
func NewStage(from, to model.Item, entries []model.Entry) (*Stage, error) {
	s := &Stage{
		From:    from,
		To:      to,
		entries: treemap.New[int64, model.Entry](),
	}

	var errs error
	for _, e := range entries {
		if err := s.put(e); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	if errs != nil {
		return nil, errs
	}
	s.sorted = s.entries.Values()
	return s, nil
}

func (s *Stage) put(e model.Entry) error {
	invariantErr := func(reason string) error {
		return &EntryInvariantError{Stage: s.Name(), Entry: e, Reason: reason}
	}

	if e.Length < 1 {
		return invariantErr("length must be at least 1")
	}
	if e.Source < 0 || e.Dest < 0 {
		return invariantErr("windows must start at a non-negative value")
	}
	if e.Source > math.MaxInt64-e.Length || e.Dest > math.MaxInt64-e.Length {
		return invariantErr("window end overflows int64")
	}
	if _, prev, ok := s.entries.Floor(e.Source); ok && prev.SourceEnd() > e.Source {
		return invariantErr(fmt.Sprintf("source window overlaps entry %q", prev))
	}
	if _, next, ok := s.entries.Ceiling(e.Source); ok && e.SourceEnd() > next.Source {
		return invariantErr(fmt.Sprintf("source window overlaps entry %q", next))
	}
	s.entries.Put(e.Source, e)
	return nil
}

// Name returns the map name as written in the almanac, e.g. "seed-to-soil".
func (s *Stage) Name() string {
	return s.From.String() + "-to-" + s.To.String()
}

func (s *Stage) String() string {
	return s.Name()
}

// Entries returns a copy of the entries, sorted by source start.
func (s *Stage) Entries() []model.Entry {
	ret := make([]model.Entry, len(s.sorted))
	copy(ret, s.sorted)
	return ret
}

// Apply maps a single value through the stage.
func (s *Stage) Apply(x int64) int64 {
	_, e, ok := s.entries.Floor(x)
	if !ok {
		return x
	}
	y, _ := e.Translate(x)
	return y
}

// ApplyInterval maps every value of in through the stage and returns the image
// as a list of disjoint intervals.
//
// It walks in from left to right with a cursor. Parts of in that fall between
// source windows are emitted unchanged; parts that fall inside a window are
// emitted shifted by that window's offset. The outputs partition in on the
// source side, so their total length equals in.Len().
func (s *Stage) ApplyInterval(in model.Interval) []model.Interval {
	if in.Empty() {
		return nil
	}

	var ret []model.Interval
	c := in.Lo

	// Skip every entry whose window ends at or before the start of in.
	i := sort.Search(len(s.sorted), func(i int) bool {
		return s.sorted[i].SourceEnd() > in.Lo
	})
	for ; i < len(s.sorted) && c < in.Hi; i++ {
		e := s.sorted[i]
		if e.Source >= in.Hi {
			break
		}
		if c < e.Source {
			ret = append(ret, model.NewInterval(c, e.Source))
			c = e.Source
		}
		overlap := model.NewInterval(c, in.Hi).Intersect(e.SourceWindow())
		ret = append(ret, overlap.Shift(e.Offset()))
		c = overlap.Hi
	}
	if c < in.Hi {
		ret = append(ret, model.NewInterval(c, in.Hi))
	}
	return ret
}
