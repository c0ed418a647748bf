package model

import (
	"cmp"
	"fmt"

	"github.com/emirpasic/gods/v2/sets/treeset"
)

// Interval is a half-open range [Lo, Hi) of non-negative integers.
//
// An Interval with Lo >= Hi is empty. Empty intervals are never produced by the
// pipeline and are dropped by Merge.
type Interval struct {
	Lo int64
	Hi int64
}

func NewInterval(lo, hi int64) Interval {
	return Interval{lo, hi}
}

// FromLength returns [start, start+length).
func FromLength(start, length int64) Interval {
	return Interval{start, start + length}
}

func (i Interval) Len() int64 {
	if i.Empty() {
		return 0
	}
	return i.Hi - i.Lo
}

func (i Interval) Empty() bool {
	return i.Lo >= i.Hi
}

func (i Interval) Contains(x int64) bool {
	return i.Lo <= x && x < i.Hi
}

// Shift moves both bounds by d. d may be negative.
func (i Interval) Shift(d int64) Interval {
	return Interval{i.Lo + d, i.Hi + d}
}

// Intersect returns the common part of i and o, which may be empty.
func (i Interval) Intersect(o Interval) Interval {
	return Interval{max(i.Lo, o.Lo), min(i.Hi, o.Hi)}
}

func (i Interval) String() string {
	return fmt.Sprintf("[%d, %d)", i.Lo, i.Hi)
}

// HasOverlap reports whether two intervals share at least one point.
func HasOverlap(i1, i2 Interval) bool {
	noOverlap := i1.Hi <= i2.Lo || i2.Hi <= i1.Lo
	return !noOverlap && !i1.Empty() && !i2.Empty()
}

// Compare orders intervals by lower bound, then by upper bound.
func Compare(i1, i2 Interval) int {
	if c := cmp.Compare(i1.Lo, i2.Lo); c != 0 {
		return c
	}
	return cmp.Compare(i1.Hi, i2.Hi)
}

// Fusion returns the smallest interval covering all given intervals. The second
// return value is false if there is nothing to cover.
func Fusion(intervals []Interval) (Interval, bool) {
	var (
		ret   Interval
		found bool
	)
	for _, i := range intervals {
		if i.Empty() {
			continue
		}
		if !found {
			ret, found = i, true
			continue
		}
		ret.Lo = min(i.Lo, ret.Lo)
		ret.Hi = max(i.Hi, ret.Hi)
	}
	return ret, found
}

// Merge sorts the intervals by lower bound and coalesces every pair that overlaps
// or touches, i.e. next.Lo <= acc.Hi. The input is not modified.
func Merge(intervals []Interval) []Interval {
	sorted := treeset.NewWith[Interval](Compare)
	for _, i := range intervals {
		if !i.Empty() {
			sorted.Add(i)
		}
	}

	var ret []Interval
	iter := sorted.Iterator()
	for iter.Next() {
		next := iter.Value()
		if n := len(ret); n > 0 && next.Lo <= ret[n-1].Hi {
			ret[n-1].Hi = max(ret[n-1].Hi, next.Hi)
			continue
		}
		ret = append(ret, next)
	}
	return ret
}

// TotalLen returns the sum of the lengths of the intervals.
func TotalLen(intervals []Interval) int64 {
	var n int64
	for _, i := range intervals {
		n += i.Len()
	}
	return n
}
