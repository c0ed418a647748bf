package model

import "fmt"

// Entry is one line of an almanac map: the source window [Source, Source+Length)
// is translated onto [Dest, Dest+Length).
type Entry struct {
	Dest   int64
	Source int64
	Length int64
}

func NewEntry(dest, source, length int64) Entry {
	return Entry{
		Dest:   dest,
		Source: source,
		Length: length,
	}
}

func (e Entry) SourceEnd() int64 {
	return e.Source + e.Length
}

func (e Entry) SourceWindow() Interval {
	return FromLength(e.Source, e.Length)
}

func (e Entry) DestWindow() Interval {
	return FromLength(e.Dest, e.Length)
}

// Offset is the signed shift applied to every value of the source window.
func (e Entry) Offset() int64 {
	return e.Dest - e.Source
}

// Translate maps x if it lies in the source window. The upper bound is exclusive.
func (e Entry) Translate(x int64) (int64, bool) {
	if x < e.Source || x >= e.SourceEnd() {
		return x, false
	}
	return x + e.Offset(), true
}

func (e Entry) String() string {
	return fmt.Sprintf("%d %d %d", e.Dest, e.Source, e.Length)
}
