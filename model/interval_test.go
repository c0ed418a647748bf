package model

import (
	"reflect"
	"testing"
)

func TestInterval_Fusion(t *testing.T) {
	tcs := []struct {
		name      string
		intervals []Interval
		expected  Interval
		found     bool
	}{
		{
			name:      "Empty",
			intervals: nil,
			found:     false,
		},
		{
			name:      "OnlyEmptyIntervals",
			intervals: []Interval{NewInterval(3, 3)},
			found:     false,
		},
		{
			name: "OneInterval",
			intervals: []Interval{
				NewInterval(1, 2),
			},
			expected: NewInterval(1, 2),
			found:    true,
		},
		{
			name: "HaveOverlap",
			intervals: []Interval{
				NewInterval(1, 3),
				NewInterval(2, 4),
			},
			expected: NewInterval(1, 4),
			found:    true,
		},
		{
			name: "NoOverlap",
			intervals: []Interval{
				NewInterval(1, 3),
				NewInterval(5, 7),
			},
			expected: NewInterval(1, 7),
			found:    true,
		},
		{
			name: "ManyIntervals",
			intervals: []Interval{
				NewInterval(10, 16),
				NewInterval(18, 21),
				NewInterval(0, 99),
			},
			expected: NewInterval(0, 99),
			found:    true,
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got, found := Fusion(tc.intervals)
			if found != tc.found {
				t.Fatalf("Got found %v, want %v", found, tc.found)
			}
			if !found {
				return
			}
			if got != tc.expected {
				t.Errorf("Got %s, want %s", got, tc.expected)
			}
		})
	}
}

func TestInterval_HasOverlap(t *testing.T) {
	tcs := []struct {
		name string
		i1   Interval
		i2   Interval
		want bool
	}{
		{
			name: "HaveOverlap",
			i1:   NewInterval(0, 4),
			i2:   NewInterval(2, 3),
			want: true,
		},
		{
			name: "NoOverlap",
			i1:   NewInterval(0, 1),
			i2:   NewInterval(2, 3),
			want: false,
		},
		{
			name: "Touching",
			i1:   NewInterval(0, 2),
			i2:   NewInterval(2, 3),
			want: false,
		},
		{
			name: "EmptyInside",
			i1:   NewInterval(0, 10),
			i2:   NewInterval(5, 5),
			want: false,
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasOverlap(tc.i1, tc.i2); got != tc.want {
				t.Errorf("Got %v, want %v", got, tc.want)
			}
			if got := HasOverlap(tc.i2, tc.i1); got != tc.want {
				t.Errorf("Got %v for swapped arguments, want %v", got, tc.want)
			}
		})
	}
}

func TestInterval_Bounds(t *testing.T) {
	i := FromLength(79, 14)
	if i != NewInterval(79, 93) {
		t.Fatalf("Got %s, want [79, 93)", i)
	}
	if i.Len() != 14 {
		t.Errorf("Got len %d, want 14", i.Len())
	}
	if !i.Contains(79) || !i.Contains(92) {
		t.Errorf("%s should contain 79 and 92", i)
	}
	if i.Contains(93) || i.Contains(78) {
		t.Errorf("%s should not contain 78 or 93", i)
	}
	if got := i.Shift(-79); got != NewInterval(0, 14) {
		t.Errorf("Got %s, want [0, 14)", got)
	}
	if got := i.Intersect(NewInterval(90, 100)); got != NewInterval(90, 93) {
		t.Errorf("Got %s, want [90, 93)", got)
	}
	if got := i.Intersect(NewInterval(0, 10)); !got.Empty() || got.Len() != 0 {
		t.Errorf("Got %s, want an empty interval", got)
	}
}

func TestInterval_Merge(t *testing.T) {
	tcs := []struct {
		name      string
		intervals []Interval
		want      []Interval
	}{
		{
			name:      "Empty",
			intervals: nil,
			want:      nil,
		},
		{
			name:      "Disjoint",
			intervals: []Interval{NewInterval(79, 93), NewInterval(55, 68)},
			want:      []Interval{NewInterval(55, 68), NewInterval(79, 93)},
		},
		{
			name:      "Touching",
			intervals: []Interval{NewInterval(5, 10), NewInterval(0, 5)},
			want:      []Interval{NewInterval(0, 10)},
		},
		{
			name:      "Overlapping",
			intervals: []Interval{NewInterval(0, 10), NewInterval(3, 4), NewInterval(8, 12), NewInterval(20, 21)},
			want:      []Interval{NewInterval(0, 12), NewInterval(20, 21)},
		},
		{
			name:      "Duplicated",
			intervals: []Interval{NewInterval(1, 2), NewInterval(1, 2)},
			want:      []Interval{NewInterval(1, 2)},
		},
		{
			name:      "DropEmpty",
			intervals: []Interval{NewInterval(4, 4), NewInterval(1, 2)},
			want:      []Interval{NewInterval(1, 2)},
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := Merge(tc.intervals)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Got %v, want %v", got, tc.want)
			}
			if again := Merge(got); !reflect.DeepEqual(again, got) {
				t.Errorf("Merge is not idempotent: got %v after %v", again, got)
			}
		})
	}
}

func TestInterval_MergeKeepsInput(t *testing.T) {
	in := []Interval{NewInterval(10, 20), NewInterval(0, 15)}
	_ = Merge(in)
	if in[0] != NewInterval(10, 20) || in[1] != NewInterval(0, 15) {
		t.Errorf("Merge modified its input: %v", in)
	}
}
