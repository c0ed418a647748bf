package gears

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []string{
	"467..114..",
	"...*......",
	"..35..633.",
	"......#...",
	"617*......",
	".....+.58.",
	"..592.....",
	"......755.",
	"...$.*....",
	".664.598..",
}

func TestParse(t *testing.T) {
	s, err := Parse(sample)
	require.NoError(t, err)
	assert.Len(t, s.Numbers, 10)
	assert.Len(t, s.Symbols, 6)
	assert.Equal(t, Number{Start: Position{0, 5}, Len: 3, Value: 114}, s.Numbers[1])
	assert.Equal(t, Symbol{Pos: Position{3, 6}, Char: '#'}, s.Symbols[1])
}

func TestNumber_Neighbours(t *testing.T) {
	n := Number{Start: Position{0, 0}, Len: 3, Value: 467}
	got := n.Neighbours()
	assert.Len(t, got, 12)
	for _, c := range n.Cells() {
		assert.NotContains(t, got, c)
	}
	assert.Contains(t, got, Position{1, 3})
	assert.Contains(t, got, Position{-1, -1})
}

func TestSchematic(t *testing.T) {
	s, err := Parse(sample)
	require.NoError(t, err)

	parts := s.PartNumbers()
	sort.Ints(parts)
	assert.Equal(t, []int{35, 467, 592, 598, 617, 633, 664, 755}, parts)

	ratios := s.GearRatios()
	sort.Ints(ratios)
	assert.Equal(t, []int{16345, 451490}, ratios)

	part1, part2 := Solve(s)
	assert.Equal(t, 4361, part1)
	assert.Equal(t, 467835, part2)
}

func TestParse_Ragged(t *testing.T) {
	_, err := Parse([]string{"467..", "...*..."})
	perr := &ParseError{}
	require.True(t, errors.As(err, &perr), "got %v", err)
	assert.Equal(t, 2, perr.Line)
}
