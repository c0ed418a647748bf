// Package gears reads engine schematics: grids of numbers, symbols and dots.
package gears

import (
	"fmt"

	"github.com/emirpasic/gods/v2/maps/hashmap"
	"github.com/emirpasic/gods/v2/sets/hashset"

	"github.com/liznear/advent-of-code-2023/utils"
)

type Position struct {
	Row int
	Col int
}

// Number is a run of digits on a single row.
type Number struct {
	Start Position
	Len   int
	Value int
}

// Cells returns the positions covered by the number.
func (n Number) Cells() []Position {
	ret := make([]Position, 0, n.Len)
	for c := n.Start.Col; c < n.Start.Col+n.Len; c++ {
		ret = append(ret, Position{n.Start.Row, c})
	}
	return ret
}

// Neighbours returns the positions around the number, including diagonals.
// Positions outside the grid are included; they never hold a symbol.
func (n Number) Neighbours() []Position {
	var ret []Position
	for r := n.Start.Row - 1; r <= n.Start.Row+1; r++ {
		for c := n.Start.Col - 1; c <= n.Start.Col+n.Len; c++ {
			if r == n.Start.Row && c >= n.Start.Col && c < n.Start.Col+n.Len {
				continue
			}
			ret = append(ret, Position{r, c})
		}
	}
	return ret
}

// Symbol is any cell that is neither a digit nor a dot.
type Symbol struct {
	Pos  Position
	Char rune
}

type Schematic struct {
	Numbers []Number
	Symbols []Symbol
}

type ParseError struct {
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("gears: line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// Parse reads the grid. Every row must have the same width.
func Parse(lines []string) (*Schematic, error) {
	s := &Schematic{}
	width := -1
	for row, line := range lines {
		if line == "" {
			continue
		}
		if width < 0 {
			width = len(line)
		} else if len(line) != width {
			return nil, &ParseError{Line: row + 1, Text: line, Reason: fmt.Sprintf("got width %d, want %d", len(line), width)}
		}

		for col := 0; col < len(line); {
			c := line[col]
			switch {
			case c == '.':
				col++
			case c >= '0' && c <= '9':
				end := col
				for end < len(line) && line[end] >= '0' && line[end] <= '9' {
					end++
				}
				v, err := utils.ParseNumber[int](line[col:end])
				if err != nil {
					return nil, &ParseError{Line: row + 1, Text: line, Reason: err.Error()}
				}
				s.Numbers = append(s.Numbers, Number{Start: Position{row, col}, Len: end - col, Value: v})
				col = end
			default:
				s.Symbols = append(s.Symbols, Symbol{Pos: Position{row, col}, Char: rune(c)})
				col++
			}
		}
	}
	return s, nil
}

// PartNumbers returns the numbers adjacent to at least one symbol.
func (s *Schematic) PartNumbers() []int {
	symbols := hashset.New[Position]()
	for _, sym := range s.Symbols {
		symbols.Add(sym.Pos)
	}

	var ret []int
	for _, n := range s.Numbers {
		for _, p := range n.Neighbours() {
			if symbols.Contains(p) {
				ret = append(ret, n.Value)
				break
			}
		}
	}
	return ret
}

// GearRatios returns, for every '*' adjacent to exactly two numbers, the
// product of those numbers.
func (s *Schematic) GearRatios() []int {
	adjacent := hashmap.New[Position, []int]()
	for _, sym := range s.Symbols {
		if sym.Char == '*' {
			adjacent.Put(sym.Pos, nil)
		}
	}
	for _, n := range s.Numbers {
		for _, p := range n.Neighbours() {
			if nums, ok := adjacent.Get(p); ok {
				adjacent.Put(p, append(nums, n.Value))
			}
		}
	}

	var ret []int
	for _, nums := range adjacent.Values() {
		if len(nums) == 2 {
			ret = append(ret, nums[0]*nums[1])
		}
	}
	return ret
}

// Solve returns the sum of part numbers, then the sum of gear ratios.
func Solve(s *Schematic) (int, int) {
	return utils.Sum(s.PartNumbers()...), utils.Sum(s.GearRatios()...)
}
