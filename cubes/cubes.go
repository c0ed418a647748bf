// Package cubes checks games of colored cubes drawn from a bag.
package cubes

import (
	"fmt"
	"strings"

	"github.com/liznear/advent-of-code-2023/utils"
)

// Set is a handful of cubes.
type Set struct {
	Red   int
	Green int
	Blue  int
}

// Within reports whether every color of s fits into bag.
func (s Set) Within(bag Set) bool {
	return s.Red <= bag.Red && s.Green <= bag.Green && s.Blue <= bag.Blue
}

func (s Set) Power() int {
	return s.Red * s.Green * s.Blue
}

// Bag is the content the elf asks about.
var Bag = Set{Red: 12, Green: 13, Blue: 14}

type Game struct {
	ID    int
	Draws []Set
}

// Possible reports whether every draw of the game fits into bag.
func (g Game) Possible(bag Set) bool {
	for _, d := range g.Draws {
		if !d.Within(bag) {
			return false
		}
	}
	return true
}

// MinimumBag returns the fewest cubes of each color that make the game possible.
func (g Game) MinimumBag() Set {
	var ret Set
	for _, d := range g.Draws {
		ret.Red = max(ret.Red, d.Red)
		ret.Green = max(ret.Green, d.Green)
		ret.Blue = max(ret.Blue, d.Blue)
	}
	return ret
}

type ParseError struct {
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cubes: line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// ParseGame parses a line like "Game 1: 3 blue, 4 red; 1 red, 2 green".
func ParseGame(line string) (Game, error) {
	head, rest, ok := strings.Cut(line, ": ")
	if !ok {
		return Game{}, fmt.Errorf("missing %q", ": ")
	}
	id, ok := strings.CutPrefix(head, "Game ")
	if !ok {
		return Game{}, fmt.Errorf("want a line starting with %q", "Game ")
	}
	var (
		g   Game
		err error
	)
	if g.ID, err = utils.ParseNumber[int](id); err != nil {
		return Game{}, fmt.Errorf("fail to parse game id: %w", err)
	}
	for _, draw := range strings.Split(rest, "; ") {
		s, err := parseSet(draw)
		if err != nil {
			return Game{}, err
		}
		g.Draws = append(g.Draws, s)
	}
	return g, nil
}

func parseSet(draw string) (Set, error) {
	var s Set
	for _, cube := range strings.Split(draw, ", ") {
		n, color, ok := strings.Cut(strings.TrimSpace(cube), " ")
		if !ok {
			return Set{}, fmt.Errorf("want %q, got %q", "<count> <color>", cube)
		}
		count, err := utils.ParseNumber[int](n)
		if err != nil {
			return Set{}, fmt.Errorf("fail to parse cube count: %w", err)
		}
		switch color {
		case "red":
			s.Red += count
		case "green":
			s.Green += count
		case "blue":
			s.Blue += count
		default:
			return Set{}, fmt.Errorf("unknown color %q", color)
		}
	}
	return s, nil
}

// Parse parses one game per non-empty line.
func Parse(lines []string) ([]Game, error) {
	var ret []Game
	for i, line := range lines {
		if line == "" {
			continue
		}
		g, err := ParseGame(line)
		if err != nil {
			return nil, &ParseError{Line: i + 1, Text: line, Reason: err.Error()}
		}
		ret = append(ret, g)
	}
	return ret, nil
}

// Solve returns the sum of ids of the games possible with Bag, then the sum of
// the powers of every game's minimum bag.
func Solve(games []Game) (int, int) {
	var ids, powers []int
	for _, g := range games {
		if g.Possible(Bag) {
			ids = append(ids, g.ID)
		}
		powers = append(powers, g.MinimumBag().Power())
	}
	return utils.Sum(ids...), utils.Sum(powers...)
}
