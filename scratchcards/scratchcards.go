// Package scratchcards scores scratchcards and counts the copies they win.
package scratchcards

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/v2/sets/hashset"

	"github.com/liznear/advent-of-code-2023/utils"
)

type Card struct {
	ID      int
	Winning []int
	Have    []int
}

// Matches returns how many of the numbers we have are winning numbers.
func (c Card) Matches() int {
	winning := hashset.New(c.Winning...)
	n := 0
	for _, v := range c.Have {
		if winning.Contains(v) {
			n++
		}
	}
	return n
}

// Points is 1 for the first match, doubled for every further match.
func (c Card) Points() int {
	m := c.Matches()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

type ParseError struct {
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("scratchcards: line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// ParseCard parses a line like "Card 1: 41 48 83 | 83 86  6".
func ParseCard(line string) (Card, error) {
	head, rest, ok := strings.Cut(line, ":")
	if !ok {
		return Card{}, fmt.Errorf("missing %q", ":")
	}
	id, ok := strings.CutPrefix(head, "Card")
	if !ok {
		return Card{}, fmt.Errorf("want a line starting with %q", "Card")
	}
	winning, have, ok := strings.Cut(rest, "|")
	if !ok {
		return Card{}, fmt.Errorf("missing %q", "|")
	}

	var (
		c   Card
		err error
	)
	if c.ID, err = utils.ParseNumber[int](strings.TrimSpace(id)); err != nil {
		return Card{}, fmt.Errorf("fail to parse card id: %w", err)
	}
	if c.Winning, err = utils.Fields[int](winning); err != nil {
		return Card{}, fmt.Errorf("fail to parse winning numbers: %w", err)
	}
	if c.Have, err = utils.Fields[int](have); err != nil {
		return Card{}, fmt.Errorf("fail to parse numbers: %w", err)
	}
	return c, nil
}

// Parse parses one card per non-empty line.
func Parse(lines []string) ([]Card, error) {
	var ret []Card
	for i, line := range lines {
		if line == "" {
			continue
		}
		c, err := ParseCard(line)
		if err != nil {
			return nil, &ParseError{Line: i + 1, Text: line, Reason: err.Error()}
		}
		ret = append(ret, c)
	}
	return ret, nil
}

// Copies returns how many instances of each card we end up with. A card with m
// matches wins one copy of each of the next m cards, and every copy wins
// again. Copies never go past the last card.
func Copies(cards []Card) []int {
	ret := make([]int, len(cards))
	for i := range ret {
		ret[i] = 1
	}
	for i, c := range cards {
		for j := i + 1; j <= i+c.Matches() && j < len(cards); j++ {
			ret[j] += ret[i]
		}
	}
	return ret
}

// Solve returns the total points, then the total number of cards.
func Solve(cards []Card) (int, int) {
	var points []int
	for _, c := range cards {
		points = append(points, c.Points())
	}
	return utils.Sum(points...), utils.Sum(Copies(cards)...)
}
