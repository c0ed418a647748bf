package almanac

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/liznear/advent-of-code-2023/model"
	"github.com/liznear/advent-of-code-2023/utils"
)

// Parse reads an almanac:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
//	soil-to-fertilizer map:
//	...
//
// The seven maps must appear in order from seed-to-soil to humidity-to-location
// and be separated by exactly one blank line. A map may have no entries.
func Parse(r io.Reader, opts ...Option) (*Almanac, error) {
	lines, err := utils.ReadLines(r)
	if err != nil {
		return nil, fmt.Errorf("almanac: fail to read input: %w", err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	p := &parser{lines: lines}
	seeds, err := p.seeds()
	if err != nil {
		return nil, err
	}
	stages, err := p.stages()
	if err != nil {
		return nil, err
	}
	return New(seeds, stages, opts...)
}

var headerRe = regexp.MustCompile(`^([a-z]+)-to-([a-z]+) map:$`)

// parser walks the input lines. pos is the index of the next line to read, so
// after next() it is also the 1-based number of the line just read.
type parser struct {
	lines []string
	pos   int
}

func (p *parser) more() bool {
	return p.pos < len(p.lines)
}

func (p *parser) next() string {
	line := p.lines[p.pos]
	p.pos++
	return line
}

func (p *parser) peek() string {
	return p.lines[p.pos]
}

func (p *parser) errorf(text string, format string, args ...any) error {
	return &ParseError{
		Line:   p.pos,
		Text:   text,
		Reason: fmt.Sprintf(format, args...),
	}
}

func (p *parser) seeds() ([]int64, error) {
	if !p.more() {
		return nil, &ParseError{Line: 1, Reason: "missing seeds line"}
	}
	line := p.next()
	rest, ok := strings.CutPrefix(line, "seeds:")
	if !ok {
		return nil, p.errorf(line, "want a line starting with %q", "seeds:")
	}
	seeds, err := utils.Fields[int64](rest)
	if err != nil {
		return nil, p.errorf(line, "fail to parse seeds: %v", err)
	}
	if len(seeds) == 0 {
		return nil, p.errorf(line, "no seeds")
	}
	return seeds, nil
}

func (p *parser) stages() ([]*Stage, error) {
	var stages []*Stage
	for p.more() {
		if line := p.next(); line != "" {
			return nil, p.errorf(line, "want a blank line before the next map")
		}
		// Trailing blank lines are trimmed, so there is always a line after a blank one.
		header := p.next()
		if header == "" {
			return nil, p.errorf(header, "unexpected blank line")
		}
		if len(stages) == StageCount {
			return nil, &ShapeError{Reason: fmt.Sprintf("line %d: unexpected content after %d maps", p.pos, StageCount)}
		}
		s, err := p.stage(header, len(stages))
		if err != nil {
			return nil, err
		}
		stages = append(stages, s)
	}
	if len(stages) != StageCount {
		return nil, &ShapeError{Reason: fmt.Sprintf("got %d maps, want %d", len(stages), StageCount)}
	}
	return stages, nil
}

// stage parses the block starting with the given header line. idx is the
// position of the block in the almanac.
func (p *parser) stage(header string, idx int) (*Stage, error) {
	m := headerRe.FindStringSubmatch(header)
	if m == nil {
		return nil, p.errorf(header, "want a map header like %q", "seed-to-soil map:")
	}
	from, ok := model.ParseItem(m[1])
	if !ok {
		return nil, p.errorf(header, "unknown item %q", m[1])
	}
	to, ok := model.ParseItem(m[2])
	if !ok {
		return nil, p.errorf(header, "unknown item %q", m[2])
	}
	if from != chain[idx] || to != chain[idx+1] {
		return nil, &ShapeError{Reason: fmt.Sprintf("line %d: got %s-to-%s map, want %s-to-%s", p.pos, from, to, chain[idx], chain[idx+1])}
	}

	var entries []model.Entry
	for p.more() && p.peek() != "" {
		line := p.next()
		nums, err := utils.Fields[int64](line)
		if err != nil {
			return nil, p.errorf(line, "fail to parse entry: %v", err)
		}
		if len(nums) != 3 {
			return nil, p.errorf(line, "got %d numbers, want 3", len(nums))
		}
		entries = append(entries, model.NewEntry(nums[0], nums[1], nums[2]))
	}
	return NewStage(from, to, entries)
}
