package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"

	"github.com/liznear/advent-of-code-2023/almanac"
	"github.com/liznear/advent-of-code-2023/cubes"
	"github.com/liznear/advent-of-code-2023/gears"
	"github.com/liznear/advent-of-code-2023/scratchcards"
	"github.com/liznear/advent-of-code-2023/trebuchet"
	"github.com/liznear/advent-of-code-2023/utils"
)

var solvers = map[int]solver{
	1: byLines(solveTrebuchet),
	2: byLines(solveCubes),
	3: byLines(solveGears),
	4: byLines(solveScratchcards),
	5: solveAlmanac,
}

// byLines turns a solver working on the lines of the input into a solver.
func byLines(f func(lines []string, opts *options) (int64, int64, error)) solver {
	return func(path string, opts *options) (int64, int64, error) {
		lines, err := utils.ReadFileLines(path)
		if err != nil {
			return 0, 0, err
		}
		return f(lines, opts)
	}
}

func solveTrebuchet(lines []string, _ *options) (int64, int64, error) {
	part1, part2 := trebuchet.Solve(lines)
	return int64(part1), int64(part2), nil
}

func solveCubes(lines []string, opts *options) (int64, int64, error) {
	games, err := cubes.Parse(lines)
	if err != nil {
		return 0, 0, err
	}
	opts.log.Debug("Parsed games", zap.Int("games", len(games)))
	part1, part2 := cubes.Solve(games)
	return int64(part1), int64(part2), nil
}

func solveGears(lines []string, opts *options) (int64, int64, error) {
	s, err := gears.Parse(lines)
	if err != nil {
		return 0, 0, err
	}
	opts.log.Debug("Parsed schematic", zap.Int("numbers", len(s.Numbers)), zap.Int("symbols", len(s.Symbols)))
	part1, part2 := gears.Solve(s)
	return int64(part1), int64(part2), nil
}

func solveScratchcards(lines []string, opts *options) (int64, int64, error) {
	cards, err := scratchcards.Parse(lines)
	if err != nil {
		return 0, 0, err
	}
	opts.log.Debug("Parsed cards", zap.Int("cards", len(cards)))
	part1, part2 := scratchcards.Solve(cards)
	return int64(part1), int64(part2), nil
}

func solveAlmanac(path string, opts *options) (int64, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("fail to open %q: %w", path, err)
	}
	defer f.Close()

	a, err := almanac.Parse(f, almanac.WithLogger(opts.log), almanac.WithWorkers(opts.workers))
	if err != nil {
		return 0, 0, err
	}
	if ce := opts.log.Check(zap.DebugLevel, "Parsed almanac"); ce != nil {
		ce.Write(zap.String("seeds", spew.Sdump(a.Seeds)))
		for _, s := range a.Pipeline.Stages() {
			opts.log.Debug("Stage", zap.Stringer("stage", s), zap.String("entries", spew.Sdump(s.Entries())))
		}
	}

	part1, err := a.LowestLocation()
	if err != nil {
		return 0, 0, fmt.Errorf("fail to solve part 1: %w", err)
	}
	part2, err := a.LowestLocationForRanges()
	if err != nil {
		return 0, 0, fmt.Errorf("fail to solve part 2: %w", err)
	}
	return part1, part2, nil
}
