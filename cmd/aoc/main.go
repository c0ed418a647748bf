// Command aoc solves the Advent of Code 2023 puzzles of days 1 to 5.
//
//	aoc [-day N] [-debug] [-workers N] [path]
//
// It prints the answer of part 1, then the answer of part 2. The input defaults
// to inputs/day<N>.txt.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/liznear/advent-of-code-2023/utils"
)

func main() {
	var (
		day     = flag.Int("day", 5, "puzzle day to solve, from 1 to 5")
		debug   = flag.Bool("debug", false, "log debug information to stderr")
		workers = flag.Int("workers", 1, "goroutines used for the seed ranges of day 5")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-day N] [-debug] [-workers N] [path]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	solve, ok := solvers[*day]
	if !ok || flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := fmt.Sprintf("inputs/day%d.txt", *day)
	if flag.NArg() == 1 {
		path = flag.Arg(0)
	}

	log, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "aoc: fail to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	var part1, part2 int64
	run := func(path string) (err error) {
		log.Debug("Solving", zap.Int("day", *day), zap.String("input", path))
		part1, part2, err = solve(path, &options{log: log, workers: *workers})
		return err
	}
	err = utils.Run(
		utils.ToRunnable1(run, path),
		func() error {
			_, err := fmt.Fprintf(os.Stdout, "%d\n%d\n", part1, part2)
			return err
		},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "aoc: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	cfg.Encoding = "console"
	return cfg.Build()
}

type options struct {
	log     *zap.Logger
	workers int
}

// solver solves both parts of a day for the input file at path.
type solver func(path string, opts *options) (int64, int64, error)
