package almanac

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"go.uber.org/zap"

	"github.com/liznear/advent-of-code-2023/model"
)

// Almanac is the parsed day 5 input: a list of seeds and the pipeline that
// translates them into locations.
type Almanac struct {
	Seeds    []int64
	Pipeline *Pipeline

	cfg *Config
}

// New builds an Almanac from already parsed parts.
func New(seeds []int64, stages []*Stage, opts ...Option) (*Almanac, error) {
	p, err := NewPipeline(stages, opts...)
	if err != nil {
		return nil, err
	}
	return &Almanac{
		Seeds:    seeds,
		Pipeline: p,
		cfg:      p.cfg,
	}, nil
}

// LowestLocation treats every seed as a single value and returns the lowest
// location any of them maps to.
func (a *Almanac) LowestLocation() (int64, error) {
	if len(a.Seeds) == 0 {
		return 0, &ShapeError{Reason: "no seeds"}
	}
	ret := a.Pipeline.Run(a.Seeds[0])
	for _, seed := range a.Seeds[1:] {
		ret = min(ret, a.Pipeline.Run(seed))
	}
	return ret, nil
}

// SeedIntervals reads the seeds as (start, length) pairs and returns the
// merged list of seed intervals.
func (a *Almanac) SeedIntervals() ([]model.Interval, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, &ShapeError{Reason: fmt.Sprintf("got %d seed numbers, want an even count", len(a.Seeds))}
	}
	var ret []model.Interval
	for i := 0; i < len(a.Seeds); i += 2 {
		start, length := a.Seeds[i], a.Seeds[i+1]
		if length < 1 {
			return nil, &ShapeError{Reason: fmt.Sprintf("seed range %d starting at %d is empty", i/2+1, start)}
		}
		if start > math.MaxInt64-length {
			return nil, &ShapeError{Reason: fmt.Sprintf("seed range %d starting at %d overflows int64", i/2+1, start)}
		}
		ret = append(ret, model.FromLength(start, length))
	}
	merged := model.Merge(ret)
	if span, ok := model.Fusion(merged); ok {
		a.cfg.Logger.Debug("Merged seed intervals",
			zap.Int("ranges", len(ret)),
			zap.Int("merged", len(merged)),
			zap.Stringer("span", span),
			zap.Int64("seeds", model.TotalLen(merged)))
	}
	return merged, nil
}

// LowestLocationForRanges treats the seeds as ranges and returns the lowest
// location reachable from any seed in any range.
func (a *Almanac) LowestLocationForRanges() (int64, error) {
	seeds, err := a.SeedIntervals()
	if err != nil {
		return 0, err
	}
	if len(seeds) == 0 {
		return 0, &ShapeError{Reason: "no seeds"}
	}

	var locations []model.Interval
	if a.cfg.Workers <= 1 || len(seeds) == 1 {
		locations = a.Pipeline.RunRanges(seeds)
	} else {
		locations = a.runRangesParallel(seeds, a.cfg.Workers)
	}

	ret, ok := lowest(locations)
	if !ok {
		return 0, errors.New("almanac: no location reached")
	}
	return ret, nil
}

// runRangesParallel pushes every seed interval through the pipeline on its own,
// spread over n workers. The outputs of different workers are concatenated but
// never merged with each other, so they may overlap. Only their lowest bound is
// read.
func (a *Almanac) runRangesParallel(seeds []model.Interval, n int) []model.Interval {
	inputCh := make(chan model.Interval)
	outputCh := make(chan []model.Interval, len(seeds))

	var wg sync.WaitGroup
	wg.Add(n)
	for w := 0; w < n; w++ {
		go func(worker int) {
			defer wg.Done()
			for in := range inputCh {
				out := a.Pipeline.RunRanges([]model.Interval{in})
				a.cfg.Logger.Debug("Seed interval done",
					zap.Int("worker", worker),
					zap.Stringer("seeds", in),
					zap.Int("locations", len(out)))
				outputCh <- out
			}
		}(w)
	}

	for _, in := range seeds {
		inputCh <- in
	}
	close(inputCh)
	wg.Wait()
	close(outputCh)

	var ret []model.Interval
	for out := range outputCh {
		ret = append(ret, out...)
	}
	return ret
}
