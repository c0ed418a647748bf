package almanac

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/liznear/advent-of-code-2023/model"
)

// StageCount is the number of maps in an almanac.
const StageCount = 7

// chain is the order in which items are translated, from seed to location.
var chain = [StageCount + 1]model.Item{
	model.Seed,
	model.Soil,
	model.Fertilizer,
	model.Water,
	model.Light,
	model.Temperature,
	model.Humidity,
	model.Location,
}

// Pipeline translates seeds into locations through the seven stages in order.
type Pipeline struct {
	stages []*Stage
	cfg    *Config
}

// NewPipeline checks that the stages chain from seed to location and builds a
// Pipeline. Any other shape is reported as a *ShapeError.
func NewPipeline(stages []*Stage, opts ...Option) (*Pipeline, error) {
	if len(stages) != StageCount {
		return nil, &ShapeError{Reason: fmt.Sprintf("got %d maps, want %d", len(stages), StageCount)}
	}
	for i, s := range stages {
		if s == nil {
			return nil, &ShapeError{Reason: fmt.Sprintf("map %d is missing", i+1)}
		}
		if s.From != chain[i] || s.To != chain[i+1] {
			return nil, &ShapeError{Reason: fmt.Sprintf("map %d is %s, want %s-to-%s", i+1, s.Name(), chain[i], chain[i+1])}
		}
	}
	return &Pipeline{
		stages: stages,
		cfg:    newConfig(opts...),
	}, nil
}

// Stages returns the stages in application order.
func (p *Pipeline) Stages() []*Stage {
	return p.stages
}

// Run maps a single seed to its location.
func (p *Pipeline) Run(seed int64) int64 {
	v := seed
	for _, s := range p.stages {
		v = s.Apply(v)
	}
	return v
}

// RunRanges maps every value of the given intervals to its location and returns
// the image as a list of intervals.
//
// Between stages the working set is coalesced if the pipeline is configured to
// do so. Without coalescing the returned intervals are still pairwise disjoint
// as long as the inputs are.
func (p *Pipeline) RunRanges(intervals []model.Interval) []model.Interval {
	cur := intervals
	if p.cfg.Coalesce {
		cur = model.Merge(cur)
	}
	for _, s := range p.stages {
		var next []model.Interval
		for _, in := range cur {
			next = append(next, s.ApplyInterval(in)...)
		}
		if p.cfg.Coalesce {
			next = model.Merge(next)
		}
		p.cfg.Logger.Debug("Applied stage",
			zap.Stringer("stage", s),
			zap.Int("in", len(cur)),
			zap.Int("out", len(next)))
		cur = next
	}
	return cur
}

// lowest returns the smallest lower bound of the intervals. The second return
// value is false if there is no non-empty interval.
func lowest(intervals []model.Interval) (int64, bool) {
	var (
		ret   int64
		found bool
	)
	for _, i := range intervals {
		if i.Empty() {
			continue
		}
		if !found || i.Lo < ret {
			ret, found = i.Lo, true
		}
	}
	return ret, found
}
