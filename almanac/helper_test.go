package almanac

import (
	_ "embed"
	"strings"
	"testing"

	"github.com/liznear/advent-of-code-2023/model"
)

//go:embed testdata/sample.txt
var sample string

func mustParse(t *testing.T, input string, opts ...Option) *Almanac {
	t.Helper()
	a, err := Parse(strings.NewReader(input), opts...)
	if err != nil {
		t.Fatalf("Fail to parse almanac: %v", err)
	}
	return a
}

func mustStage(t *testing.T, entries ...model.Entry) *Stage {
	t.Helper()
	s, err := NewStage(model.Seed, model.Soil, entries)
	if err != nil {
		t.Fatalf("Fail to build stage: %v", err)
	}
	return s
}

// identityStages returns a full chain of stages without entries.
func identityStages(t *testing.T) []*Stage {
	t.Helper()
	var stages []*Stage
	for i := 0; i < StageCount; i++ {
		s, err := NewStage(chain[i], chain[i+1], nil)
		if err != nil {
			t.Fatal(err)
		}
		stages = append(stages, s)
	}
	return stages
}
