package filter

import (
	"testing"

	"github.com/coregx/neurodb/candidate"
	"github.com/coregx/neurodb/input"
	"github.com/coregx/neurodb/vocab"
)

func buildStore(t *testing.T, bodies ...string) *vocab.Store {
	t.Helper()
	specs := make([]vocab.PatternSpec, len(bodies))
	for i, b := range bodies {
		specs[i] = vocab.PatternSpec{Body: b}
	}
	s, err := vocab.Build(vocab.TEXT, specs)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return s
}

func TestRunKeepsExactMatch(t *testing.T) {
	store := buildStore(t, "FRIDAY", "SATURDAY", "SUNDAY")
	stream := input.PreprocessText(store, "friday")
	cands := candidate.Generate(store, stream)

	out := Run(store, stream, cands, DefaultConfig())

	friday := store.PatternByName("FRIDAY")
	found := false
	for _, c := range out {
		if c.Pattern == friday {
			found = true
		}
	}
	if !found {
		t.Fatal("expected FRIDAY to survive the cascade on an exact match")
	}
}

func TestRunDropsLowHitRatio(t *testing.T) {
	store := buildStore(t, "MISSISSIPPI")
	stream := input.PreprocessText(store, "m")
	cands := candidate.Generate(store, stream)

	out := Run(store, stream, cands, DefaultConfig())
	if len(out) != 0 {
		t.Fatalf("expected a single-letter input to fail the hit threshold, got %d survivors", len(out))
	}
}

func TestCentralStoreSkipsHitAndAnomalyStages(t *testing.T) {
	store, err := vocab.Build(vocab.CENTRAL, []vocab.PatternSpec{
		{Body: "what time is it", Action: "ACT_TIME"},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	stream := input.PreprocessCentral(store, "what time is it")
	cands := candidate.Generate(store, stream)

	out := Run(store, stream, cands, DefaultConfig())
	if len(out) == 0 {
		t.Fatal("expected the CENTRAL phrase to survive the cascade untouched by hit/anomaly filters")
	}
}
