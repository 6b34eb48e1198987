package metrics

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

func TestComputePerfectMatchScoresHighPER(t *testing.T) {
	store := buildStore(t, "FRIDAY")
	stream := input.PreprocessText(store, "friday")
	cands := candidate.Generate(store, stream)
	if len(cands) == 0 {
		t.Fatal("expected at least one candidate")
	}
	d := Compute(store, stream, cands[0])
	if d.PER < 95 {
		t.Errorf("PER = %d, want near 100 for an exact match", d.PER)
	}
	if d.QUAL != 0 {
		t.Errorf("QUAL = %d, want 0 for an exact match", d.QUAL)
	}
	if !d.ALL {
		t.Error("ALL = false, want true for an exact match")
	}
}

func TestComputeTranspositionLowersScore(t *testing.T) {
	store := buildStore(t, "FRIDAY")
	exact := input.PreprocessText(store, "friday")
	transposed := input.PreprocessText(store, "fridya")

	cExact := candidate.Generate(store, exact)
	cTrans := candidate.Generate(store, transposed)
	if len(cExact) == 0 || len(cTrans) == 0 {
		t.Fatal("expected candidates for both streams")
	}

	dExact := Compute(store, exact, cExact[0])
	dTrans := Compute(store, transposed, cTrans[0])
	if dTrans.PER > dExact.PER {
		t.Errorf("transposed PER %d should not exceed exact PER %d", dTrans.PER, dExact.PER)
	}
}

func TestIdealScorePositiveForNonEmptyPattern(t *testing.T) {
	store := buildStore(t, "FRIDAY")
	p := store.Pattern(store.PatternByName("FRIDAY"))
	if IdealScore(p) <= 0 {
		t.Error("IdealScore should be positive for a non-empty pattern")
	}
}
