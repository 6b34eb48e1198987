package filter

import (
	"testing"

	"github.com/coregx/neurodb/candidate"
	"github.com/coregx/neurodb/input"
)

func TestBoundaryExpansionClaimsRepeatedPrefix(t *testing.T) {
	store := buildStore(t, "MISSISSIPPI")
	stream := input.PreprocessText(store, "miMISSISSIPPI")
	cands := candidate.Generate(store, stream)

	mississippi := store.PatternByName("MISSISSIPPI")
	var found *candidate.Candidate
	for _, c := range cands {
		if c.Pattern == mississippi && c.RNhits() == 11 {
			found = c
		}
	}
	if found == nil {
		t.Fatal("expected a full MISSISSIPPI candidate before expansion")
	}
	if found.BB != 3 {
		t.Fatalf("BB = %d, want 3 before expansion", found.BB)
	}

	out := boundaryExpansion(store, stream, []*candidate.Candidate{found}, DefaultConfig())
	if len(out) != 1 {
		t.Fatalf("expected one surviving candidate, got %d", len(out))
	}
	if out[0].BB != 1 {
		t.Errorf("BB = %d, want 1 after prefix expansion claims the leading \"mi\"", out[0].BB)
	}
}
