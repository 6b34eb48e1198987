package candidate

import (
	"testing"

	"github.com/coregx/neurodb/input"
	"github.com/coregx/neurodb/vocab"
)

func buildTextStore(t *testing.T, bodies ...string) *vocab.Store {
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

func TestGenerateFindsExactMatch(t *testing.T) {
	store := buildTextStore(t, "FRIDAY", "SATURDAY", "SUNDAY")
	stream := input.PreprocessText(store, "friday")

	cands := Generate(store, stream)
	friday := store.PatternByName("FRIDAY")

	var found *Candidate
	for _, c := range cands {
		if c.Pattern == friday {
			found = c
			break
		}
	}
	if found == nil {
		t.Fatal("expected a FRIDAY candidate")
	}
	if found.RNhits() != 6 {
		t.Errorf("RNhits = %d, want 6", found.RNhits())
	}
	if found.BB != 1 || found.EB != 6 {
		t.Errorf("BB,EB = %d,%d want 1,6", found.BB, found.EB)
	}
}

func TestGenerateDeterministicOrder(t *testing.T) {
	store := buildTextStore(t, "FRIDAY", "DAY")
	stream := input.PreprocessText(store, "FRIDAY")

	c1 := Generate(store, stream)
	c2 := Generate(store, stream)
	if len(c1) != len(c2) {
		t.Fatalf("nondeterministic candidate count: %d vs %d", len(c1), len(c2))
	}
	for i := range c1 {
		if c1[i].Pattern != c2[i].Pattern || c1[i].BB != c2[i].BB || c1[i].EB != c2[i].EB {
			t.Fatalf("nondeterministic order at %d: %+v vs %+v", i, c1[i], c2[i])
		}
	}
}

func TestGenerateEmptyStream(t *testing.T) {
	store := buildTextStore(t, "FRIDAY")
	stream := input.PreprocessText(store, "")
	cands := Generate(store, stream)
	if len(cands) != 0 {
		t.Fatalf("expected no candidates for empty stream, got %d", len(cands))
	}
}

func TestAnomalyCountInOrderIsZero(t *testing.T) {
	c := &Candidate{Hits: map[int]int{1: 1, 2: 2, 3: 3}}
	if got := c.AnomalyCount(); got != 0 {
		t.Errorf("AnomalyCount = %d, want 0", got)
	}
}

func TestAnomalyCountDetectsTransposition(t *testing.T) {
	// qpos 1->2 with dpos 1->3 is a jump: anomaly.
	c := &Candidate{Hits: map[int]int{1: 1, 2: 3, 3: 2}}
	if got := c.AnomalyCount(); got == 0 {
		t.Errorf("AnomalyCount = 0, want > 0 for out-of-order dpos")
	}
}
