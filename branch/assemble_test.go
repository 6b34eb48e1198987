package branch

import (
	"testing"

	"github.com/coregx/neurodb/candidate"
	"github.com/coregx/neurodb/filter"
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

func TestAssembleSingleCandidateBranch(t *testing.T) {
	store := buildStore(t, "FRIDAY")
	stream := input.PreprocessText(store, "friday")
	cands := candidate.Generate(store, stream)
	survivors := filter.Run(store, stream, cands, filter.DefaultConfig())

	branches := Assemble(store, stream, survivors, DefaultConfig())
	if len(branches) == 0 {
		t.Fatal("expected at least one branch")
	}
	found := false
	for _, b := range branches {
		cs := b.Candidates()
		if len(cs) == 1 && cs[0].BB == 1 && cs[0].EB == 6 {
			found = true
		}
	}
	if !found {
		t.Error("expected a branch covering the whole input with a single FRIDAY candidate")
	}
}

func TestAssembleChainsTwoWords(t *testing.T) {
	store := buildStore(t, "FRI", "DAY")
	stream := input.PreprocessText(store, "FRIDAY")
	cands := candidate.Generate(store, stream)
	survivors := filter.Run(store, stream, cands, filter.DefaultConfig())

	branches := Assemble(store, stream, survivors, DefaultConfig())

	foundChain := false
	for _, b := range branches {
		cs := b.Candidates()
		if len(cs) == 2 && cs[0].EB+1 == cs[1].BB && cs[0].BB == 1 && cs[1].EB == 6 {
			foundChain = true
		}
	}
	if !foundChain {
		t.Error("expected a branch chaining FRI then DAY across the whole input")
	}
}

func TestAssembleEmptyInputYieldsNoBranches(t *testing.T) {
	store := buildStore(t, "FRIDAY")
	branches := Assemble(store, &input.Stream{}, nil, DefaultConfig())
	if len(branches) != 0 {
		t.Errorf("expected no branches for no candidates, got %d", len(branches))
	}
}

func TestBranchCandidatesAreNonOverlapping(t *testing.T) {
	store := buildStore(t, "FRI", "DAY")
	stream := input.PreprocessText(store, "FRIDAY")
	cands := candidate.Generate(store, stream)
	survivors := filter.Run(store, stream, cands, filter.DefaultConfig())

	for _, b := range Assemble(store, stream, survivors, DefaultConfig()) {
		cs := b.Candidates()
		for i := 1; i < len(cs); i++ {
			if cs[i].BB != cs[i-1].EB+1 {
				t.Errorf("branch candidates are not exactly chained: %+v then %+v", cs[i-1], cs[i])
			}
		}
	}
}
