package filter

import (
	"testing"

	"github.com/coregx/neurodb/candidate"
	"github.com/coregx/neurodb/input"
	"github.com/coregx/neurodb/vocab"
)

func TestEnvelopmentRemovesWeakerImperfectSubsumedCandidate(t *testing.T) {
	store := buildStore(t, "ABCDEFG", "CDE")

	letters := "ABCDEFG"
	stream := &input.Stream{
		ISRN:   make([]vocab.SymbolCode, len(letters)),
		Space:  make([]bool, len(letters)+1),
		Length: len(letters),
	}
	for i := 0; i < len(letters); i++ {
		stream.ISRN[i] = store.SymbolByPayload(string(letters[i]))
	}

	abcdefg := store.PatternByName("ABCDEFG")
	cde := store.PatternByName("CDE")

	x := &candidate.Candidate{
		Pattern: abcdefg,
		BB:      1, EB: 7,
		Hits: map[int]int{1: 1, 2: 2, 3: 3, 4: 4, 5: 5, 6: 6, 7: 7},
	}
	// y only matches 2 of its 3 positions: imperfect, fully covered by x.
	y := &candidate.Candidate{
		Pattern: cde,
		BB:      3, EB: 5,
		Hits: map[int]int{3: 1, 4: 2},
	}

	out := envelopmentRemoval(store, stream, []*candidate.Candidate{x, y}, DefaultConfig())

	for _, c := range out {
		if c.Pattern == cde {
			t.Error("expected the imperfect, fully-covered CDE candidate to be removed")
		}
	}
	foundX := false
	for _, c := range out {
		if c.Pattern == abcdefg {
			foundX = true
		}
	}
	if !foundX {
		t.Fatal("expected the enveloping candidate to survive")
	}
}

func TestEnvelopmentKeepsPerfectSubsumedCandidate(t *testing.T) {
	store := buildStore(t, "ABCDEFG", "CDE")

	letters := "ABCDEFG"
	stream := &input.Stream{
		ISRN:   make([]vocab.SymbolCode, len(letters)),
		Space:  make([]bool, len(letters)+1),
		Length: len(letters),
	}
	for i := 0; i < len(letters); i++ {
		stream.ISRN[i] = store.SymbolByPayload(string(letters[i]))
	}

	abcdefg := store.PatternByName("ABCDEFG")
	cde := store.PatternByName("CDE")

	x := &candidate.Candidate{
		Pattern: abcdefg,
		BB:      1, EB: 7,
		Hits: map[int]int{1: 1, 2: 2, 3: 3, 4: 4, 5: 5, 6: 6, 7: 7},
	}
	// y matches all 3 of its positions: a perfect subsumed candidate, which
	// envelopment removal must not discard (spec §4.3 condition ii).
	y := &candidate.Candidate{
		Pattern: cde,
		BB:      3, EB: 5,
		Hits: map[int]int{3: 1, 4: 2, 5: 3},
	}

	out := envelopmentRemoval(store, stream, []*candidate.Candidate{x, y}, DefaultConfig())

	found := false
	for _, c := range out {
		if c.Pattern == cde {
			found = true
		}
	}
	if !found {
		t.Error("a perfectly recognised subsumed candidate must survive envelopment removal")
	}
}
