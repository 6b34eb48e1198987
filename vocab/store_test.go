package vocab

import (
	"errors"
	"testing"
)

func TestBuildTextStore(t *testing.T) {
	store, err := Build(TEXT, []PatternSpec{
		{Body: "friday"},
		{Body: "saturday"},
		{Body: "sunday"},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if store.PatternCount() != 3 {
		t.Fatalf("PatternCount = %d, want 3", store.PatternCount())
	}
	code := store.PatternByName("FRIDAY")
	if code == 0 {
		t.Fatal("FRIDAY pattern not found")
	}
	p := store.Pattern(code)
	if p.Len() != 6 {
		t.Errorf("len(FRIDAY RL) = %d, want 6", p.Len())
	}
	// F R I D A Y should each resolve to distinct symbol codes.
	seen := map[SymbolCode]bool{}
	for _, sym := range p.RL {
		seen[sym] = true
	}
	if len(seen) != 6 {
		t.Errorf("distinct symbols in FRIDAY = %d, want 6", len(seen))
	}
}

func TestBuildTextStoreDiscardsNonAlnum(t *testing.T) {
	store, err := Build(TEXT, []PatternSpec{{Body: "fri-day!"}})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	p := store.Pattern(store.PatternByName("FRIDAY"))
	if p == nil {
		t.Fatal("expected FRIDAY pattern after stripping punctuation")
	}
}

func TestBuildCentralStore(t *testing.T) {
	store, err := Build(CENTRAL, []PatternSpec{
		{Body: "what time is it", Action: "ACT_TIME"},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	code := store.PatternByName("WHATTIMEISIT")
	if code == 0 {
		t.Fatal("expected WHATTIMEISIT pattern")
	}
	p := store.Pattern(code)
	if p.Len() != 4 {
		t.Errorf("len(RL) = %d, want 4 words", p.Len())
	}
	if p.Surrogate != "what time is it" {
		t.Errorf("Surrogate = %q, want %q", p.Surrogate, "what time is it")
	}
	if p.Action != "ACT_TIME" {
		t.Errorf("Action = %q, want ACT_TIME", p.Action)
	}
}

func TestBuildCentralStoreRejectsDistinctBodiesWithSameName(t *testing.T) {
	// "AB CD" and "ABC D" are distinct word-split RLs but strip to the same
	// Name ("ABCD"); the second insertion must be rejected rather than
	// silently overwrite the first pattern's entry in patternByName.
	_, err := Build(CENTRAL, []PatternSpec{
		{Body: "AB CD", Action: "ACT_ONE"},
		{Body: "ABC D", Action: "ACT_TWO"},
	})
	var buildErr *BuildError
	if !errors.As(err, &buildErr) || buildErr.Err != ErrDuplicateName {
		t.Fatalf("err = %v, want BuildError wrapping ErrDuplicateName", err)
	}
}

func TestBuildImageStoreDuplicateRLAccumulatesSurrogate(t *testing.T) {
	store, err := Build(IMAGE, []PatternSpec{
		{FeatureRL: []int{101, 205, 310}, Surrogate: "3"},
		{FeatureRL: []int{101, 205, 310}, Surrogate: "5"},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if store.PatternCount() != 1 {
		t.Fatalf("PatternCount = %d, want 1 (duplicate RL must merge)", store.PatternCount())
	}
	p := store.Pattern(1)
	if p.Surrogate != "3,5" {
		t.Errorf("Surrogate = %q, want %q", p.Surrogate, "3,5")
	}
}

func TestBuildEmptyVocabularyFails(t *testing.T) {
	_, err := Build(TEXT, nil)
	if err != ErrEmptyVocabulary {
		t.Fatalf("err = %v, want ErrEmptyVocabulary", err)
	}
}

func TestConnectionsIndexedBySymbol(t *testing.T) {
	store, err := Build(TEXT, []PatternSpec{{Body: "DAY"}, {Body: "FRIDAY"}})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	dCode := store.SymbolByPayload("D")
	conns := store.Connections(dCode)
	if len(conns) != 2 {
		t.Fatalf("Connections(D) = %d, want 2 (one per pattern containing D)", len(conns))
	}
}
