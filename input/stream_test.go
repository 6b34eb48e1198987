package input

import (
	"testing"

	"github.com/coregx/neurodb/vocab"
)

func TestPreprocessTextCollapsesRepeats(t *testing.T) {
	store, err := vocab.Build(vocab.TEXT, []vocab.PatternSpec{{Body: "THURSDAY"}})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	s := PreprocessText(store, "THURSOOOOOOOOODAY")
	if s.Length != len("THURSOODAY") {
		t.Fatalf("Length = %d, want %d", s.Length, len("THURSOODAY"))
	}
}

func TestPreprocessTextSpaceHints(t *testing.T) {
	store, err := vocab.Build(vocab.TEXT, []vocab.PatternSpec{{Body: "FRIDAY"}})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	s := PreprocessText(store, "mi friday")
	// "mi" then space then "friday" -> F is preceded by a space.
	fIdx := -1
	fCode := store.SymbolByPayload("F")
	for i := 0; i < s.Length; i++ {
		if s.ISRN[i] == fCode {
			fIdx = i
			break
		}
	}
	if fIdx == -1 {
		t.Fatal("F symbol not found in stream")
	}
	if !s.HasSpaceBefore(fIdx + 1) {
		t.Errorf("expected Space hint before F at qpos %d", fIdx+1)
	}
}

func TestPreprocessCentral(t *testing.T) {
	store, err := vocab.Build(vocab.CENTRAL, []vocab.PatternSpec{{Body: "what time is it"}})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	s := PreprocessCentral(store, "what time is it")
	if s.Length != 4 {
		t.Fatalf("Length = %d, want 4", s.Length)
	}
	if !s.HasSpaceBefore(2) {
		t.Error("expected space hint before second word")
	}
}

func TestPreprocessImage(t *testing.T) {
	store, err := vocab.Build(vocab.IMAGE, []vocab.PatternSpec{{FeatureRL: []int{101, 205}}})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	s := PreprocessImage(store, []int{101, 205})
	if s.Length != 2 {
		t.Fatalf("Length = %d, want 2", s.Length)
	}
	if s.ISRN[0] == 0 || s.ISRN[1] == 0 {
		t.Error("expected both feature codes to resolve to known symbols")
	}
}
