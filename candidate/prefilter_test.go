package candidate

import (
	"testing"

	"github.com/coregx/neurodb/vocab"
)

func TestPrefilterInactiveForTextStore(t *testing.T) {
	store := buildTextStore(t, "FRIDAY")
	pf, err := NewPrefilter(store)
	if err != nil {
		t.Fatalf("NewPrefilter: %v", err)
	}
	if !pf.MayMatch([]byte("anything at all")) {
		t.Error("TEXT store prefilter must never reject")
	}
}

func TestPrefilterCentralStoreRejectsNoOverlap(t *testing.T) {
	store, err := vocab.Build(vocab.CENTRAL, []vocab.PatternSpec{
		{Body: "what time is it", Action: "ACT_TIME"},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	pf, err := NewPrefilter(store)
	if err != nil {
		t.Fatalf("NewPrefilter: %v", err)
	}
	if pf.MayMatch([]byte("ZEBRA QUOKKA")) {
		t.Error("expected no overlap with CENTRAL vocabulary to reject")
	}
	if !pf.MayMatch([]byte("WHAT TIME IS IT")) {
		t.Error("expected overlap with CENTRAL vocabulary to pass")
	}
}
