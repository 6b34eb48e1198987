package orchestrate

import (
	"errors"
	"testing"

	"github.com/coregx/neurodb/vocab"
)

func buildStore(t *testing.T, storeType vocab.Type, specs ...vocab.PatternSpec) *vocab.Store {
	t.Helper()
	s, err := vocab.Build(storeType, specs)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return s
}

func TestRecognizeExactMatchWinsUnambiguously(t *testing.T) {
	store := buildStore(t, vocab.TEXT,
		vocab.PatternSpec{Body: "FRIDAY"},
		vocab.PatternSpec{Body: "SATURDAY"},
		vocab.PatternSpec{Body: "SUNDAY"},
	)
	o := New(store, DefaultConfig())
	result := o.Recognize("friday")
	if result.Malformed {
		t.Fatal("expected a well-formed result")
	}
	if len(result.Matches) == 0 {
		t.Fatal("expected at least one match")
	}
	if got := result.Matches[0].Segments[0].Name; got != "FRIDAY" {
		t.Errorf("winning pattern = %q, want FRIDAY", got)
	}
}

func TestRecognizeMalformedInputYieldsNoResult(t *testing.T) {
	store := buildStore(t, vocab.TEXT, vocab.PatternSpec{Body: "FRIDAY"})
	o := New(store, DefaultConfig())
	result := o.Recognize("!!!")
	if !result.Malformed {
		t.Error("expected Malformed = true for input with no recognizable symbols")
	}
	if len(result.Matches) != 0 {
		t.Error("expected no matches for malformed input")
	}
}

func TestStatsCountQueries(t *testing.T) {
	store := buildStore(t, vocab.TEXT, vocab.PatternSpec{Body: "FRIDAY"})
	o := New(store, DefaultConfig())
	o.Recognize("friday")
	o.Recognize("!!!")
	stats := o.Stats()
	if stats.Queries != 2 {
		t.Errorf("Queries = %d, want 2", stats.Queries)
	}
	if stats.Malformed != 1 {
		t.Errorf("Malformed = %d, want 1", stats.Malformed)
	}
	if stats.Matches != 1 {
		t.Errorf("Matches = %d, want 1", stats.Matches)
	}
}

func TestRunRegressionReportsPassAndFail(t *testing.T) {
	store := buildStore(t, vocab.TEXT,
		vocab.PatternSpec{Body: "FRIDAY"},
		vocab.PatternSpec{Body: "SATURDAY"},
	)
	o := New(store, DefaultConfig())
	cases := []Case{
		{Input: "friday", Want: "FRIDAY"},
		{Input: "friday", Want: "SATURDAY"},
	}
	report := RunRegression(o, cases)
	if report.Passed != 1 || report.Failed != 1 {
		t.Errorf("Passed=%d Failed=%d, want 1/1", report.Passed, report.Failed)
	}
}

func TestDispatchToSendsActionsOnlyWhenUnambiguous(t *testing.T) {
	var got []string
	sink := ActionSinkFunc(func(action string, result Result) error {
		got = append(got, action)
		return nil
	})

	unambiguous := Result{Matches: []Match{{Segments: []Segment{{Name: "FRIDAY", Action: "ACT_FRI"}}}}}
	if err := DispatchTo(sink, unambiguous); err != nil {
		t.Fatalf("DispatchTo: %v", err)
	}
	if len(got) != 1 || got[0] != "ACT_FRI" {
		t.Errorf("got %v, want [ACT_FRI]", got)
	}

	got = nil
	ambiguous := Result{Ambiguous: true, Matches: []Match{{Segments: []Segment{{Name: "FRIDAY", Action: "ACT_FRI"}}}}}
	if err := DispatchTo(sink, ambiguous); err != nil {
		t.Fatalf("DispatchTo: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no dispatch for an ambiguous result, got %v", got)
	}
}

func TestRecognizeCentralPrefilterRejectsNonMatchingQuery(t *testing.T) {
	store := buildStore(t, vocab.CENTRAL, vocab.PatternSpec{Body: "what time is it", Action: "ACT_TIME"})
	o := New(store, DefaultConfig())

	result := o.Recognize("completely unrelated text")
	if len(result.Matches) != 0 {
		t.Fatalf("expected no matches, got %v", result.Matches)
	}
	if o.Stats().NoResults != 1 {
		t.Fatalf("NoResults = %d, want 1", o.Stats().NoResults)
	}
}

func TestRecognizeCentralPrefilterLetsMatchingQueryThrough(t *testing.T) {
	store := buildStore(t, vocab.CENTRAL, vocab.PatternSpec{Body: "what time is it", Action: "ACT_TIME"})
	o := New(store, DefaultConfig())

	result := o.Recognize("what time is it")
	if len(result.Matches) == 0 {
		t.Fatal("expected the prefilter to let a literal match through")
	}
	if got := result.Matches[0].Segments[0].Action; got != "ACT_TIME" {
		t.Errorf("action = %q, want ACT_TIME", got)
	}
}

func TestDispatchToPropagatesSinkError(t *testing.T) {
	sinkErr := errors.New("actuator offline")
	sink := ActionSinkFunc(func(action string, result Result) error { return sinkErr })
	result := Result{Matches: []Match{{Segments: []Segment{{Name: "FRIDAY", Action: "ACT_FRI"}}}}}
	if err := DispatchTo(sink, result); !errors.Is(err, sinkErr) {
		t.Errorf("DispatchTo error = %v, want %v", err, sinkErr)
	}
}
