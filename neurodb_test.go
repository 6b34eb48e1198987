package neurodb

import "testing"

func TestCompileAndRecognize(t *testing.T) {
	engine, err := Compile(CENTRAL, []Pattern{
		{Body: "what time is it", Action: "ACT_TIME"},
	})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	result := engine.Recognize("what time is it")
	if len(result.Matches) == 0 {
		t.Fatal("expected a match")
	}
	if got := result.Matches[0].Segments[0].Action; got != "ACT_TIME" {
		t.Errorf("action = %q, want ACT_TIME", got)
	}
}

func TestMustCompilePanicsOnEmptyVocabulary(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for an empty vocabulary")
		}
	}()
	MustCompile(TEXT, nil)
}

func TestCompileStats(t *testing.T) {
	engine, err := Compile(TEXT, []Pattern{{Body: "friday"}})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	engine.Recognize("friday")
	if got := engine.Stats().Queries; got != 1 {
		t.Errorf("Queries = %d, want 1", got)
	}
}
