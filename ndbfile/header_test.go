package ndbfile

import (
	"bytes"
	"strings"
	"testing"

	"github.com/coregx/neurodb/vocab"
)

func TestSaveLoadStoreHeaderRoundTrip(t *testing.T) {
	store, err := vocab.Build(vocab.TEXT, []vocab.PatternSpec{{Body: "friday"}, {Body: "sunday"}})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	h := HeaderFromStore(7, "2026-07-31T00:00:00Z", store)

	var buf bytes.Buffer
	if err := SaveStoreHeader(&buf, h); err != nil {
		t.Fatalf("SaveStoreHeader: %v", err)
	}
	if !strings.Contains(buf.String(), "$$$ End Of File") {
		t.Fatal("missing end-of-file marker")
	}

	got, err := LoadStoreHeader(&buf)
	if err != nil {
		t.Fatalf("LoadStoreHeader: %v", err)
	}
	if got != h {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, h)
	}
}

func TestLoadStoreHeaderMissingSection(t *testing.T) {
	_, err := LoadStoreHeader(strings.NewReader("NDB_ON\nsomething\n"))
	if err != ErrMissingHeader {
		t.Fatalf("err = %v, want ErrMissingHeader", err)
	}
}
