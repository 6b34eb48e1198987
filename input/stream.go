// Package input implements the Input Stream (IS) preprocessor: it turns raw
// text, a whole-word query, or an externally derived feature-code sequence
// into the bounded symbol stream the rest of the recognition pipeline
// consumes (spec §3, §4.1 normalization rules).
package input

import (
	"strings"

	"github.com/coregx/neurodb/internal/ascii"
	"github.com/coregx/neurodb/internal/limits"
	"github.com/coregx/neurodb/vocab"
)

// Stream is the preprocessed Input Stream (IS): a bounded sequence of
// symbol codes plus the parallel Space hints used as soft boundary
// evidence by the Filter Cascade and SCU.
type Stream struct {
	// ISRN holds the symbol code at each 0-based input position
	// (ISRN[0] is qpos 1). A code of 0 means no symbol in the owning
	// store's vocabulary produced this token — it still occupies a
	// position but can never be hit by any Connection.
	ISRN []vocab.SymbolCode

	// Space[q] is true when 1-based position q is preceded by a
	// word-separator in the raw input. Space[0] is unused; len(Space) ==
	// Length+1.
	Space []bool

	// Length is len(ISRN).
	Length int
}

// AtQpos returns the symbol code at 1-based position qpos, or 0 if qpos is
// out of range.
func (s *Stream) AtQpos(qpos int) vocab.SymbolCode {
	if qpos < 1 || qpos > s.Length {
		return 0
	}
	return s.ISRN[qpos-1]
}

// HasSpaceBefore reports the Space hint at 1-based position q.
func (s *Stream) HasSpaceBefore(q int) bool {
	if q < 1 || q > s.Length {
		return false
	}
	return s.Space[q]
}

// PreprocessText builds a Stream for a TEXT store: raw input is filtered to
// uppercase letters and digits, runs of more than two identical characters
// are collapsed to two (spec §8 scenario 3), and a Space hint is recorded
// for every resulting symbol that was preceded by a non-alnum separator in
// the raw input.
func PreprocessText(store *vocab.Store, raw string) *Stream {
	type tok struct {
		ch    byte
		space bool
	}

	toks := make([]tok, 0, len(raw))
	sepPending := false
	for i := 0; i < len(raw); i++ {
		b := raw[i]
		upper := toUpperByte(b)
		if isAlnum(upper) {
			toks = append(toks, tok{ch: upper, space: sepPending})
			sepPending = false
		} else {
			sepPending = true
		}
	}

	collapsed := make([]tok, 0, len(toks))
	i := 0
	for i < len(toks) {
		j := i + 1
		for j < len(toks) && toks[j].ch == toks[i].ch {
			j++
		}
		run := j - i
		if run > 2 {
			run = 2
		}
		for k := 0; k < run; k++ {
			t := toks[i]
			if k > 0 {
				t.space = false
			}
			collapsed = append(collapsed, t)
		}
		i = j
	}

	if len(collapsed) > limits.InquiryLength {
		collapsed = collapsed[:limits.InquiryLength]
	}

	s := &Stream{
		ISRN:   make([]vocab.SymbolCode, len(collapsed)),
		Space:  make([]bool, len(collapsed)+1),
		Length: len(collapsed),
	}
	for idx, t := range collapsed {
		s.ISRN[idx] = store.SymbolByPayload(string(t.ch))
		s.Space[idx+1] = t.space
	}
	return s
}

// PreprocessCentral builds a Stream for a CENTRAL store: raw input is split
// on whitespace into uppercase words, each word a single symbol, with a
// Space hint before every word after the first (word boundaries are always
// space-delimited by construction).
func PreprocessCentral(store *vocab.Store, raw string) *Stream {
	words := strings.Fields(strings.ToUpper(strings.TrimSpace(raw)))
	if len(words) > limits.InquiryLength {
		words = words[:limits.InquiryLength]
	}
	s := &Stream{
		ISRN:   make([]vocab.SymbolCode, len(words)),
		Space:  make([]bool, len(words)+1),
		Length: len(words),
	}
	for idx, w := range words {
		s.ISRN[idx] = store.SymbolByPayload(w)
		s.Space[idx+1] = idx > 0
	}
	return s
}

// PreprocessImage builds a Stream for an IMAGE store directly from a
// sequence of feature codes produced by the image adapter (spec §6): there
// is no text normalization, and Space hints are never set (images have no
// word boundaries).
func PreprocessImage(store *vocab.Store, features []int) *Stream {
	if len(features) > limits.InquiryLength {
		features = features[:limits.InquiryLength]
	}
	s := &Stream{
		ISRN:   make([]vocab.SymbolCode, len(features)),
		Space:  make([]bool, len(features)+1),
		Length: len(features),
	}
	for idx, f := range features {
		s.ISRN[idx] = store.SymbolByFeature(f)
	}
	return s
}

func toUpperByte(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

func isAlnum(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// IsASCIIText reports whether raw is entirely ASCII, using the SWAR-based
// fast path. Non-ASCII input is still processed (non-alnum bytes are simply
// dropped by PreprocessText), but callers may use this to short-circuit to
// MalformedInput diagnostics sooner.
func IsASCIIText(raw string) bool {
	return ascii.IsASCII([]byte(raw))
}
