package candidate

import (
	"strings"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/neurodb/vocab"
)

// Prefilter is an optional accelerator in front of Generate: a single
// Aho-Corasick automaton built once per Store, used to reject a query
// outright when none of the vocabulary's literal bodies appear in it at
// all — skipping CG/FC/BA/SCU entirely for obviously non-matching input.
//
// This is the "literal engine bypass" idea from the teacher's
// meta.Engine.ahoCorasick field, narrowed to a yes/no gate rather than a
// per-pattern shortlist: TEXT stores tolerate typos, transpositions, and
// extra characters (spec §1), so a literal automaton can never safely rule
// out an individual pattern (e.g. "frdy" never literally contains
// "FRIDAY") without risking a false reject. It CAN safely rule out the
// entire query when not one single vocabulary literal appears anywhere,
// which is still a useful fast path for CENTRAL stores (spec §4.1, §4.3),
// where phrases are expected to appear close to verbatim. For TEXT and
// IMAGE stores, Prefilter is inactive and MayMatch always reports true, so
// correctness never depends on the accelerator firing.
type Prefilter struct {
	automaton *ahocorasick.Automaton
	active    bool
}

// NewPrefilter builds a Prefilter for store. It is only active for CENTRAL
// stores; for TEXT and IMAGE stores MayMatch always returns true.
func NewPrefilter(store *vocab.Store) (*Prefilter, error) {
	if store.Type() != vocab.CENTRAL || store.PatternCount() == 0 {
		return &Prefilter{active: false}, nil
	}

	builder := ahocorasick.NewBuilder()
	for code := 1; code <= store.PatternCount(); code++ {
		p := store.Pattern(vocab.PatternCode(code))
		for _, sym := range p.RL {
			word := store.Symbol(sym).Payload
			if word != "" {
				builder.AddPattern([]byte(strings.ToUpper(word)))
			}
		}
	}

	auto, err := builder.Build()
	if err != nil {
		// The automaton is a pure accelerator: if it can't be built, fall
		// back to treating every query as a potential match.
		return &Prefilter{active: false}, nil
	}
	return &Prefilter{automaton: auto, active: true}, nil
}

// MayMatch reports whether raw contains at least one of the store's
// vocabulary words. A false result guarantees Generate would return no
// candidates; a true result (or an inactive Prefilter) makes no promise
// either way.
func (pf *Prefilter) MayMatch(raw []byte) bool {
	if pf == nil || !pf.active {
		return true
	}
	return pf.automaton.IsMatch(raw)
}
