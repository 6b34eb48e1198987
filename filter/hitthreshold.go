package filter

import (
	"github.com/coregx/neurodb/candidate"
	"github.com/coregx/neurodb/vocab"
)

// hitThreshold discards candidates whose matched-symbol ratio is at or below
// cfg.HitThreshold. Never applied to CENTRAL stores, whose word-level symbols
// already carry positional precision (spec §4.3).
func hitThreshold(store *vocab.Store, cands []*candidate.Candidate, cfg Config) []*candidate.Candidate {
	if store.Type() == vocab.CENTRAL {
		return cands
	}
	out := cands[:0:0]
	for _, c := range cands {
		p := store.Pattern(c.Pattern)
		ratio := float64(c.RNhits()) / float64(p.Len())
		if ratio > cfg.HitThreshold {
			out = append(out, c)
		}
	}
	return out
}
