package filter

import (
	"github.com/coregx/neurodb/candidate"
	"github.com/coregx/neurodb/vocab"
)

// anomalyCount implements spec §4.3's anomaly-count stage: first, among
// candidates sharing (BB,EB,RNhits), keep only the one with the fewest
// positional anomalies (ties broken by shorter pattern length); then discard
// any candidate whose anomaly ratio reaches cfg.AnomalyThreshold. Skipped for
// CENTRAL stores.
func anomalyCount(store *vocab.Store, cands []*candidate.Candidate, cfg Config) []*candidate.Candidate {
	if store.Type() == vocab.CENTRAL {
		return cands
	}

	type key struct {
		bb, eb, rnhits int
	}
	best := make(map[key]*candidate.Candidate)
	for _, c := range cands {
		k := key{c.BB, c.EB, c.RNhits()}
		cur, ok := best[k]
		if !ok {
			best[k] = c
			continue
		}
		if lessAnomalous(store, c, cur) {
			best[k] = c
		}
	}

	out := make([]*candidate.Candidate, 0, len(best))
	for _, c := range best {
		out = append(out, c)
	}

	filtered := out[:0:0]
	for _, c := range out {
		p := store.Pattern(c.Pattern)
		ratio := float64(c.AnomalyCount()) / float64(p.Len())
		if ratio < cfg.AnomalyThreshold {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// lessAnomalous reports whether a should win the tie-break over b: fewer
// anomalies, then shorter owning pattern.
func lessAnomalous(store *vocab.Store, a, b *candidate.Candidate) bool {
	if aa, ba := a.AnomalyCount(), b.AnomalyCount(); aa != ba {
		return aa < ba
	}
	return store.Pattern(a.Pattern).Len() < store.Pattern(b.Pattern).Len()
}
