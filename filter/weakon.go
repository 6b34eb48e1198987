package filter

import (
	"github.com/coregx/neurodb/candidate"
	"github.com/coregx/neurodb/input"
	"github.com/coregx/neurodb/metrics"
	"github.com/coregx/neurodb/vocab"
)

// weakONRemoval discards any candidate whose composite score, scaled by its
// window width, falls at or below cfg.WeakONThreshold (spec §4.3).
func weakONRemoval(store *vocab.Store, stream *input.Stream, cands []*candidate.Candidate, cfg Config) []*candidate.Candidate {
	out := cands[:0:0]
	for _, c := range cands {
		d := metrics.Compute(store, stream, c)
		if d.C*float64(c.Len()) > cfg.WeakONThreshold {
			out = append(out, c)
		}
	}
	return out
}

// FinalAnomalyCount recomputes cntA after all boundary edits, adding the
// spec's closing penalty for a candidate whose window doesn't start exactly
// at its first matched position, or whose first matched position isn't RL
// position 1 (spec §4.3's "re-anomaly count").
func FinalAnomalyCount(c *candidate.Candidate) int {
	cntA := c.AnomalyCount()
	qposes := c.OrderedQpos()
	if len(qposes) == 0 {
		return cntA
	}
	if qposes[0] != c.BB {
		cntA++
	}
	if c.Hits[qposes[0]] != 1 {
		cntA++
	}
	return cntA
}
