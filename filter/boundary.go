package filter

import (
	"github.com/coregx/neurodb/candidate"
	"github.com/coregx/neurodb/input"
	"github.com/coregx/neurodb/internal/sparse"
	"github.com/coregx/neurodb/metrics"
	"github.com/coregx/neurodb/vocab"
)

// anomalousBoundaryRetraction implements spec §4.3: for each imperfectly
// recognised candidate whose trailing matched positions form a positional
// anomaly, try pulling EB back to just before that anomaly. The retraction
// is only kept if the positions it gives up are already covered by another
// candidate with an equal or higher (PER-QUAL), and only if doing so
// actually improves the candidate's composite score.
func anomalousBoundaryRetraction(store *vocab.Store, stream *input.Stream, cands []*candidate.Candidate) []*candidate.Candidate {
	out := make([]*candidate.Candidate, len(cands))
	copy(out, cands)

	for i, c := range out {
		d := metrics.Compute(store, stream, c)
		if d.PER >= 100 {
			continue
		}
		qposes := c.OrderedQpos()
		if len(qposes) < 2 {
			continue
		}

		tailStart := trailingAnomalyStart(c, qposes)
		if tailStart < 0 {
			continue
		}
		newEB := qposes[tailStart] - 1
		if newEB < c.BB {
			continue
		}

		if !trailingCoveredByStronger(store, stream, out, c, newEB, d.PER-d.QUAL) {
			continue
		}

		retracted := c.Clone()
		retracted.EB = newEB
		for q := range retracted.Hits {
			if q > newEB {
				delete(retracted.Hits, q)
			}
		}
		rd := metrics.Compute(store, stream, retracted)
		if rd.C > d.C {
			out[i] = retracted
		}
	}
	return out
}

// trailingAnomalyStart returns the index (into qposes) of the first matched
// position belonging to a positional anomaly run at the tail of c, or -1 if
// the tail is clean.
func trailingAnomalyStart(c *candidate.Candidate, qposes []int) int {
	last := len(qposes) - 1
	dq := qposes[last] - qposes[last-1]
	dd := c.Hits[qposes[last]] - c.Hits[qposes[last-1]]
	if dq == 1 && dd == 1 {
		return -1
	}
	return last
}

// trailingCoveredByStronger reports whether every position in (newEB, c.EB]
// is covered by some other candidate whose (PER-QUAL) is at least minScore.
func trailingCoveredByStronger(store *vocab.Store, stream *input.Stream, all []*candidate.Candidate, self *candidate.Candidate, newEB, minScore int) bool {
	for q := newEB + 1; q <= self.EB; q++ {
		covered := false
		for _, o := range all {
			if o == self || q < o.BB || q > o.EB {
				continue
			}
			od := metrics.Compute(store, stream, o)
			if od.PER-od.QUAL >= minScore {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
	}
	return true
}

// weakBoundaryRetraction implements spec §4.3: candidates tied at the
// highest PER mark their covered positions "owned". Weaker candidates that
// both overlap owned territory and carry a Space hint at their own begin are
// shrunk to exclude the owned positions; if the recomputed PER falls below
// cfg.RetractBoundaryThreshold, the candidate is dropped outright.
func weakBoundaryRetraction(store *vocab.Store, stream *input.Stream, cands []*candidate.Candidate, cfg Config) []*candidate.Candidate {
	if len(cands) == 0 {
		return cands
	}

	derived := make([]metrics.Derived, len(cands))
	topPER := 0
	for i, c := range cands {
		derived[i] = metrics.Compute(store, stream, c)
		if derived[i].PER > topPER {
			topPER = derived[i].PER
		}
	}

	owned := sparse.NewSparseSet(uint32(stream.Length + 1))
	for i, c := range cands {
		if derived[i].PER == topPER {
			for q := c.BB; q <= c.EB; q++ {
				owned.Insert(uint32(q))
			}
		}
	}

	out := make([]*candidate.Candidate, 0, len(cands))
	for i, c := range cands {
		if derived[i].PER == topPER {
			out = append(out, c)
			continue
		}
		if !overlapsOwned(c, owned) || !stream.HasSpaceBefore(c.BB) {
			out = append(out, c)
			continue
		}

		shrunk := c.Clone()
		for q := range shrunk.Hits {
			if owned.Contains(uint32(q)) {
				delete(shrunk.Hits, q)
			}
		}
		shrunk.BB, shrunk.EB = boundsOf(shrunk)
		if shrunk.RNhits() == 0 {
			continue
		}
		sd := metrics.Compute(store, stream, shrunk)
		if sd.PER < cfg.RetractBoundaryThreshold {
			continue
		}
		out = append(out, shrunk)
	}
	return out
}

func overlapsOwned(c *candidate.Candidate, owned *sparse.SparseSet) bool {
	for q := c.BB; q <= c.EB; q++ {
		if owned.Contains(uint32(q)) {
			return true
		}
	}
	return false
}

func boundsOf(c *candidate.Candidate) (int, int) {
	bb, eb := c.BB, c.EB
	first := true
	for q := range c.Hits {
		if first {
			bb, eb = q, q
			first = false
			continue
		}
		if q < bb {
			bb = q
		}
		if q > eb {
			eb = q
		}
	}
	return bb, eb
}

// boundaryExpansion implements spec §4.3: a perfectly recognised candidate
// (PER=100, QUAL=0, ALL=true) may claim extra input positions immediately
// before its begin (or after its end) when those positions replay its own
// Recognition List's prefix (respectively suffix) — e.g. a leading "mi"
// before an already-perfect "MISSISSIPPI" match, spec §8 scenario 2.
// Expansion never crosses a Space boundary. After each expansion the result
// is re-enveloped: anything now fully covered and no stronger is dropped.
func boundaryExpansion(store *vocab.Store, stream *input.Stream, cands []*candidate.Candidate, cfg Config) []*candidate.Candidate {
	out := make([]*candidate.Candidate, len(cands))
	copy(out, cands)

	order := make([]int, len(out))
	for i := range order {
		order[i] = i
	}
	// Highest PER first (spec: "iterate from highest PER downward").
	for i := 0; i < len(order); i++ {
		for j := i + 1; j < len(order); j++ {
			if metrics.Compute(store, stream, out[order[j]]).PER > metrics.Compute(store, stream, out[order[i]]).PER {
				order[i], order[j] = order[j], order[i]
			}
		}
	}

	for _, idx := range order {
		c := out[idx]
		d := metrics.Compute(store, stream, c)
		if d.PER < 100 || d.QUAL != 0 || !d.ALL {
			continue
		}
		c = c.Clone()
		p := store.Pattern(c.Pattern)
		expandPrefix(stream, c, p)
		expandSuffix(stream, c, p)
		out[idx] = c
	}

	return envelopmentRemoval(store, stream, out, cfg)
}

// expandPrefix greedily claims positions before BB that replay RL's own
// prefix, stopping at a Space boundary.
func expandPrefix(stream *input.Stream, c *candidate.Candidate, p *vocab.Pattern) {
	for {
		if c.BB <= 1 || stream.HasSpaceBefore(c.BB) {
			return
		}
		k := matchPrefixBackward(stream, p, c.BB)
		if k == 0 {
			return
		}
		for i := 0; i < k; i++ {
			q := c.BB - 1 - i
			c.Hits[q] = p.SymbolAt(k - i)
		}
		c.BB -= k
	}
}

// matchPrefixBackward returns the largest k such that stream positions
// [begin-k, begin-1] replay RL[1..k] verbatim, or 0 if no such k exists.
func matchPrefixBackward(stream *input.Stream, p *vocab.Pattern, begin int) int {
	maxK := begin - 1
	if maxK > p.Len() {
		maxK = p.Len()
	}
	for k := maxK; k >= 1; k-- {
		match := true
		for o := 0; o < k; o++ {
			if o > 0 && stream.HasSpaceBefore(begin-k+o) {
				match = false
				break
			}
			if stream.AtQpos(begin-k+o) != p.SymbolAt(o+1) {
				match = false
				break
			}
		}
		if match {
			return k
		}
	}
	return 0
}

// expandSuffix greedily claims positions after EB that replay RL's own
// suffix, stopping at a Space boundary.
func expandSuffix(stream *input.Stream, c *candidate.Candidate, p *vocab.Pattern) {
	for {
		if c.EB >= stream.Length || stream.HasSpaceBefore(c.EB+1) {
			return
		}
		k := matchSuffixForward(stream, p, c.EB)
		if k == 0 {
			return
		}
		for i := 0; i < k; i++ {
			q := c.EB + 1 + i
			c.Hits[q] = p.SymbolAt(p.Len() - k + 1 + i)
		}
		c.EB += k
	}
}

// matchSuffixForward returns the largest k such that stream positions
// [end+1, end+k] replay RL[Len-k+1..Len] verbatim, or 0 if no such k exists.
func matchSuffixForward(stream *input.Stream, p *vocab.Pattern, end int) int {
	maxK := stream.Length - end
	if maxK > p.Len() {
		maxK = p.Len()
	}
	for k := maxK; k >= 1; k-- {
		match := true
		for o := 0; o < k; o++ {
			if o > 0 && stream.HasSpaceBefore(end+1+o) {
				match = false
				break
			}
			if stream.AtQpos(end+1+o) != p.SymbolAt(p.Len()-k+1+o) {
				match = false
				break
			}
		}
		if match {
			return k
		}
	}
	return 0
}
