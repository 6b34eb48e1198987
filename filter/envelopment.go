package filter

import (
	"sort"

	"github.com/coregx/neurodb/candidate"
	"github.com/coregx/neurodb/input"
	"github.com/coregx/neurodb/metrics"
	"github.com/coregx/neurodb/vocab"
)

// envelopmentRemoval implements spec §4.3's envelopment-removal stage:
// candidates are sorted by composite score descending, and an envelopee Y is
// removed whenever a stronger, wider candidate X covers it, X is well
// recognised, and Y isn't a perfect, equally-informative match in its own
// right. The scan repeats to a fixed point since removing one envelopee can
// expose another.
func envelopmentRemoval(store *vocab.Store, stream *input.Stream, cands []*candidate.Candidate, cfg Config) []*candidate.Candidate {
	live := append([]*candidate.Candidate(nil), cands...)

	for {
		derived := make(map[*candidate.Candidate]metrics.Derived, len(live))
		for _, c := range live {
			derived[c] = metrics.Compute(store, stream, c)
		}

		sort.Slice(live, func(i, j int) bool {
			return derived[live[i]].C > derived[live[j]].C
		})

		removed := false
		keep := make([]*candidate.Candidate, 0, len(live))
		dropped := make(map[*candidate.Candidate]bool)
		for i, x := range live {
			if dropped[x] {
				continue
			}
			for j := i + 1; j < len(live); j++ {
				y := live[j]
				if dropped[y] || x == y {
					continue
				}
				if !envelops(x, y) {
					continue
				}
				dx, dy := derived[x], derived[y]
				if dx.PER >= cfg.EnvelopmentThreshold && dy.PER < 100 && y.RNhits() <= x.RNhits() {
					dropped[y] = true
					removed = true
				}
			}
		}
		for _, c := range live {
			if !dropped[c] {
				keep = append(keep, c)
			}
		}
		live = keep

		if !removed {
			return live
		}
	}
}

// envelops reports whether x's window fully covers y's.
func envelops(x, y *candidate.Candidate) bool {
	return x.BB <= y.BB && y.EB <= x.EB
}
