package branch

import (
	"github.com/coregx/neurodb/candidate"
	"github.com/coregx/neurodb/input"
	"github.com/coregx/neurodb/internal/arena"
	"github.com/coregx/neurodb/metrics"
	"github.com/coregx/neurodb/vocab"
)

// branchState is the in-progress growth state for one chain.
type branchState struct {
	tail    arena.Handle
	tlength int
	tcscore float64
	minPER  int
}

type live struct {
	state branchState
	done  bool
}

// Assemble implements the Branch Assembler (spec §4.4): it chains the
// Filter Cascade's surviving candidates into every complete, non-overlapping
// segmentation of the input, forking wherever more than one candidate can
// extend a chain, seeding orphan branches for well-recognised sub-segments
// that never align to the overall begin boundary, and pruning the live
// population on pathological inputs.
func Assemble(store *vocab.Store, stream *input.Stream, cands []*candidate.Candidate, cfg Config) []*Branch {
	if len(cands) == 0 {
		return nil
	}

	derived := make(map[*candidate.Candidate]metrics.Derived, len(cands))
	for _, c := range cands {
		derived[c] = metrics.Compute(store, stream, c)
	}

	lowB := cands[0].BB
	for _, c := range cands {
		if c.BB < lowB {
			lowB = c.BB
		}
	}

	highB := 0
	for _, c := range cands {
		if c.BB == lowB && c.EB > highB {
			highB = c.EB
		}
	}

	ch := newChain()
	placed := make(map[*candidate.Candidate]bool)

	var entries []*live
	for _, c := range cands {
		if c.BB != lowB {
			continue
		}
		placed[c] = true
		entries = append(entries, &live{state: branchState{
			tail:    ch.seed(c),
			tlength: c.Len(),
			tcscore: derived[c].C,
			minPER:  derived[c].PER,
		}})
	}

	entries = growUntilStable(ch, cands, derived, placed, entries, cfg)

	var orphans []*live
	for _, c := range cands {
		if placed[c] || c.BB > highB {
			continue
		}
		if derived[c].PER <= cfg.UnusedThreshold {
			continue
		}
		placed[c] = true
		orphans = append(orphans, &live{state: branchState{
			tail:    ch.seed(c),
			tlength: c.Len(),
			tcscore: derived[c].C,
			minPER:  derived[c].PER,
		}})
	}
	if len(orphans) > 0 {
		entries = append(entries, orphans...)
		entries = growUntilStable(ch, cands, derived, placed, entries, cfg)
	}

	out := make([]*Branch, 0, len(entries))
	for _, e := range entries {
		out = append(out, &Branch{c: ch, tail: e.state.tail, Tlength: e.state.tlength, TCscore: e.state.tcscore})
	}
	return out
}

// growUntilStable repeatedly extends every non-done entry by one more
// candidate, forking in place whenever more than one continuation exists,
// until a full pass makes no further progress. The number of passes is
// bounded by the input length, since a chain can extend at most once per
// input position.
func growUntilStable(ch *chain, cands []*candidate.Candidate, derived map[*candidate.Candidate]metrics.Derived, placed map[*candidate.Candidate]bool, entries []*live, cfg Config) []*live {
	for {
		changed := false
		var forked []*live
		for _, e := range entries {
			if e.done {
				continue
			}
			tailCand := ch.nodes.Get(e.state.tail).cand
			nextBB := tailCand.EB + 1

			var conts []*candidate.Candidate
			for _, c := range cands {
				if c.BB == nextBB {
					conts = append(conts, c)
				}
			}
			if len(conts) == 0 {
				e.done = true
				continue
			}

			changed = true
			for i, c := range conts {
				placed[c] = true
				d := derived[c]
				newTail := ch.extend(e.state.tail, c)
				newState := branchState{
					tail:    newTail,
					tlength: e.state.tlength + c.Len(),
					tcscore: e.state.tcscore + d.C,
					minPER:  minInt(e.state.minPER, d.PER),
				}
				if i == 0 {
					e.state = newState
				} else {
					forked = append(forked, &live{state: newState})
				}
			}
		}
		entries = append(entries, forked...)
		entries = prune(entries, cfg)
		if !changed {
			return entries
		}
	}
}

// prune implements spec §4.4's live-branch-count pruning schedule: above
// each population threshold, branches whose weakest candidate falls below
// the matching PER cutoff are dropped. Only the highest threshold crossed
// is applied, since its cutoff is strictly tighter than the lower tiers'.
func prune(entries []*live, cfg Config) []*live {
	n := len(entries)
	var cutoff int
	switch {
	case n > cfg.PruneAt3000:
		cutoff = cfg.PER3Threshold
	case n > cfg.PruneAt1000:
		cutoff = cfg.PER2Threshold
	case n > cfg.PruneAt500:
		cutoff = cfg.PER1Threshold
	default:
		return entries
	}

	out := entries[:0:0]
	for _, e := range entries {
		if e.state.minPER >= cutoff {
			out = append(out, e)
		}
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
