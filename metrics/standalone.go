package metrics

import (
	"github.com/coregx/neurodb/input"
	"github.com/coregx/neurodb/vocab"
)

// Entry is one pattern occupying one window of the input stream: a single
// Bound Section when scoring one candidate on its own (the Filter Cascade's
// use), or one link of a chained branch when scoring a competitor (SCU's
// use, spec §4.5). Entries belonging to the same walk never overlap — that
// invariant is what lets RunStandAlone treat "the entry covering qpos" as
// unambiguous.
type Entry struct {
	Pattern *vocab.Pattern
	BB, EB  int
}

// entryFor returns the entry covering qpos, or nil.
func entryFor(entries []Entry, qpos int) *Entry {
	for i := range entries {
		if qpos >= entries[i].BB && qpos <= entries[i].EB {
			return &entries[i]
		}
	}
	return nil
}

// walkState tracks one entry's in-progress recognition run across the walk.
type walkState struct {
	lastDpos int // 0 means "no hit recorded yet for this entry"
	lastQpos int
	run      int
}

// RunStandAlone replays the Stand-Alone Score recurrence across every qpos
// spanned by entries (spec §4.5): for each input position, it searches the
// covering entry's whole Recognition List for the position that best
// continues that entry's recognition run — not merely replaying a
// candidate's previously recorded Hits — applies the Excitatory or
// Inhibitory spike accordingly, and tallies positions with no candidate dpos
// at all as uncounted.
//
// It returns the final score, the uncounted-position count, and, per entry
// index, the qpos->dpos pairs it actually walked (which a caller can use to
// recompute RNhits/AnomalyCount against the re-derived alignment rather than
// the generator's original one).
func RunStandAlone(stream *input.Stream, entries []Entry) (score int, uncount int, hits []map[int]int) {
	if len(entries) == 0 {
		return 0, 0, nil
	}

	states := make([]walkState, len(entries))
	hits = make([]map[int]int, len(entries))
	for i := range hits {
		hits[i] = make(map[int]int)
	}

	lo, hi := entries[0].BB, entries[0].EB
	for _, e := range entries[1:] {
		if e.BB < lo {
			lo = e.BB
		}
		if e.EB > hi {
			hi = e.EB
		}
	}

	for qpos := lo; qpos <= hi; qpos++ {
		idx := -1
		for i := range entries {
			if qpos >= entries[i].BB && qpos <= entries[i].EB {
				idx = i
				break
			}
		}
		if idx < 0 {
			uncount++
			continue
		}

		rn := stream.AtQpos(qpos)
		if rn == 0 {
			uncount++
			continue
		}

		p := entries[idx].Pattern
		st := &states[idx]

		bestD := 0
		bestEn := 0
		for d := 1; d <= p.Len(); d++ {
			if p.SymbolAt(d) != rn {
				continue
			}
			var en int
			switch {
			case st.lastDpos == 0:
				en = 1
			case d == st.lastDpos+1:
				en = st.run + 1
			default:
				en = d - st.lastDpos - 1
			}
			if bestD == 0 || en > bestEn {
				bestD, bestEn = d, en
			}
		}

		if bestD == 0 {
			uncount++
			continue
		}

		switch {
		case st.lastDpos == 0:
			score = ExcitatorySpike(score)
			st.run = 1
		case bestD == st.lastDpos+1:
			score = ExcitatorySpike(score)
			st.run++
		default:
			score = InhibitorySpike(score)
			st.run = 1
		}
		st.lastDpos, st.lastQpos = bestD, qpos
		hits[idx][qpos] = bestD
	}

	return score, uncount, hits
}

// IdealScore computes the Stand-Alone Score a pattern would earn against a
// perfect, gapless copy of its own Recognition List — the denominator of PER
// (spec §4.5).
func IdealScore(p *vocab.Pattern) int {
	ideal := &input.Stream{
		ISRN:   make([]vocab.SymbolCode, p.Len()),
		Space:  make([]bool, p.Len()+1),
		Length: p.Len(),
	}
	for i := 0; i < p.Len(); i++ {
		ideal.ISRN[i] = p.SymbolAt(i + 1)
	}
	score, _, _ := RunStandAlone(ideal, []Entry{{Pattern: p, BB: 1, EB: p.Len()}})
	return score
}
