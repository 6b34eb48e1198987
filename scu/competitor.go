// Package scu implements the Scoring & Competitive Unit (SCU): branch-level
// metrics derived from a branch's candidates, the Stand-Alone Score a branch
// earns on its own, seven independently switchable pairwise "agents" that
// adjust two competing branches' scores, and the round-robin tournament that
// arbitrates among every live branch (spec §4.5).
package scu

import (
	"github.com/coregx/neurodb/branch"
	"github.com/coregx/neurodb/candidate"
	"github.com/coregx/neurodb/input"
	"github.com/coregx/neurodb/metrics"
	"github.com/coregx/neurodb/vocab"
)

// Competitor is a branch presented to the SCU together with its derived
// branch-level metrics and a running Score initialised from its Stand-Alone
// Score (spec §3).
type Competitor struct {
	Branch *branch.Branch
	Score  int

	SpaceB  int
	Anomaly int
	Rec     int
	MinPR   int
	Bound   int
	UnCount int
	MisLead int

	// SpaceClaim[q] is the strength (PER) with which this competitor claims
	// a Space at input position q.
	SpaceClaim map[int]int

	// beaten records competitors this one has already faced (a mutual
	// non-compete list once either side wins or ties), keyed by identity.
	beaten map[*Competitor]bool
}

// NewCompetitor computes every branch-level metric for b and seeds Score
// with its Stand-Alone Score (spec §4.5).
func NewCompetitor(store *vocab.Store, stream *input.Stream, b *branch.Branch) *Competitor {
	cs := b.Candidates()

	entries := make([]metrics.Entry, len(cs))
	for i, c := range cs {
		entries[i] = metrics.Entry{Pattern: store.Pattern(c.Pattern), BB: c.BB, EB: c.EB}
	}
	score, uncount, _ := metrics.RunStandAlone(stream, entries)

	comp := &Competitor{
		Branch:     b,
		Score:      score,
		UnCount:    uncount,
		MinPR:      100,
		SpaceClaim: make(map[int]int),
		beaten:     make(map[*Competitor]bool),
	}

	for i, c := range cs {
		d := metrics.Compute(store, stream, c)
		p := store.Pattern(c.Pattern)

		if stream.HasSpaceBefore(c.BB) {
			comp.SpaceB++
			if d.PER > comp.SpaceClaim[c.BB] {
				comp.SpaceClaim[c.BB] = d.PER
			}
		}
		comp.Anomaly += d.CntA + d.QUAL
		comp.Rec += (d.PER - d.CntA - d.QUAL) * p.Len()
		if d.PER < comp.MinPR {
			comp.MinPR = d.PER
		}
		comp.MisLead += leadingUnmatched(c)

		if i > 0 && !stream.HasSpaceBefore(c.BB) {
			comp.Bound++
		}
	}
	if len(cs) == 0 {
		comp.MinPR = 0
	}

	return comp
}

// leadingUnmatched counts the pattern's own RL positions before the
// candidate's first matched dpos, i.e. the "leading-unmatched-RL positions"
// contribution to mislead (spec §4.5).
func leadingUnmatched(c *candidate.Candidate) int {
	qposes := c.OrderedQpos()
	if len(qposes) == 0 {
		return 0
	}
	minDpos := c.Hits[qposes[0]]
	for _, q := range qposes[1:] {
		if d := c.Hits[q]; d < minDpos {
			minDpos = d
		}
	}
	if minDpos < 1 {
		return 0
	}
	return minDpos - 1
}

// hasFaced reports whether a and z have already competed.
func (a *Competitor) hasFaced(z *Competitor) bool {
	return a.beaten[z]
}

// markFaced records that a and z have competed, so neither re-faces the
// other again this tournament.
func markFaced(a, z *Competitor) {
	a.beaten[z] = true
	z.beaten[a] = true
}
