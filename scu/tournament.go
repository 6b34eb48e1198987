package scu

import (
	"github.com/coregx/neurodb/branch"
	"github.com/coregx/neurodb/input"
	"github.com/coregx/neurodb/internal/limits"
	"github.com/coregx/neurodb/vocab"
)

// Compete runs one pairwise arbitration between a and z: weaker SpaceClaim
// on a contested position first costs that side one spaceB point, then
// every enabled agent adjusts both sides' Score in turn (spec §4.5).
func Compete(a, z *Competitor, set AgentSet) {
	applySpaceClaimContest(a, z)
	for _, fn := range set.agents() {
		fn(a, z)
	}
}

// applySpaceClaimContest decrements spaceB by one for whichever side claims
// a contested Space position less strongly.
func applySpaceClaimContest(a, z *Competitor) {
	for q, as := range a.SpaceClaim {
		zs, ok := z.SpaceClaim[q]
		if !ok {
			continue
		}
		switch {
		case as < zs:
			a.SpaceB--
		case zs < as:
			z.SpaceB--
		}
	}
}

// Result is the outcome of a tournament: the surviving, undefeated
// competitors (more than one means an Ambiguous result, spec §7), capped at
// TOTAL_ALLOWED_RESULTS.
type Result struct {
	Winners   []*Competitor
	Ambiguous bool
}

// Run builds a Competitor for every branch, seeds the tournament pool per
// spec §4.5, and arbitrates pairwise until at most one competitor remains
// live or no unexhausted pairing exists.
func Run(store *vocab.Store, stream *input.Stream, branches []*branch.Branch, set AgentSet) Result {
	if len(branches) == 0 {
		return Result{}
	}

	all := make([]*Competitor, len(branches))
	for i, b := range branches {
		all[i] = NewCompetitor(store, stream, b)
	}

	maxTlength := all[0].Branch.Tlength
	bestTC := all[0]
	for _, c := range all {
		if c.Branch.Tlength > maxTlength {
			maxTlength = c.Branch.Tlength
		}
		if c.Branch.TCscore > bestTC.Branch.TCscore {
			bestTC = c
		}
	}

	var pool []*Competitor
	for _, c := range all {
		if c.Branch.Tlength == maxTlength || c.Branch.Tlength == bestTC.Branch.Tlength {
			pool = append(pool, c)
		}
	}

	live := make(map[*Competitor]bool, len(pool))
	for _, c := range pool {
		live[c] = true
	}

	maxIters := 2 * len(pool)
	for iter := 0; iter < maxIters && len(live) > 1; iter++ {
		a, z := findUnfaced(pool, live)
		if a == nil {
			break
		}
		Compete(a, z, set)
		markFaced(a, z)
		switch {
		case a.Score > z.Score:
			delete(live, z)
		case z.Score > a.Score:
			delete(live, a)
		}
	}

	winners := make([]*Competitor, 0, len(live))
	for _, c := range pool {
		if live[c] {
			winners = append(winners, c)
		}
	}
	if len(winners) > limits.TotalAllowedResults {
		winners = winners[:limits.TotalAllowedResults]
	}

	return Result{Winners: winners, Ambiguous: len(winners) > 1}
}

// findUnfaced returns the first pair of still-live competitors that have
// never faced each other.
func findUnfaced(pool []*Competitor, live map[*Competitor]bool) (*Competitor, *Competitor) {
	for i, a := range pool {
		if !live[a] {
			continue
		}
		for _, z := range pool[i+1:] {
			if !live[z] {
				continue
			}
			if !a.hasFaced(z) {
				return a, z
			}
		}
	}
	return nil, nil
}
