package metrics

import (
	"github.com/coregx/neurodb/candidate"
	"github.com/coregx/neurodb/input"
	"github.com/coregx/neurodb/vocab"
)

// Derived bundles the per-candidate metrics the Filter Cascade and SCU both
// consume (spec §4.5).
type Derived struct {
	PER  int     // 0..100, candidate score as a percentage of the ideal score
	QUAL int     // |Len(P) - RNhits|, 0 is perfect
	CntA int     // positional anomaly count
	C    float64 // composite score used to rank/prune candidates
	ALL  bool    // every RL position in P was matched somewhere
}

// Compute derives PER/QUAL/CntA/C/ALL for a single candidate in isolation
// (the Filter Cascade's view, before any branch exists).
func Compute(store *vocab.Store, stream *input.Stream, c *candidate.Candidate) Derived {
	p := store.Pattern(c.Pattern)

	candScore, _, _ := RunStandAlone(stream, []Entry{{Pattern: p, BB: c.BB, EB: c.EB}})
	per := percentageOf(candScore, IdealScore(p))
	if candScore >= IdealScore(p) && c.Len() > p.Len() {
		per = min(per, 90)
	}

	qual := p.Len() - c.RNhits()
	if qual < 0 {
		qual = -qual
	}

	cntA := c.AnomalyCount()

	comp := composite(per, qual, p.Len())
	ais := c.Len() - c.RNhits()
	for i := 0; i < ais; i++ {
		comp /= 10
	}
	for i := 0; i < cntA/3; i++ {
		comp /= 10
	}

	return Derived{
		PER:  per,
		QUAL: qual,
		CntA: cntA,
		C:    comp,
		ALL:  coversAllPositions(p, c),
	}
}

func percentageOf(score, ideal int) int {
	if ideal <= 0 {
		return 0
	}
	per := int((float64(score) * 100.0 / float64(ideal)) + 0.5)
	if per < 0 {
		per = 0
	}
	if per > 100 {
		per = 100
	}
	return per
}

func composite(per, qual, length int) float64 {
	p := float64(per) / 100.0
	return p * p * float64(length) * float64(length) / float64(qual+1)
}

func coversAllPositions(p *vocab.Pattern, c *candidate.Candidate) bool {
	seen := make(map[int]bool, len(c.Hits))
	for _, d := range c.Hits {
		seen[d] = true
	}
	for d := 1; d <= p.Len(); d++ {
		if !seen[d] {
			return false
		}
	}
	return true
}
