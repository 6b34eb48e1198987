// Package candidate implements the Candidate Generator (CG): given a
// Vocabulary Store and an Input Stream, it enumerates every hypothetical
// (pattern, begin, end) Bound Section the store's Connections support, then
// merges compatible hit records sharing a physical occurrence into a single
// richer candidate (spec §4.2).
package candidate

import (
	"sort"

	"github.com/coregx/neurodb/vocab"
)

// Candidate is a Bound Section: a hypothesised occurrence of Pattern at
// input positions [BB,EB], with Hits[qpos] recording which Recognition
// List position (dpos) matched that input position.
type Candidate struct {
	Pattern vocab.PatternCode
	BB, EB  int
	Hits    map[int]int // qpos -> dpos, 1-based
}

// RNhits returns the number of matched positions.
func (c *Candidate) RNhits() int {
	return len(c.Hits)
}

// OrderedQpos returns the matched qpos values in ascending order.
func (c *Candidate) OrderedQpos() []int {
	out := make([]int, 0, len(c.Hits))
	for q := range c.Hits {
		out = append(out, q)
	}
	sort.Ints(out)
	return out
}

// AnomalyCount walks the candidate's matched positions in qpos order and
// counts positional anomalies: a jump is anomalous whenever the step
// between consecutive matches isn't exactly (Δqpos=1, Δdpos=1) (spec §4.3).
func (c *Candidate) AnomalyCount() int {
	qposes := c.OrderedQpos()
	if len(qposes) < 2 {
		return 0
	}
	cnt := 0
	for i := 1; i < len(qposes); i++ {
		dq := qposes[i] - qposes[i-1]
		dd := c.Hits[qposes[i]] - c.Hits[qposes[i-1]]
		if dq != 1 || dd != 1 {
			cnt++
		}
	}
	return cnt
}

// Len returns the bound section's width (EB-BB+1), which is not necessarily
// equal to the owning pattern's RL length.
func (c *Candidate) Len() int {
	return c.EB - c.BB + 1
}

// clone returns a deep copy so filter-stage edits (boundary retraction and
// expansion mutate BB/EB and Hits) never alias a candidate still referenced
// elsewhere.
func (c *Candidate) clone() *Candidate {
	hits := make(map[int]int, len(c.Hits))
	for k, v := range c.Hits {
		hits[k] = v
	}
	return &Candidate{Pattern: c.Pattern, BB: c.BB, EB: c.EB, Hits: hits}
}

// Clone is the exported form of clone, used by filter and branch when they
// need to mutate a candidate without affecting the generator's output.
func (c *Candidate) Clone() *Candidate {
	return c.clone()
}
