// Package branch implements the Branch Assembler (BA): it glues the Filter
// Cascade's surviving candidates into complete, non-overlapping chains
// ("branches") spanning the input, forking wherever more than one candidate
// can extend a chain, and pruning the live-branch population on pathological
// inputs (spec §4.4).
package branch

import (
	"github.com/coregx/neurodb/candidate"
	"github.com/coregx/neurodb/internal/arena"
)

// node is one link in a branch's candidate chain, stored in a shared arena
// and addressed by Handle rather than pointer (spec §9: "model as grow-only
// vectors... indices survive arena reallocation and simplify fork-copy").
// A branch never copies its prefix on fork — it shares the same chain of
// node Handles up to the fork point and only appends new tail nodes, so
// forking N ways costs N new nodes, not N copies of the whole chain.
type node struct {
	cand *candidate.Candidate
	prev arena.Handle
}

// chain owns the shared node arena every Branch produced by one Assemble
// call is built from.
type chain struct {
	nodes *arena.Arena[node]
}

func newChain() *chain {
	return &chain{nodes: arena.New[node](64)}
}

func (c *chain) seed(cand *candidate.Candidate) arena.Handle {
	return c.nodes.Push(node{cand: cand})
}

func (c *chain) extend(prev arena.Handle, cand *candidate.Candidate) arena.Handle {
	return c.nodes.Push(node{cand: cand, prev: prev})
}

// candidates walks from tail back to head and returns the chain in
// head-to-tail order.
func (c *chain) candidates(tail arena.Handle) []*candidate.Candidate {
	var out []*candidate.Candidate
	for h := tail; h != 0; {
		n := c.nodes.Get(h)
		out = append(out, n.cand)
		h = n.prev
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Branch is a complete, non-overlapping chaining of candidates covering a
// span of the input (spec §3), with the completeness metrics the Branch
// Assembler and SCU tournament both need.
type Branch struct {
	c    *chain
	tail arena.Handle

	// Tlength is the sum of (EB-BB+1) over every candidate in the branch.
	Tlength int
	// TCscore is the sum of per-candidate composite scores.
	TCscore float64
}

// Candidates returns the branch's candidates in head-to-tail order.
func (b *Branch) Candidates() []*candidate.Candidate {
	return b.c.candidates(b.tail)
}

// Head returns the branch's first candidate.
func (b *Branch) Head() *candidate.Candidate {
	cs := b.Candidates()
	if len(cs) == 0 {
		return nil
	}
	return cs[0]
}

// Tail returns the branch's last candidate.
func (b *Branch) Tail() *candidate.Candidate {
	return b.c.nodes.Get(b.tail).cand
}
