// Package orchestrate implements the Orchestrator (ORC): it drives a query
// through preprocessing, the Candidate Generator, the Filter Cascade, the
// Branch Assembler, and the SCU tournament, and surfaces the winning
// segmentation(s) (spec §2, §4.5, §7).
package orchestrate

import (
	"strings"
	"sync/atomic"

	"github.com/coregx/neurodb/branch"
	"github.com/coregx/neurodb/candidate"
	"github.com/coregx/neurodb/filter"
	"github.com/coregx/neurodb/input"
	"github.com/coregx/neurodb/scu"
	"github.com/coregx/neurodb/vocab"
)

// Config bundles the per-stage tunables the Orchestrator threads through the
// pipeline, along with which SCU agents are enabled.
type Config struct {
	Filter filter.Config
	Branch branch.Config
	Agents scu.AgentSet
}

// DefaultConfig returns the Orchestrator's default configuration: every
// stage's documented defaults, every SCU agent enabled.
func DefaultConfig() Config {
	return Config{
		Filter: filter.DefaultConfig(),
		Branch: branch.DefaultConfig(),
		Agents: scu.AllAgents(),
	}
}

// WithAgents returns a copy of cfg with its SCU agent selection replaced.
func (cfg Config) WithAgents(agents scu.AgentSet) Config {
	cfg.Agents = agents
	return cfg
}

// Stats counts how many queries have passed through each pipeline outcome.
// Safe for concurrent use; every field is updated with atomic.AddUint64.
//
// Stats must remain the first field of any struct embedding it, matching
// the layout the rest of this engine's stack uses to keep 64-bit atomics
// aligned on 32-bit platforms.
type Stats struct {
	Queries   uint64
	NoResults uint64
	Matches   uint64
	Ambiguous uint64
	Malformed uint64
}

// Match is one surfaced segmentation: the winning branch's candidates, each
// paired with its owning pattern's display name and action token.
type Match struct {
	Segments []Segment
}

// Segment names one candidate's resolved pattern within a winning branch.
type Segment struct {
	Name      string
	Surrogate string
	Action    string
	BB, EB    int
}

// Result is the Orchestrator's answer to one query (spec §7).
type Result struct {
	// Matches holds every winning segmentation. Exactly one entry unless
	// Ambiguous is true, in which case up to TOTAL_ALLOWED_RESULTS are
	// present.
	Matches []Match

	// Ambiguous is true when more than one branch survived the tournament
	// tied for best.
	Ambiguous bool

	// Malformed is true when the raw input resolved to no symbols at all in
	// the store's vocabulary (spec §7's MalformedInput, itself a NoResult).
	Malformed bool
}

// Orchestrator drives recognition queries against one Vocabulary Store.
type Orchestrator struct {
	stats     Stats
	store     *vocab.Store
	cfg       Config
	prefilter *candidate.Prefilter
}

// New returns an Orchestrator for store using cfg. It builds store's
// Aho-Corasick Prefilter once so every subsequent Recognize call can use
// it as a whole-query fast-reject gate (spec §4.2 stage 1 accelerator;
// see Recognize's use of MayMatch).
func New(store *vocab.Store, cfg Config) *Orchestrator {
	pf, err := candidate.NewPrefilter(store)
	if err != nil {
		pf = nil
	}
	return &Orchestrator{store: store, cfg: cfg, prefilter: pf}
}

// Stats returns a snapshot of the query counters.
func (o *Orchestrator) Stats() Stats {
	return Stats{
		Queries:   atomic.LoadUint64(&o.stats.Queries),
		NoResults: atomic.LoadUint64(&o.stats.NoResults),
		Matches:   atomic.LoadUint64(&o.stats.Matches),
		Ambiguous: atomic.LoadUint64(&o.stats.Ambiguous),
		Malformed: atomic.LoadUint64(&o.stats.Malformed),
	}
}

// Recognize runs one text query through the full pipeline. For CENTRAL
// stores, raw is matched as a whole phrase; for TEXT stores it is matched
// letter-by-letter.
func (o *Orchestrator) Recognize(raw string) Result {
	atomic.AddUint64(&o.stats.Queries, 1)

	if o.store.Type() == vocab.CENTRAL && !o.prefilter.MayMatch([]byte(strings.ToUpper(raw))) {
		// Not one vocabulary word appears anywhere in raw; CG would
		// necessarily return no candidates, so skip the pipeline entirely
		// (spec §4.2 stage 1 accelerator).
		atomic.AddUint64(&o.stats.NoResults, 1)
		return Result{}
	}

	var stream *input.Stream
	if o.store.Type() == vocab.CENTRAL {
		stream = input.PreprocessCentral(o.store, raw)
	} else {
		stream = input.PreprocessText(o.store, raw)
	}
	return o.run(stream)
}

// RecognizeImage runs one feature-code query (spec §6's image adapter
// interface) through the full pipeline.
func (o *Orchestrator) RecognizeImage(features []int) Result {
	atomic.AddUint64(&o.stats.Queries, 1)
	stream := input.PreprocessImage(o.store, features)
	return o.run(stream)
}

func (o *Orchestrator) run(stream *input.Stream) Result {
	if stream.Length == 0 || allZero(stream) {
		atomic.AddUint64(&o.stats.Malformed, 1)
		atomic.AddUint64(&o.stats.NoResults, 1)
		return Result{Malformed: true}
	}

	cands := candidate.Generate(o.store, stream)
	survivors := filter.Run(o.store, stream, cands, o.cfg.Filter)
	branches := branch.Assemble(o.store, stream, survivors, o.cfg.Branch)
	tournament := scu.Run(o.store, stream, branches, o.cfg.Agents)

	if len(tournament.Winners) == 0 {
		atomic.AddUint64(&o.stats.NoResults, 1)
		return Result{}
	}

	matches := make([]Match, len(tournament.Winners))
	for i, w := range tournament.Winners {
		matches[i] = o.toMatch(w)
	}

	atomic.AddUint64(&o.stats.Matches, 1)
	if tournament.Ambiguous {
		atomic.AddUint64(&o.stats.Ambiguous, 1)
	}
	return Result{Matches: matches, Ambiguous: tournament.Ambiguous}
}

func (o *Orchestrator) toMatch(w *scu.Competitor) Match {
	cs := w.Branch.Candidates()
	segs := make([]Segment, len(cs))
	for i, c := range cs {
		p := o.store.Pattern(c.Pattern)
		segs[i] = Segment{Name: p.Name, Surrogate: p.Surrogate, Action: p.Action, BB: c.BB, EB: c.EB}
	}
	return Match{Segments: segs}
}

func allZero(stream *input.Stream) bool {
	for _, s := range stream.ISRN {
		if s != 0 {
			return false
		}
	}
	return true
}
