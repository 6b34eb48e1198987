package filter

import (
	"github.com/coregx/neurodb/candidate"
	"github.com/coregx/neurodb/input"
	"github.com/coregx/neurodb/vocab"
)

// Run drives the full Filter Cascade over cands in the fixed order spec §4.3
// mandates: hit-threshold, anomaly-count, envelopment removal, anomalous and
// weak boundary retraction, boundary expansion, and weak-ON removal. Run does
// not perform the closing anomaly recount; FinalAnomalyCount computes it for
// one candidate when called, and no stage here calls it. Each stage may
// discard candidates or move a candidate's boundaries (retraction shrinks
// them, boundary expansion grows them); it never manufactures a new one.
func Run(store *vocab.Store, stream *input.Stream, cands []*candidate.Candidate, cfg Config) []*candidate.Candidate {
	c := hitThreshold(store, cands, cfg)
	c = anomalyCount(store, c, cfg)
	c = envelopmentRemoval(store, stream, c, cfg)
	c = anomalousBoundaryRetraction(store, stream, c)
	c = weakBoundaryRetraction(store, stream, c, cfg)
	c = boundaryExpansion(store, stream, c, cfg)
	c = weakONRemoval(store, stream, c, cfg)
	return c
}
