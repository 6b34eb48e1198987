// Package filter implements the Filter Cascade (FC): a fixed sequence of
// discard-only passes over a Candidate Generator's output that prunes weak,
// overlapping, or structurally anomalous Bound Sections before the Branch
// Assembler ever sees them (spec §4.3).
//
// Every stage removes candidates or moves a candidate's boundaries (retraction
// shrinks them, boundary expansion grows them); none ever invents a new one. CENTRAL stores skip the hit-threshold and
// anomaly-count stages, since their symbols are whole words and positional
// exactness already does the pruning's job.
package filter

import "github.com/coregx/neurodb/internal/limits"

// Config holds the Filter Cascade's tunable thresholds. DefaultConfig
// reproduces the reference corpus's defaults (spec §4.3).
type Config struct {
	HitThreshold             float64
	AnomalyThreshold         float64
	EnvelopmentThreshold     int
	RetractBoundaryThreshold int
	WeakONThreshold          float64
}

// DefaultConfig returns the cascade's default thresholds.
func DefaultConfig() Config {
	return Config{
		HitThreshold:             limits.HitThreshold,
		AnomalyThreshold:         limits.AnomalyThreshold,
		EnvelopmentThreshold:     limits.EnvelopmentThreshold,
		RetractBoundaryThreshold: limits.RetractBoundaryThreshold,
		WeakONThreshold:          float64(limits.WeakONThreshold),
	}
}
