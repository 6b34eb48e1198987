// Package limits centralizes the compile-time bound and default threshold
// constants named throughout the specification (INQUIRY_LENGTH and the
// Filter Cascade / Branch Assembler / SCU default thresholds), so every
// package that needs one of these numbers imports a single source of truth
// instead of redeclaring it.
//
// Every consuming package still exposes its own Config struct with these as
// documented defaults (per the teacher's meta.Config / lazy.Config pattern);
// this package only owns the numbers themselves.
package limits

// InquiryLength is the compile-time bound on Input Stream length (spec §3).
// Candidates, branches, and per-query scratch arrays are all sized or capped
// relative to this constant.
const InquiryLength = 512

// HitThreshold is the default Hit-Threshold cutoff (spec §4.3): a candidate
// is discarded when RNhits/Len(P) <= HitThreshold. Skipped for CENTRAL stores.
const HitThreshold = 0.33

// AnomalyThreshold is the default Anomaly-Count cutoff (spec §4.3): a
// candidate is discarded when cntA/Len(P) >= AnomalyThreshold. Skipped for
// CENTRAL stores.
const AnomalyThreshold = 0.50

// EnvelopmentThreshold is the minimum percent-recognition (0-100) an
// envelopping candidate X must have before it can remove an enveloped Y
// (spec §4.3).
const EnvelopmentThreshold = 50

// RetractBoundaryThreshold is the minimum recomputed PER a weak-boundary
// candidate must retain after shrinking, or it is dropped (spec §4.3).
const RetractBoundaryThreshold = 50

// WeakONThreshold is the default Weak-ON removal cutoff: a candidate is
// discarded when C*(EB-BB+1) <= WeakONThreshold (spec §4.3).
const WeakONThreshold = 150

// UnusedThreshold is the PER an orphan candidate must exceed to seed its
// own branch in the Branch Assembler (spec §4.4).
const UnusedThreshold = 50

// Branch-pruning live-branch-count thresholds and their matching PER
// cutoffs (spec §4.4). When the live branch count exceeds the first number,
// branches whose weakest candidate falls below the matching PER are culled;
// the heuristic tightens as branch counts grow.
const (
	PruneAt500  = 500
	PER1Threshold = 70

	PruneAt1000 = 1000
	PER2Threshold = 80

	PruneAt3000 = 3000
	PER3Threshold = 90
)

// TotalAllowedResults caps the number of winners surfaced from an Ambiguous
// tournament outcome (spec §4.5, §7).
const TotalAllowedResults = 5
