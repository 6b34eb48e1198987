// Package metrics implements the scoring primitives shared by the Filter
// Cascade and the Scoring & Competitive Unit: the Excitatory/Inhibitory spike
// recurrence that drives a Stand-Alone Score walk, and the PER/QUAL/composite
// derived metrics computed from it (spec §4.5).
//
// Both filter and scu import this package rather than one importing the
// other, since the Filter Cascade's envelopment-removal stage needs the
// composite score (spec §4.3) well before a branch or a tournament exists.
package metrics

import "math"

// ExcitatorySpike advances score on a recognised, in-order continuation.
func ExcitatorySpike(score int) int {
	return int(math.Floor(float64(score)*0.9011 + 9.89 + 0.5))
}

// InhibitorySpike decays score on a recognised but out-of-order continuation.
func InhibitorySpike(score int) int {
	return int(math.Floor(float64(score)*0.9011 + 0.5))
}
