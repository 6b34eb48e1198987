package branch

import "github.com/coregx/neurodb/internal/limits"

// Config holds the Branch Assembler's tunables: the orphan-seeding PER
// floor and the live-branch-count pruning schedule (spec §4.4).
type Config struct {
	UnusedThreshold int

	PruneAt500, PER1Threshold   int
	PruneAt1000, PER2Threshold  int
	PruneAt3000, PER3Threshold  int
}

// DefaultConfig returns the Branch Assembler's default thresholds.
func DefaultConfig() Config {
	return Config{
		UnusedThreshold: limits.UnusedThreshold,
		PruneAt500:      limits.PruneAt500,
		PER1Threshold:   limits.PER1Threshold,
		PruneAt1000:     limits.PruneAt1000,
		PER2Threshold:   limits.PER2Threshold,
		PruneAt3000:     limits.PruneAt3000,
		PER3Threshold:   limits.PER3Threshold,
	}
}
