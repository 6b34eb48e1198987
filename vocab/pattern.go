package vocab

// PatternCode identifies a Pattern (Output Neuron) within a Store. Valid
// pattern codes start at 1.
type PatternCode int

// Pattern is a named recognizable unit: an "Output Neuron" (ON). Its
// Recognition List (RL) is the ordered sequence of symbol codes that spells
// the pattern left to right.
type Pattern struct {
	// Code is this pattern's dense, stable identifier (1..O).
	Code PatternCode

	// Name is the canonical display text for this pattern — for TEXT stores
	// this is the body reduced to uppercase letters and digits; for IMAGE
	// stores it is the uppercased body; for CENTRAL stores it is the
	// uppercased body with spaces removed (spec §6).
	Name string

	// Surrogate is an optional alternative display string. For CENTRAL
	// stores it holds the body exactly as given. For IMAGE stores
	// it accumulates the set of training labels that produced an identical
	// feature vector (e.g. "3,5"), comma-separated, in first-seen order.
	Surrogate string

	// Action is an opaque token interpreted by an external actuator when
	// this pattern is matched. Empty if the pattern carries no action.
	Action string

	// RL is the Recognition List: RL[i] is the symbol code at RL position
	// i+1 (RL is 0-indexed in memory, 1-indexed in the spec's "dpos"
	// terminology — see Len and SymbolAt, which takes a 1-based dpos).
	RL []SymbolCode
}

// Len returns the pattern's Recognition List length.
func (p *Pattern) Len() int {
	return len(p.RL)
}

// SymbolAt returns the symbol code at 1-based Recognition List position d,
// or 0 if d is out of range.
func (p *Pattern) SymbolAt(d int) SymbolCode {
	if d < 1 || d > len(p.RL) {
		return 0
	}
	return p.RL[d-1]
}
