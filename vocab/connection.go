package vocab

// Connection is a precomputed triple meaning "symbol Symbol appears at
// Recognition List position Position within pattern Pattern's RL"
// (spec §3). Every pattern's RL is expanded into one Connection per
// (symbol, position) pair at build time; the Candidate Generator walks
// Connections keyed by symbol to enumerate every hypothetical match.
type Connection struct {
	Symbol   SymbolCode
	Position int // 1-based position (dpos) within the owning pattern's RL
	Pattern  PatternCode
}
