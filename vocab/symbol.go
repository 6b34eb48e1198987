// Package vocab implements the Vocabulary Store (VS): the in-memory index
// of patterns (Output Neurons, ONs), symbols (Recognition Neurons, RNs),
// and the symbol-to-pattern-position Connections precomputed from every
// pattern's Recognition List.
//
// A Store is built once at startup from a list of pattern specs and is
// read-only for the lifetime of every recognition query run against it
// (spec §3: "Nothing in the core mutates the VS").
package vocab

// SymbolCode identifies a Symbol (Recognition Neuron) within a Store.
// Code 0 is the reserved end-of-stream sentinel (spec §3); valid symbol
// codes start at 1.
type SymbolCode int

// Symbol is an abstract "Recognition Neuron": a single letter, an uppercase
// word, or an image feature code, depending on the owning Store's Type.
type Symbol struct {
	// Code is this symbol's dense, stable identifier (1..R).
	Code SymbolCode

	// Payload is the textual form of the symbol: a single uppercase ASCII
	// character for TEXT stores, an uppercase word for CENTRAL stores, and
	// empty for IMAGE stores (image symbols are addressed by Feature only).
	Payload string

	// Feature is the categorical feature code for IMAGE stores. It is
	// unused (zero) for TEXT and CENTRAL stores, where Payload is
	// authoritative.
	Feature int
}
