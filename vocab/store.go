package vocab

import (
	"strconv"
	"strings"

	"github.com/coregx/neurodb/internal/ascii"
	"github.com/coregx/neurodb/internal/limits"
)

// Type distinguishes the three store variants named in spec §3. Type only
// affects preprocessing (how a pattern body becomes a Recognition List) and
// whether the Filter Cascade's hit-threshold and anomaly-count stages apply
// — CENTRAL patterns are never pruned by those two stages because their
// symbols are whole words and positions matter precisely.
//
// This is the sum-type replacement the design notes call for, in place of
// the original's strcmp(Type, "TEXT"/"CENTRAL"/"IMAGE") dispatch.
type Type int

const (
	// TEXT stores hold letter-and-digit patterns; each ASCII character is a
	// symbol.
	TEXT Type = iota
	// CENTRAL stores hold whole-word patterns; each space-separated word is
	// a symbol and position matters exactly (no hit/anomaly filtering).
	CENTRAL
	// IMAGE stores hold patterns whose Recognition List is a fixed-length
	// vector of externally supplied feature codes.
	IMAGE
)

func (t Type) String() string {
	switch t {
	case TEXT:
		return "TEXT"
	case CENTRAL:
		return "CENTRAL"
	case IMAGE:
		return "IMAGE"
	default:
		return "UNKNOWN"
	}
}

// SkipsHitAndAnomalyFilters reports whether this store type skips the
// Filter Cascade's hit-threshold and anomaly-count stages (spec §4.3).
func (t Type) SkipsHitAndAnomalyFilters() bool {
	return t == CENTRAL
}

// PatternSpec describes one pattern to insert during Store construction.
//
// For TEXT and CENTRAL stores, Body is the raw pattern text and is
// normalized according to Type (see Build). For IMAGE stores, Body is
// ignored and FeatureRL supplies the Recognition List directly as a
// sequence of feature codes.
type PatternSpec struct {
	Body      string
	Surrogate string
	Action    string
	FeatureRL []int // IMAGE stores only
}

// Store is the Vocabulary Store (VS): the read-only, built-once index of
// patterns, symbols, and their Connections.
type Store struct {
	storeType Type

	patterns []Pattern // index 0 unused; patterns[code] for code >= 1
	symbols  []Symbol  // index 0 unused; symbols[code] for code >= 1

	// conns indexes Connections by symbol code for O(1) lookup during
	// Candidate Generation (spec §4.2 stage 1).
	conns map[SymbolCode][]Connection

	symbolByPayload map[string]SymbolCode
	symbolByFeature map[int]SymbolCode
	patternByRL     map[string]PatternCode
	patternByName   map[string]PatternCode
}

// Type returns the store's variant.
func (s *Store) Type() Type { return s.storeType }

// Pattern returns the pattern with the given code, or nil if code is out of
// range.
func (s *Store) Pattern(code PatternCode) *Pattern {
	if code < 1 || int(code) >= len(s.patterns) {
		return nil
	}
	return &s.patterns[code]
}

// Symbol returns the symbol with the given code, or nil if code is out of
// range.
func (s *Store) Symbol(code SymbolCode) *Symbol {
	if code < 1 || int(code) >= len(s.symbols) {
		return nil
	}
	return &s.symbols[code]
}

// SymbolByPayload looks up a TEXT/CENTRAL symbol by its textual payload.
// Returns 0 if no such symbol exists.
func (s *Store) SymbolByPayload(payload string) SymbolCode {
	return s.symbolByPayload[payload]
}

// SymbolByFeature looks up an IMAGE symbol by its feature code. Returns 0
// if no such symbol exists.
func (s *Store) SymbolByFeature(feature int) SymbolCode {
	return s.symbolByFeature[feature]
}

// PatternByName looks up a pattern by its display name. Returns 0 if no
// such pattern exists.
func (s *Store) PatternByName(name string) PatternCode {
	return s.patternByName[name]
}

// Connections returns the Connections whose symbol is sym, in pattern
// insertion order then ascending RL position — a deterministic order the
// Candidate Generator relies on (spec §4.2, §8 "sortD stable").
func (s *Store) Connections(sym SymbolCode) []Connection {
	return s.conns[sym]
}

// PatternCount, SymbolCount, ConnectionCount report the store's size for
// the NDB_HEAD persistence fields (spec §6).
func (s *Store) PatternCount() int { return len(s.patterns) - 1 }
func (s *Store) SymbolCount() int  { return len(s.symbols) - 1 }
func (s *Store) ConnectionCount() int {
	n := 0
	for _, c := range s.conns {
		n += len(c)
	}
	return n
}

// Build constructs a Store from the given pattern specs, normalizing each
// body according to storeType (spec §4.1).
func Build(storeType Type, specs []PatternSpec) (*Store, error) {
	s := &Store{
		storeType:       storeType,
		patterns:        make([]Pattern, 1, len(specs)+1),
		symbols:         make([]Symbol, 1, 64),
		conns:           make(map[SymbolCode][]Connection),
		symbolByPayload: make(map[string]SymbolCode),
		symbolByFeature: make(map[int]SymbolCode),
		patternByRL:     make(map[string]PatternCode),
		patternByName:   make(map[string]PatternCode),
	}

	for _, spec := range specs {
		rl, err := s.normalize(storeType, spec)
		if err != nil {
			return nil, &BuildError{Pattern: spec.Body, Err: err}
		}
		if len(rl) == 0 {
			continue // body normalized to nothing; silently skip, like the original's empty-line handling
		}
		if len(rl) > limits.InquiryLength {
			return nil, &BuildError{Pattern: spec.Body, Err: ErrInvalidPatternLength}
		}
		if err := s.insertPattern(storeType, spec, rl); err != nil {
			return nil, &BuildError{Pattern: spec.Body, Err: err}
		}
	}

	if len(s.patterns) == 1 {
		return nil, ErrEmptyVocabulary
	}

	if err := s.validateConsistency(); err != nil {
		return nil, err
	}

	return s, nil
}

// normalize converts a PatternSpec's body into a Recognition List of symbol
// codes, allocating new symbol codes for payloads/features not seen before.
func (s *Store) normalize(storeType Type, spec PatternSpec) ([]SymbolCode, error) {
	switch storeType {
	case TEXT:
		clean := ascii.UppercaseASCIIAlnum([]byte(spec.Body))
		clean = ascii.CollapseRepeats(clean)
		rl := make([]SymbolCode, 0, len(clean))
		for _, b := range clean {
			rl = append(rl, s.symbolForPayload(string(b)))
		}
		return rl, nil

	case CENTRAL:
		words := strings.Fields(strings.ToUpper(strings.TrimSpace(spec.Body)))
		rl := make([]SymbolCode, 0, len(words))
		for _, w := range words {
			rl = append(rl, s.symbolForPayload(w))
		}
		return rl, nil

	case IMAGE:
		rl := make([]SymbolCode, 0, len(spec.FeatureRL))
		for _, f := range spec.FeatureRL {
			rl = append(rl, s.symbolForFeature(f))
		}
		return rl, nil
	}
	return nil, ErrInconsistentVocabulary
}

func (s *Store) symbolForPayload(payload string) SymbolCode {
	if code, ok := s.symbolByPayload[payload]; ok {
		return code
	}
	code := SymbolCode(len(s.symbols))
	s.symbols = append(s.symbols, Symbol{Code: code, Payload: payload})
	s.symbolByPayload[payload] = code
	return code
}

func (s *Store) symbolForFeature(feature int) SymbolCode {
	if code, ok := s.symbolByFeature[feature]; ok {
		return code
	}
	code := SymbolCode(len(s.symbols))
	s.symbols = append(s.symbols, Symbol{Code: code, Feature: feature})
	s.symbolByFeature[feature] = code
	return code
}

// insertPattern inserts a normalized pattern, or — if a pattern with the
// identical Recognition List already exists — appends spec.Surrogate to the
// existing pattern's surrogate set (spec §4.1: "a repeat insertion instead
// appends the new label to the existing pattern's surrogate", used when two
// distinct MNIST images share a feature vector). Returns ErrDuplicateName if
// a distinct Recognition List computes a Name already claimed by an earlier
// pattern (spec §3 VS invariant: pattern names are unique).
func (s *Store) insertPattern(storeType Type, spec PatternSpec, rl []SymbolCode) error {
	key := rlKey(rl)
	if existing, ok := s.patternByRL[key]; ok {
		p := &s.patterns[existing]
		if spec.Surrogate != "" {
			if p.Surrogate == "" {
				p.Surrogate = spec.Surrogate
			} else if !containsLabel(p.Surrogate, spec.Surrogate) {
				p.Surrogate = p.Surrogate + "," + spec.Surrogate
			}
		}
		return nil
	}

	name, surrogate := displayName(storeType, spec)
	if name != "" {
		if _, ok := s.patternByName[name]; ok {
			return ErrDuplicateName
		}
	}

	code := PatternCode(len(s.patterns))
	p := Pattern{
		Code:      code,
		Name:      name,
		Surrogate: surrogate,
		Action:    spec.Action,
		RL:        rl,
	}
	s.patterns = append(s.patterns, p)
	s.patternByRL[key] = code
	if name != "" {
		s.patternByName[name] = code
	}

	for i, sym := range rl {
		pos := i + 1
		s.conns[sym] = append(s.conns[sym], Connection{Symbol: sym, Position: pos, Pattern: code})
	}
	return nil
}

// displayName computes a pattern's stored Name and initial Surrogate
// following the on-disk convention from spec §6: for CENTRAL stores the ON
// is the uppercased body with spaces removed and the surrogate receives the
// body verbatim; for TEXT the ON is the body reduced to uppercase letters
// and digits; for IMAGE it is the uppercased, trimmed body. TEXT and IMAGE
// keep the caller-supplied surrogate.
func displayName(storeType Type, spec PatternSpec) (name, surrogate string) {
	switch storeType {
	case CENTRAL:
		words := strings.Fields(strings.ToUpper(strings.TrimSpace(spec.Body)))
		return strings.Join(words, ""), spec.Body
	case TEXT:
		return string(ascii.UppercaseASCIIAlnum([]byte(spec.Body))), spec.Surrogate
	default:
		name = strings.ToUpper(strings.TrimSpace(spec.Body))
		return name, spec.Surrogate
	}
}

func rlKey(rl []SymbolCode) string {
	var b strings.Builder
	for _, c := range rl {
		b.WriteString(strconv.Itoa(int(c)))
		b.WriteByte(',')
	}
	return b.String()
}

func containsLabel(surrogate, label string) bool {
	for _, part := range strings.Split(surrogate, ",") {
		if part == label {
			return true
		}
	}
	return false
}

// validateConsistency checks the invariant that every RL entry references a
// valid symbol (spec §4.1 fatal InconsistentVocabulary).
func (s *Store) validateConsistency() error {
	for code := 1; code < len(s.patterns); code++ {
		p := &s.patterns[code]
		for _, sym := range p.RL {
			if sym < 1 || int(sym) >= len(s.symbols) {
				return &BuildError{Pattern: p.Name, Err: ErrInconsistentVocabulary}
			}
		}
	}
	return nil
}
