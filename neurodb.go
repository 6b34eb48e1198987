// Package neurodb provides an inexact, order-tolerant symbol-pattern
// matcher: compile a set of patterns into a Vocabulary Store and recognize
// queries against it through the Candidate Generator, Filter Cascade,
// Branch Assembler, and SCU tournament (spec §2, §4).
//
// Basic usage:
//
//	engine, err := neurodb.Compile(neurodb.CENTRAL, []neurodb.Pattern{
//	    {Body: "what time is it", Action: "ACT_TIME"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result := engine.Recognize("what time is it please")
package neurodb

import (
	"github.com/coregx/neurodb/orchestrate"
	"github.com/coregx/neurodb/vocab"
)

// Type distinguishes the three Vocabulary Store variants (spec §3): TEXT,
// CENTRAL, and IMAGE patterns.
type Type = vocab.Type

const (
	TEXT    = vocab.TEXT
	CENTRAL = vocab.CENTRAL
	IMAGE   = vocab.IMAGE
)

// Pattern describes one pattern to compile into the engine. It is an alias
// for vocab.PatternSpec so callers never need to import vocab directly for
// the common case.
type Pattern = vocab.PatternSpec

// Result is one query's recognition outcome (spec §7).
type Result = orchestrate.Result

// Config bundles the per-stage tunables Recognize uses; the zero value is
// invalid, use DefaultConfig.
type Config = orchestrate.Config

// DefaultConfig returns the engine's default configuration: every stage's
// documented defaults, every SCU agent enabled.
func DefaultConfig() Config {
	return orchestrate.DefaultConfig()
}

// Engine is a compiled Vocabulary Store ready to recognize queries against
// it, mirroring the teacher's Regex type: a thin wrapper pairing a compiled
// program (here, a vocab.Store) with the driver that runs queries through
// it (here, an orchestrate.Orchestrator).
type Engine struct {
	orc *orchestrate.Orchestrator
}

// Compile builds a Vocabulary Store of the given type from patterns and
// returns an Engine ready to recognize queries against it, using
// DefaultConfig.
//
// Example:
//
//	engine, err := neurodb.Compile(neurodb.TEXT, []neurodb.Pattern{
//	    {Body: "friday"}, {Body: "saturday"}, {Body: "sunday"},
//	})
func Compile(storeType Type, patterns []Pattern) (*Engine, error) {
	return CompileWithConfig(storeType, patterns, DefaultConfig())
}

// CompileWithConfig is Compile with an explicit Config rather than
// DefaultConfig, for callers who need to tune the Filter Cascade, Branch
// Assembler, or SCU agent selection.
func CompileWithConfig(storeType Type, patterns []Pattern, cfg Config) (*Engine, error) {
	store, err := vocab.Build(storeType, patterns)
	if err != nil {
		return nil, err
	}
	return &Engine{orc: orchestrate.New(store, cfg)}, nil
}

// MustCompile is like Compile but panics if the patterns fail to compile.
// Useful for vocabularies known to be valid at startup.
func MustCompile(storeType Type, patterns []Pattern) *Engine {
	e, err := Compile(storeType, patterns)
	if err != nil {
		panic("neurodb: Compile: " + err.Error())
	}
	return e
}

// Recognize runs one text query through the full pipeline (spec §4.5, §7).
// For CENTRAL stores raw is matched as a whole phrase; for TEXT stores it is
// matched letter-by-letter.
func (e *Engine) Recognize(raw string) Result {
	return e.orc.Recognize(raw)
}

// RecognizeImage runs one pre-derived feature-code query (spec §6) through
// the full pipeline. Only meaningful for an Engine compiled with IMAGE.
func (e *Engine) RecognizeImage(features []int) Result {
	return e.orc.RecognizeImage(features)
}

// Stats returns a snapshot of the Engine's query counters.
func (e *Engine) Stats() orchestrate.Stats {
	return e.orc.Stats()
}
