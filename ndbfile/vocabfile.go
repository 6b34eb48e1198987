// Package ndbfile implements the on-disk collaborators spec §6 names at
// interface depth: the `;;`-record vocabulary text format that produces a
// vocab.Store's PatternSpec list, and the NDB_HEAD section of the
// persistence layout. The NDB_ON/NDB_RN/NDB_RN_TO_ON section bodies are
// neither read nor written here.
// Multithreaded construction and a full writer are explicitly OUT OF SCOPE
// (spec §1: "the core loads from an already-parsed in-memory structure");
// this package is that in-memory structure's producer and consumer, kept
// to parsing depth.
package ndbfile

import (
	"bufio"
	"io"
	"strings"

	"github.com/coregx/neurodb/vocab"
)

// ParseVocabularyFile reads a `;;`-record vocabulary text file and returns
// the PatternSpecs it describes, in file order (spec §6). Each `;;` line
// is a comma-separated list of patterns; each pattern is
// `BODY[:SURROGATE[:ACTION]]`. Non-record lines (blank, comments without
// the `;;` marker) are ignored.
func ParseVocabularyFile(r io.Reader) ([]vocab.PatternSpec, error) {
	var specs []vocab.PatternSpec

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, ";;") {
			continue
		}
		rest := strings.TrimSpace(strings.TrimPrefix(line, ";;"))
		if rest == "" {
			continue
		}
		for _, tok := range strings.Split(rest, ",") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			specs = append(specs, parsePatternToken(tok))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(specs) == 0 {
		return nil, vocab.ErrEmptyVocabulary
	}
	return specs, nil
}

// parsePatternToken splits one `BODY[:SURROGATE[:ACTION]]` token.
func parsePatternToken(tok string) vocab.PatternSpec {
	parts := strings.SplitN(tok, ":", 3)
	spec := vocab.PatternSpec{Body: parts[0]}
	if len(parts) > 1 {
		spec.Surrogate = parts[1]
	}
	if len(parts) > 2 {
		spec.Action = parts[2]
	}
	return spec
}

// WriteVocabularyFile serializes specs back into the `;;`-record format, one
// record per line, preserving input order. Round-tripping
// ParseVocabularyFile(WriteVocabularyFile(specs)) reproduces specs' Body/
// Surrogate/Action exactly (spec §8's round-trip law).
func WriteVocabularyFile(w io.Writer, specs []vocab.PatternSpec) error {
	bw := bufio.NewWriter(w)
	for _, spec := range specs {
		if _, err := bw.WriteString(";; " + formatPatternToken(spec) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func formatPatternToken(spec vocab.PatternSpec) string {
	tok := spec.Body
	if spec.Action != "" {
		tok += ":" + spec.Surrogate + ":" + spec.Action
	} else if spec.Surrogate != "" {
		tok += ":" + spec.Surrogate
	}
	return tok
}
