package vocab

import (
	"errors"
	"fmt"
)

// Common Vocabulary Store errors (spec §4.1, §7).
var (
	// ErrEmptyVocabulary indicates a build was attempted with no patterns
	// derived from the source input.
	ErrEmptyVocabulary = errors.New("vocab: empty vocabulary")

	// ErrInconsistentVocabulary indicates a Recognition List referenced a
	// symbol code with no corresponding Symbol record. This is fatal: it
	// means the caller constructed an inconsistent pattern set.
	ErrInconsistentVocabulary = errors.New("vocab: inconsistent vocabulary")

	// ErrInvalidPatternLength indicates a pattern's Recognition List is
	// empty or exceeds INQUIRY_LENGTH.
	ErrInvalidPatternLength = errors.New("vocab: invalid pattern length")

	// ErrDuplicateName indicates two distinct pattern bodies were given the
	// same display name.
	ErrDuplicateName = errors.New("vocab: duplicate pattern name")
)

// BuildError wraps a build-time failure with the offending pattern's name
// for context, mirroring the teacher's CompileError/BuildError pattern.
type BuildError struct {
	Pattern string
	Err     error
}

func (e *BuildError) Error() string {
	if e.Pattern != "" {
		return fmt.Sprintf("vocab: build failed for pattern %q: %v", e.Pattern, e.Err)
	}
	return fmt.Sprintf("vocab: build failed: %v", e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}
