package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/coregx/neurodb/ndbfile"
	"github.com/coregx/neurodb/vocab"
)

// storeFileName returns the on-disk name a store of the given type is
// saved under: "<name>.<TYPE>.ndb" (spec §6's persistence layout, at the
// parsing depth this CLI operates — see ndbfile package doc).
func storeFileName(name string, t vocab.Type) string {
	return name + "." + t.String() + ".ndb"
}

// parseStoreFileType extracts the Type embedded in a store file name
// produced by storeFileName, defaulting to TEXT if the name carries no
// recognizable type suffix.
func parseStoreFileType(fname string) vocab.Type {
	base := strings.TrimSuffix(filepath.Base(fname), ".ndb")
	switch {
	case strings.HasSuffix(base, ".CENTRAL"):
		return vocab.CENTRAL
	case strings.HasSuffix(base, ".IMAGE"):
		return vocab.IMAGE
	default:
		return vocab.TEXT
	}
}

// storeDisplayName strips the type suffix and .ndb extension, recovering
// the bare store name passed to `neurodb build`.
func storeDisplayName(fname string) string {
	base := strings.TrimSuffix(filepath.Base(fname), ".ndb")
	base = strings.TrimSuffix(base, ".TEXT")
	base = strings.TrimSuffix(base, ".CENTRAL")
	base = strings.TrimSuffix(base, ".IMAGE")
	return base
}

// buildStoreFromVocabFile parses a `;;`-record vocabulary text file and
// builds a Store of the given type (spec §4.1, §6).
func buildStoreFromVocabFile(path string, t vocab.Type) (*vocab.Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vocabulary file: %w", err)
	}
	defer f.Close()

	specs, err := ndbfile.ParseVocabularyFile(f)
	if err != nil {
		return nil, fmt.Errorf("parse vocabulary file: %w", err)
	}
	return vocab.Build(t, specs)
}

// loadStore rebuilds the named store from storeDir by re-parsing its saved
// vocabulary file (spec §1: "the core loads from an already-parsed
// in-memory structure" — here, the vocabulary-file parse is that step).
func loadStore(dir, name string) (*vocab.Store, error) {
	matches, err := filepath.Glob(filepath.Join(dir, name+".*.ndb"))
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no store named %q in %s", name, dir)
	}
	path := matches[0]
	return buildStoreFromVocabFile(path, parseStoreFileType(path))
}

// listStores returns every store file's bare name under dir.
func listStores(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.ndb"))
	if err != nil {
		return nil, err
	}
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = storeDisplayName(m)
	}
	return names, nil
}
