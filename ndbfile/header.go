package ndbfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/coregx/neurodb/vocab"
)

// StoreHeader mirrors the `NDB_HEAD` section a loaded store records (spec
// §6): creation timestamp, store ID, pattern/symbol/connection counts, and
// store type. It is the header-depth projection of a vocab.Store — the
// multithreaded full-database writer that produces the NDB_ON/NDB_RN/
// NDB_RN_TO_ON section bodies is explicitly out of scope (spec §1); this
// type and its Save/Load pair only round-trip the section that the CLI's
// "build" verb surfaces to a human (store ID, counts, type) without
// attempting to reconstruct a live Store from disk.
type StoreHeader struct {
	Created         string
	ID              int
	Type            vocab.Type
	PatternCount    int
	SymbolCount     int
	ConnectionCount int
}

// HeaderFromStore derives a StoreHeader from a built Store, stamping
// created as the caller-supplied timestamp (the core has no clock of its
// own — spec §1 names clock-based stubs out of scope).
func HeaderFromStore(id int, created string, s *vocab.Store) StoreHeader {
	return StoreHeader{
		Created:         created,
		ID:              id,
		Type:            s.Type(),
		PatternCount:    s.PatternCount(),
		SymbolCount:     s.SymbolCount(),
		ConnectionCount: s.ConnectionCount(),
	}
}

// SaveStoreHeader writes h as an `NDB_HEAD` section terminated by a blank
// line, followed by the `$$$ End Of File` marker (spec §6), matching the
// original loader's `key=value` line shape (`NdbLoad.c`'s `LoadHead`).
func SaveStoreHeader(w io.Writer, h StoreHeader) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "NDB_HEAD")
	fmt.Fprintf(bw, "Created=%s\n", h.Created)
	fmt.Fprintf(bw, "ID=%d\n", h.ID)
	fmt.Fprintf(bw, "Type=%s\n", h.Type)
	fmt.Fprintf(bw, "ONcount=%d\n", h.PatternCount)
	fmt.Fprintf(bw, "RNcount=%d\n", h.SymbolCount)
	fmt.Fprintf(bw, "ConnectCount=%d\n", h.ConnectionCount)
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "$$$ End Of File")
	return bw.Flush()
}

// LoadStoreHeader scans r for the `NDB_HEAD` section and parses its
// key=value lines up to the first blank line, mirroring `GetHeaderData`/
// `LoadHead` in the original loader. Returns ErrMissingHeader if no
// NDB_HEAD section is found before EOF.
func LoadStoreHeader(r io.Reader) (StoreHeader, error) {
	scanner := bufio.NewScanner(r)

	found := false
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == "NDB_HEAD" {
			found = true
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return StoreHeader{}, err
	}
	if !found {
		return StoreHeader{}, ErrMissingHeader
	}

	var h StoreHeader
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			break
		}
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		switch key {
		case "Created":
			h.Created = val
		case "ID":
			h.ID, _ = strconv.Atoi(val)
		case "Type":
			h.Type = parseType(val)
		case "ONcount":
			h.PatternCount, _ = strconv.Atoi(val)
		case "RNcount":
			h.SymbolCount, _ = strconv.Atoi(val)
		case "ConnectCount":
			h.ConnectionCount, _ = strconv.Atoi(val)
		}
	}
	if err := scanner.Err(); err != nil {
		return StoreHeader{}, err
	}
	return h, nil
}

func parseType(s string) vocab.Type {
	switch s {
	case "CENTRAL":
		return vocab.CENTRAL
	case "IMAGE":
		return vocab.IMAGE
	default:
		return vocab.TEXT
	}
}
