package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/coregx/neurodb/ndbfile"
	"github.com/coregx/neurodb/vocab"
	"github.com/spf13/cobra"
)

func newBuildCmd() *cobra.Command {
	var typeFlag string

	cmd := &cobra.Command{
		Use:   "build <name> <vocab-file>",
		Short: "Build a Vocabulary Store from a `;;`-record vocabulary text file (spec §6 option a)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, vocabFile := args[0], args[1]

			t, err := parseTypeFlag(typeFlag)
			if err != nil {
				return err
			}

			store, err := buildStoreFromVocabFile(vocabFile, t)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(storeDir, 0o755); err != nil {
				return err
			}
			dst := filepath.Join(storeDir, storeFileName(name, t))
			if err := copyVocabFile(vocabFile, dst); err != nil {
				return err
			}

			h := ndbfile.HeaderFromStore(1, time.Now().UTC().Format(time.RFC3339), store)
			fmt.Printf("built store %q: type=%s patterns=%d symbols=%d connections=%d\n",
				name, h.Type, h.PatternCount, h.SymbolCount, h.ConnectionCount)
			return nil
		},
	}
	cmd.Flags().StringVar(&typeFlag, "type", "text", "store type: text, central, or image")
	return cmd
}

func parseTypeFlag(s string) (vocab.Type, error) {
	switch s {
	case "text", "TEXT":
		return vocab.TEXT, nil
	case "central", "CENTRAL":
		return vocab.CENTRAL, nil
	case "image", "IMAGE":
		return vocab.IMAGE, nil
	default:
		return vocab.TEXT, fmt.Errorf("unknown store type %q (want text, central, or image)", s)
	}
}

func copyVocabFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}
