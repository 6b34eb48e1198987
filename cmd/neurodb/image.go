package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/coregx/neurodb/image"
	"github.com/spf13/cobra"
)

func newImageCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "image",
		Short: "Image digit recognition pipeline (spec §6 option e); feature extraction is an out-of-scope collaborator",
	}
	root.AddCommand(newImageRecognizeCmd())
	return root
}

func newImageRecognizeCmd() *cobra.Command {
	var samplesDir string
	cmd := &cobra.Command{
		Use:   "recognize <pixels-file>",
		Short: "Recognize one 28x28 pixel grid using stubbed feature extraction",
		Long: "Builds the 399 per-view IMAGE stores from labeled sample pixel grids in --samples,\n" +
			"then recognizes the given pixel grid via plurality vote across views (spec §6, §8 scenario 6).\n" +
			"Feature extraction uses image.StubExtractor — the real extraction pipeline is an\n" +
			"out-of-scope external collaborator (spec §1); this command exercises the adapter's\n" +
			"wiring contract, not a trained recognizer.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			samples, err := loadSamples(samplesDir)
			if err != nil {
				return err
			}
			if len(samples) == 0 {
				return fmt.Errorf("no sample pixel files found in %s", samplesDir)
			}

			stores, err := image.BuildViewStores(samples, image.StubExtractor{})
			if err != nil {
				return err
			}
			adapter := image.NewAdapter(stores, image.StubExtractor{})

			pixels, err := loadPixels(args[0])
			if err != nil {
				return err
			}

			digit, ok := adapter.Recognize(pixels)
			if !ok {
				fmt.Println("no match")
				return nil
			}
			fmt.Printf("recognized digit: %s\n", digit)
			return nil
		},
	}
	cmd.Flags().StringVar(&samplesDir, "samples", "", "directory of labeled sample pixel files (required)")
	cmd.MarkFlagRequired("samples")
	return cmd
}

// loadSamples reads every "<digit>_*.px" file under dir into an
// image.Sample, where the file's first underscore-delimited token is the
// training label.
func loadSamples(dir string) ([]image.Sample, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.px"))
	if err != nil {
		return nil, err
	}
	samples := make([]image.Sample, 0, len(matches))
	for _, m := range matches {
		label := strings.SplitN(filepath.Base(m), "_", 2)[0]
		pixels, err := loadPixels(m)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", m, err)
		}
		samples = append(samples, image.Sample{Label: label, Pixels: pixels})
	}
	return samples, nil
}

// loadPixels reads a 28x28 grid of whitespace-separated 0-255 intensities,
// one row per line.
func loadPixels(path string) (image.Pixels, error) {
	var px image.Pixels

	f, err := os.Open(path)
	if err != nil {
		return px, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	row := 0
	for scanner.Scan() && row < 28 {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		for col := 0; col < 28 && col < len(fields); col++ {
			v, err := strconv.Atoi(fields[col])
			if err != nil {
				return px, fmt.Errorf("row %d col %d: %w", row, col, err)
			}
			px[row][col] = uint8(v)
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return px, err
	}
	if row != 28 {
		return px, fmt.Errorf("expected 28 pixel rows, got %d", row)
	}
	return px, nil
}
