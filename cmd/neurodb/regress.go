package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/coregx/neurodb/orchestrate"
	"github.com/spf13/cobra"
)

func newRegressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regress <name> <regression-file>",
		Short: "Run a regression test file against a store and tally pass/fail (spec §6 option c, NdbTest.c)",
		Args:  cobra.ExactArgs(2),
	}
	resolveAgents := addAgentFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		name, file := args[0], args[1]

		store, err := loadStore(storeDir, name)
		if err != nil {
			return err
		}
		cases, err := parseRegressionFile(file)
		if err != nil {
			return err
		}
		agents, err := resolveAgents()
		if err != nil {
			return err
		}

		o := orchestrate.New(store, orchestrate.DefaultConfig().WithAgents(agents))
		report := orchestrate.RunRegression(o, cases)

		for _, r := range report.Results {
			status := "PASS"
			if !r.Passed {
				status = "FAIL"
			}
			fmt.Printf("[%s] %q -> got %q want %q (ambiguous=%v)\n", status, r.Input, r.Got, r.Want, r.Ambiguous)
		}
		fmt.Printf("%d passed, %d failed\n", report.Passed, report.Failed)
		if report.Failed > 0 {
			return fmt.Errorf("%d regression case(s) failed", report.Failed)
		}
		return nil
	}
	return cmd
}

// parseRegressionFile reads "INPUT -> WANT" lines (spec-derived from
// NdbTest.c's regression format), one case per line. Blank lines and lines
// starting with '#' are ignored.
func parseRegressionFile(path string) ([]orchestrate.Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cases []orchestrate.Case
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		input, want, ok := strings.Cut(line, "->")
		if !ok {
			return nil, fmt.Errorf("malformed regression line: %q", line)
		}
		cases = append(cases, orchestrate.Case{
			Input: strings.TrimSpace(input),
			Want:  strings.TrimSpace(want),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cases, nil
}
