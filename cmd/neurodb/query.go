package main

import (
	"fmt"

	"github.com/coregx/neurodb/orchestrate"
	"github.com/spf13/cobra"
)

func newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <name> <input>",
		Short: "Run one recognition query against a single store (spec §6 option b)",
		Args:  cobra.ExactArgs(2),
	}
	resolveAgents := addAgentFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		name, input := args[0], args[1]

		store, err := loadStore(storeDir, name)
		if err != nil {
			return err
		}
		agents, err := resolveAgents()
		if err != nil {
			return err
		}

		o := orchestrate.New(store, orchestrate.DefaultConfig().WithAgents(agents))
		printResult(name, input, o.Recognize(input))
		return nil
	}
	return cmd
}

func printResult(storeName, input string, res orchestrate.Result) {
	switch {
	case res.Malformed:
		fmt.Printf("%s: %q -> no match (malformed input)\n", storeName, input)
	case len(res.Matches) == 0:
		fmt.Printf("%s: %q -> no match\n", storeName, input)
	case res.Ambiguous:
		fmt.Printf("%s: %q -> ambiguous (%d tied results):\n", storeName, input, len(res.Matches))
		for i, m := range res.Matches {
			fmt.Printf("  %d. %s\n", i+1, describeMatch(m))
		}
	default:
		fmt.Printf("%s: %q -> %s\n", storeName, input, describeMatch(res.Matches[0]))
	}
}

func describeMatch(m orchestrate.Match) string {
	out := ""
	for i, seg := range m.Segments {
		if i > 0 {
			out += " + "
		}
		out += fmt.Sprintf("%s[%d-%d]", seg.Name, seg.BB, seg.EB)
		if seg.Action != "" {
			out += fmt.Sprintf("(action=%s)", seg.Action)
		}
	}
	return out
}
