package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAgentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "agents",
		Short: "List the seven switchable SCU agents (spec §6 option f, §4.5)",
		Long: "Lists the seven evidential agents the Scoring & Competitive Unit runs between\n" +
			"two competing branches, in their fixed evaluation order. Pass --disable-agent to\n" +
			"`query`, `query-all`, or `regress` to switch individual agents off for that run.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, name := range agentNames {
				fmt.Printf("%d. %s\n", i+1, name)
			}
			return nil
		},
	}
}
