package main

import (
	"fmt"
	"strings"

	"github.com/coregx/neurodb/scu"
	"github.com/spf13/cobra"
)

// agentNames lists the seven switchable SCU agents spec §4.5 names, in
// their fixed evaluation order, for the CLI's --disable-agent flag (spec
// §6 option f: "toggle each of the seven SCU agents independently").
var agentNames = []string{"spaceb", "anomaly", "rec", "minpr", "bound", "uncount", "mislead"}

// addAgentFlags registers a repeatable --disable-agent flag on cmd and
// returns a function that resolves the current flag value into an
// AgentSet (default: every agent enabled).
func addAgentFlags(cmd *cobra.Command) func() (scu.AgentSet, error) {
	var disabled []string
	cmd.Flags().StringSliceVar(&disabled, "disable-agent", nil,
		"disable one or more SCU agents: "+strings.Join(agentNames, ","))
	return func() (scu.AgentSet, error) {
		return agentSetFromDisabled(disabled)
	}
}

func agentSetFromDisabled(disabled []string) (scu.AgentSet, error) {
	set := scu.AllAgents()
	for _, name := range disabled {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "spaceb":
			set.SpaceB = false
		case "anomaly":
			set.Anomaly = false
		case "rec":
			set.Rec = false
		case "minpr":
			set.MinPR = false
		case "bound":
			set.Bound = false
		case "uncount":
			set.UnCount = false
		case "mislead":
			set.MisLead = false
		default:
			return set, fmt.Errorf("unknown agent %q (want one of %s)", name, strings.Join(agentNames, ","))
		}
	}
	return set, nil
}
