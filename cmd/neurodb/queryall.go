package main

import (
	"fmt"

	"github.com/coregx/neurodb/orchestrate"
	"github.com/spf13/cobra"
)

func newQueryAllCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query-all <input>",
		Short: "Run one recognition query against every store in --store-dir (spec §6 option d)",
		Args:  cobra.ExactArgs(1),
	}
	resolveAgents := addAgentFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		input := args[0]

		names, err := listStores(storeDir)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Println("no stores found in", storeDir)
			return nil
		}
		agents, err := resolveAgents()
		if err != nil {
			return err
		}

		for _, name := range names {
			store, err := loadStore(storeDir, name)
			if err != nil {
				fmt.Printf("%s: error: %v\n", name, err)
				continue
			}
			o := orchestrate.New(store, orchestrate.DefaultConfig().WithAgents(agents))
			printResult(name, input, o.Recognize(input))
		}
		return nil
	}
	return cmd
}
