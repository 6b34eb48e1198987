// Command neurodb is the CLI surface spec §6 describes: a menu-driven
// interactive loop, reachable here as subcommands (build/query/regress/
// query-all/image/agents) plus a `menu` subcommand that reproduces the
// original's numbered interactive loop directly. Grounded on
// AleutianAI-AleutianFOSS/cmd/aleutian's cobra wiring (RunE handlers,
// persistent flags; flag values here are bound to variables with
// StringVar/StringSliceVar) — the one pack repo with a real CLI-framework
// dependency.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var storeDir string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "neurodb",
		Short:         "Inexact, order-tolerant pattern matcher over user-defined vocabularies",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&storeDir, "store-dir", ".", "directory holding <name>.<TYPE>.ndb vocabulary files")

	root.AddCommand(
		newBuildCmd(),
		newQueryCmd(),
		newRegressCmd(),
		newQueryAllCmd(),
		newImageCmd(),
		newAgentsCmd(),
		newMenuCmd(),
	)
	return root
}
