package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/coregx/neurodb/orchestrate"
	"github.com/coregx/neurodb/scu"
	"github.com/spf13/cobra"
)

func newMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the numbered interactive menu loop (spec §6)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(os.Stdin, os.Stdout)
		},
	}
}

// runMenu drives the numbered interactive loop spec §6 describes: build
// stores, query a single store, run a regression file, query all stores,
// and toggle each of the seven SCU agents independently. The image option
// does not run the image pipeline from the menu; it prints the
// `neurodb image recognize` command to run from the shell. Unlike the one-shot subcommands, the menu's agent
// toggles persist across choices within one session, mirroring the
// original's module-level agent flags turned into session-scoped state
// (spec §9's "model as an explicit SCUConfig value").
func runMenu(in io.Reader, out io.Writer) error {
	agents := scu.AllAgents()
	reader := bufio.NewReader(in)

	for {
		fmt.Fprint(out, "\nneurodb menu\n"+
			"  a) build a store\n"+
			"  b) query a single store\n"+
			"  c) run a regression test file\n"+
			"  d) query all stores\n"+
			"  e) run the image pipeline\n"+
			"  f) toggle an SCU agent\n"+
			"  q) quit\n> ")

		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		choice := strings.ToLower(strings.TrimSpace(line))

		switch choice {
		case "a":
			menuBuild(reader, out)
		case "b":
			menuQuery(reader, out, agents)
		case "c":
			menuRegress(reader, out, agents)
		case "d":
			menuQueryAll(reader, out, agents)
		case "e":
			fmt.Fprintln(out, "image pipeline: use `neurodb image recognize --samples <dir> <pixels-file>` from the shell")
		case "f":
			menuToggleAgent(reader, out, &agents)
		case "q", "quit", "exit":
			return nil
		case "":
			// blank line or EOF with no input; re-prompt unless input is exhausted
			if err == io.EOF {
				return nil
			}
		default:
			fmt.Fprintf(out, "unrecognized option %q\n", choice)
		}

		if err == io.EOF {
			return nil
		}
	}
}

func prompt(reader *bufio.Reader, out io.Writer, label string) string {
	fmt.Fprint(out, label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func menuBuild(reader *bufio.Reader, out io.Writer) {
	name := prompt(reader, out, "store name: ")
	vocabFile := prompt(reader, out, "vocabulary file: ")
	typeStr := prompt(reader, out, "type (text/central/image): ")

	t, err := parseTypeFlag(typeStr)
	if err != nil {
		fmt.Fprintln(out, "error:", err)
		return
	}
	store, err := buildStoreFromVocabFile(vocabFile, t)
	if err != nil {
		fmt.Fprintln(out, "error:", err)
		return
	}
	if err := os.MkdirAll(storeDir, 0o755); err != nil {
		fmt.Fprintln(out, "error:", err)
		return
	}
	if err := copyVocabFile(vocabFile, storeDir+string(os.PathSeparator)+storeFileName(name, t)); err != nil {
		fmt.Fprintln(out, "error:", err)
		return
	}
	fmt.Fprintf(out, "built store %q: %d patterns, %d symbols\n", name, store.PatternCount(), store.SymbolCount())
}

func menuQuery(reader *bufio.Reader, out io.Writer, agents scu.AgentSet) {
	name := prompt(reader, out, "store name: ")
	input := prompt(reader, out, "input: ")

	store, err := loadStore(storeDir, name)
	if err != nil {
		fmt.Fprintln(out, "error:", err)
		return
	}
	o := orchestrate.New(store, orchestrate.DefaultConfig().WithAgents(agents))
	res := o.Recognize(input)
	fmt.Fprintf(out, "%s\n", formatMenuResult(name, input, res))
}

func menuQueryAll(reader *bufio.Reader, out io.Writer, agents scu.AgentSet) {
	input := prompt(reader, out, "input: ")

	names, err := listStores(storeDir)
	if err != nil {
		fmt.Fprintln(out, "error:", err)
		return
	}
	for _, name := range names {
		store, err := loadStore(storeDir, name)
		if err != nil {
			fmt.Fprintf(out, "%s: error: %v\n", name, err)
			continue
		}
		o := orchestrate.New(store, orchestrate.DefaultConfig().WithAgents(agents))
		fmt.Fprintln(out, formatMenuResult(name, input, o.Recognize(input)))
	}
}

func menuRegress(reader *bufio.Reader, out io.Writer, agents scu.AgentSet) {
	name := prompt(reader, out, "store name: ")
	file := prompt(reader, out, "regression file: ")

	store, err := loadStore(storeDir, name)
	if err != nil {
		fmt.Fprintln(out, "error:", err)
		return
	}
	cases, err := parseRegressionFile(file)
	if err != nil {
		fmt.Fprintln(out, "error:", err)
		return
	}
	o := orchestrate.New(store, orchestrate.DefaultConfig().WithAgents(agents))
	report := orchestrate.RunRegression(o, cases)
	fmt.Fprintf(out, "%d passed, %d failed\n", report.Passed, report.Failed)
}

func menuToggleAgent(reader *bufio.Reader, out io.Writer, agents *scu.AgentSet) {
	name := prompt(reader, out, "agent to toggle (spaceb/anomaly/rec/minpr/bound/uncount/mislead): ")
	set, err := agentSetFromDisabled([]string{name})
	if err != nil {
		fmt.Fprintln(out, "error:", err)
		return
	}
	*agents = toggleAgent(*agents, set)
	fmt.Fprintf(out, "agents now: %+v\n", *agents)
}

// toggleAgent flips the single agent that differs between full and
// disabledOne (the result of disabling exactly one agent against a
// fully-enabled baseline) within current.
func toggleAgent(current, disabledOne scu.AgentSet) scu.AgentSet {
	full := scu.AllAgents()
	if full.SpaceB != disabledOne.SpaceB {
		current.SpaceB = !current.SpaceB
	}
	if full.Anomaly != disabledOne.Anomaly {
		current.Anomaly = !current.Anomaly
	}
	if full.Rec != disabledOne.Rec {
		current.Rec = !current.Rec
	}
	if full.MinPR != disabledOne.MinPR {
		current.MinPR = !current.MinPR
	}
	if full.Bound != disabledOne.Bound {
		current.Bound = !current.Bound
	}
	if full.UnCount != disabledOne.UnCount {
		current.UnCount = !current.UnCount
	}
	if full.MisLead != disabledOne.MisLead {
		current.MisLead = !current.MisLead
	}
	return current
}

func formatMenuResult(storeName, input string, res orchestrate.Result) string {
	switch {
	case res.Malformed:
		return fmt.Sprintf("%s: %q -> no match (malformed input)", storeName, input)
	case len(res.Matches) == 0:
		return fmt.Sprintf("%s: %q -> no match", storeName, input)
	case res.Ambiguous:
		return fmt.Sprintf("%s: %q -> ambiguous (%d tied results)", storeName, input, len(res.Matches))
	default:
		return fmt.Sprintf("%s: %q -> %s", storeName, input, describeMatch(res.Matches[0]))
	}
}
