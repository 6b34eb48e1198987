package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCLI executes the root command with args against a fresh command tree,
// capturing combined stdout (cobra's SetOut also catches RunE's own
// fmt.Println output only via os.Stdout, so assertions here focus on
// error/exit behavior; individual command tests capture fmt output via the
// package-level storeDir plumbing instead).
func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func writeVocabFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBuildAndQueryRoundTrip(t *testing.T) {
	dir := t.TempDir()
	vocabPath := writeVocabFile(t, dir, "weekdays.txt", ";; FRIDAY,SATURDAY,SUNDAY\n")

	storeDir = filepath.Join(dir, "stores")
	if err := runCLI(t, "build", "weekdays", vocabPath, "--type", "text"); err != nil {
		t.Fatalf("build: %v", err)
	}

	if err := runCLI(t, "query", "weekdays", "frdy"); err != nil {
		t.Fatalf("query: %v", err)
	}
}

func TestBuildRejectsUnknownType(t *testing.T) {
	dir := t.TempDir()
	vocabPath := writeVocabFile(t, dir, "weekdays.txt", ";; FRIDAY\n")
	storeDir = filepath.Join(dir, "stores")

	err := runCLI(t, "build", "weekdays", vocabPath, "--type", "bogus")
	if err == nil {
		t.Fatal("expected error for unknown type")
	}
	if !strings.Contains(err.Error(), "unknown store type") {
		t.Fatalf("err = %v, want mention of unknown store type", err)
	}
}

func TestQueryAllWithNoStores(t *testing.T) {
	storeDir = t.TempDir()
	if err := runCLI(t, "query-all", "frdy"); err != nil {
		t.Fatalf("query-all: %v", err)
	}
}

func TestAgentsListsSeven(t *testing.T) {
	if len(agentNames) != 7 {
		t.Fatalf("len(agentNames) = %d, want 7", len(agentNames))
	}
}

func TestRegressRoundTrip(t *testing.T) {
	dir := t.TempDir()
	vocabPath := writeVocabFile(t, dir, "weekdays.txt", ";; FRIDAY,SATURDAY,SUNDAY\n")
	storeDir = filepath.Join(dir, "stores")
	if err := runCLI(t, "build", "weekdays", vocabPath, "--type", "text"); err != nil {
		t.Fatalf("build: %v", err)
	}

	regressPath := writeVocabFile(t, dir, "cases.txt", "frdy -> FRIDAY\n")
	if err := runCLI(t, "regress", "weekdays", regressPath); err != nil {
		t.Fatalf("regress: %v", err)
	}
}
