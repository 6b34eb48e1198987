package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/coregx/neurodb/scu"
)

func TestRunMenuQuitsImmediately(t *testing.T) {
	in := strings.NewReader("q\n")
	var out bytes.Buffer
	if err := runMenu(in, &out); err != nil {
		t.Fatalf("runMenu: %v", err)
	}
	if !strings.Contains(out.String(), "neurodb menu") {
		t.Fatal("expected menu banner in output")
	}
}

func TestToggleAgentFlipsExactlyOne(t *testing.T) {
	full := scu.AllAgents()
	disabledRec := full
	disabledRec.Rec = false

	toggled := toggleAgent(full, disabledRec)
	if toggled.Rec {
		t.Fatal("Rec should be disabled after toggling")
	}
	if !toggled.SpaceB || !toggled.Anomaly || !toggled.MinPR || !toggled.Bound || !toggled.UnCount || !toggled.MisLead {
		t.Fatalf("only Rec should have toggled, got %+v", toggled)
	}
}

func TestRunMenuUnknownOptionThenQuit(t *testing.T) {
	in := strings.NewReader("z\nq\n")
	var out bytes.Buffer
	if err := runMenu(in, &out); err != nil {
		t.Fatalf("runMenu: %v", err)
	}
	if !strings.Contains(out.String(), "unrecognized option") {
		t.Fatal("expected unrecognized-option message")
	}
}
