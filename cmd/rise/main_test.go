package main

import (
	"bytes"
	"strings"
	"testing"

	"rise/internal/core"
	"rise/internal/palette"
)

func TestPalettesCommand(t *testing.T) {
	cmd := palettesCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != len(palette.Catalogue) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(palette.Catalogue), out.String())
	}
	if !strings.Contains(lines[0], palette.Catalogue[0].Name) {
		t.Fatalf("first line %q does not name %q", lines[0], palette.Catalogue[0].Name)
	}
}

func TestParamsCommandIsStable(t *testing.T) {
	run := func() string {
		cmd := paramsCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"--seed", "17"})
		if err := cmd.Execute(); err != nil {
			t.Fatal(err)
		}
		return out.String()
	}
	a, b := run(), run()
	if a != b || !strings.Contains(a, "[Run]") || !strings.Contains(a, "17") {
		t.Fatalf("params output unstable or incomplete:\n%s\n---\n%s", a, b)
	}
}

func TestWriteSnapshot(t *testing.T) {
	var buf bytes.Buffer
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name:   "Run",
		Params: []core.Parameter{{Key: "seed", Value: "1"}, {Key: "palette", Value: "dusk"}},
	}}}
	if err := writeSnapshot(&buf, snap); err != nil {
		t.Fatal(err)
	}
	want := "[Run]\n  seed     1\n  palette  dusk\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}
