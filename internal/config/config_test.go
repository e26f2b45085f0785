package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rise/internal/core"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	g, err := cfg.BuildGrid()
	if err != nil {
		t.Fatal(err)
	}
	if g.Columns != 16 || g.Rows != 24 || g.Border != core.BorderFront {
		t.Fatalf("default grid = %+v", g)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rise.toml")
	doc := `
[canvas]
width = 640

[grid]
rows = 10
border = "frame"

[projection]
kind = "oblique"

[projection.options]
shear = 0.25
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Canvas.Width != 640 || cfg.Canvas.Height != 1000 {
		t.Fatalf("canvas = %+v, want width override only", cfg.Canvas)
	}
	if cfg.Grid.Rows != 10 || cfg.Grid.Columns != 16 || cfg.Grid.Border != "frame" {
		t.Fatalf("grid = %+v", cfg.Grid)
	}
	if cfg.Projection.Kind != "oblique" || cfg.Projection.Options["shear"] != 0.25 {
		t.Fatalf("projection = %+v", cfg.Projection)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	g, _ := cfg.BuildGrid()
	if _, err := cfg.Projector(g); err != nil {
		t.Fatal(err)
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse("[grid]\ncolums = 4\n")
	if err == nil || !strings.Contains(err.Error(), "grid.colums") {
		t.Fatalf("err = %v, want unknown key grid.colums", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v, want not-exist", err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]string{
		"canvas":     "[canvas]\nwidth = 0\n",
		"grid":       "[grid]\nrows = 0\n",
		"border":     "[grid]\nborder = \"ring\"\n",
		"resolution": "[detail]\nnear_res = 0\n",
		"thresholds": "[detail]\nmid = 0.9\nfar = 0.1\n",
		"ring step":  "[canvas]\nring_step = 0\n",
		"projection": "[projection]\nkind = \"fisheye\"\n",
		"option":     "[projection.options]\nhorizon = nan\n",
		"option key": "[projection.options]\nhorizn = 0.3\n",
		"other kind": "[projection]\nkind = \"oblique\"\n[projection.options]\nhorizon = 0.3\n",
	}
	for name, doc := range cases {
		cfg, err := Parse(doc)
		if err != nil {
			t.Fatalf("%s: parse: %v", name, err)
		}
		if cfg.Validate() == nil {
			t.Errorf("%s: Validate accepted %q", name, doc)
		}
	}
}

func TestTuningMirrorsConfig(t *testing.T) {
	cfg, err := Parse("[detail]\nnear_res = 64\n[bubbles]\nrows = 3\n")
	if err != nil {
		t.Fatal(err)
	}
	tn := cfg.Tuning()
	if tn.Detail.NearRes != 64 || tn.BubbleRows != 3 || tn.RingStep != 4 {
		t.Fatalf("tuning = %+v", tn)
	}
}

func TestEncodeParsesBack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Projection.Options = map[string]float64{"horizon": 0.3}
	var buf bytes.Buffer
	if err := cfg.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	back, err := Parse(buf.String())
	if err != nil {
		t.Fatalf("re-parse: %v\n%s", err, buf.String())
	}
	if back.Projection.Options["horizon"] != 0.3 || back.Grid != cfg.Grid {
		t.Fatalf("round trip lost values: %+v", back)
	}
}
