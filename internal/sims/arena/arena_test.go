package arena

import (
	"path/filepath"
	"slices"
	"testing"

	"chroma-ca/internal/core"
	"chroma-ca/internal/field"
	"chroma-ca/internal/params"
)

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Params.Width = 24
	cfg.Params.Height = 16
	cfg.Params.Seed = 99
	return cfg
}

func TestResetDeterministic(t *testing.T) {
	a, err := New(smallConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	initial := slices.Clone(a.Pixels())
	for range 3 {
		a.Step()
	}
	if slices.Equal(initial, a.Pixels()) {
		t.Fatal("stepping should change the frame")
	}

	a.Reset(0)
	if !slices.Equal(initial, a.Pixels()) {
		t.Fatal("Reset with config seed not deterministic")
	}
	if got := a.History().Current().Index(); got != 0 {
		t.Fatalf("generation after reset = %d, want 0", got)
	}

	a.Reset(777)
	if slices.Equal(initial, a.Pixels()) {
		t.Fatal("Reset with a new seed should produce a different field")
	}
	if got := a.History().Parameters().Seed; got != 777 {
		t.Fatalf("seed after reset = %d, want 777", got)
	}

	a.Reset(0)
	if got := a.History().Parameters().Seed; got != 99 {
		t.Fatalf("Reset(0) seed = %d, want configured 99", got)
	}
	if !slices.Equal(initial, a.Pixels()) {
		t.Fatal("Reset(0) should replay the configured run")
	}
}

func TestPixelsAndMasks(t *testing.T) {
	a, err := New(smallConfig())
	if err != nil {
		t.Fatal(err)
	}
	size := a.Size()
	if size.W != 24 || size.H != 16 {
		t.Fatalf("size = %+v", size)
	}
	if got := len(a.Pixels()); got != 3*24*16 {
		t.Fatalf("pixels = %d bytes", got)
	}
	a.Step()
	scores := a.ScoreMask()
	sats := a.SaturationMask()
	if len(scores) != 24*16 || len(sats) != 24*16 {
		t.Fatalf("mask lengths %d %d", len(scores), len(sats))
	}
	cur := a.History().Current()
	if scores[17] != cur.At(0, 17).Score || sats[30] != cur.At(1, 6).Stats.S {
		t.Fatal("masks do not follow row-major cell order")
	}
}

func TestStatsFollowCurrentGeneration(t *testing.T) {
	a, err := New(smallConfig())
	if err != nil {
		t.Fatal(err)
	}
	if got := a.Stats().Generation; got != 0 {
		t.Fatalf("initial stats generation = %d", got)
	}
	a.Step()
	a.Step()
	if got := a.Stats().Generation; got != 2 {
		t.Fatalf("stats generation = %d, want 2", got)
	}
	if len(a.StatsLines()) == 0 {
		t.Fatal("expected stats lines")
	}
}

func TestParametersSnapshot(t *testing.T) {
	a, err := New(smallConfig())
	if err != nil {
		t.Fatal(err)
	}
	var _ core.ParameterProvider = a
	var _ core.StatsProvider = a
	snap := a.Parameters()
	if len(snap.Groups) != 4 {
		t.Fatalf("groups = %d, want 4", len(snap.Groups))
	}
	run := snap.Groups[3]
	if run.Name != "Run" || run.Params[0].Value != "toroidal" || run.Params[1].Value != "random" {
		t.Fatalf("run group = %+v", run)
	}
}

func TestFromMap(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "p.yaml")
	base := params.Default()
	base.WinReward = 9
	base.Width = 50
	if err := base.WriteYAML(path); err != nil {
		t.Fatal(err)
	}

	cfg, err := FromMap(map[string]string{
		"config":         path,
		"w":              "40",
		"seed":           "12",
		"hardening_rate": "4",
		"workers":        "3",
		"history":        "2",
		"boundary":       "truncate",
		"genesis":        "noise",
	})
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}
	p := cfg.Params
	if p.Width != 40 || p.Height != base.Height || p.WinReward != 9 || p.Seed != 12 || p.HardeningRate != 4 {
		t.Fatalf("params = %+v", p)
	}
	if cfg.Workers != 3 || cfg.History != 2 || cfg.Boundary != field.Truncate || cfg.Genesis != "noise" {
		t.Fatalf("config = %+v", cfg)
	}

	for _, bad := range []map[string]string{
		{"w": "0"},
		{"win_reward": "300"},
		{"seed": "x"},
		{"boundary": "mobius"},
		{"genesis": "plasma"},
		{"config": filepath.Join(dir, "missing.yaml")},
	} {
		if _, err := FromMap(bad); err == nil {
			t.Errorf("FromMap(%v) should fail", bad)
		}
	}
}

func TestRegistered(t *testing.T) {
	s, err := core.Build("arena", map[string]string{"w": "8", "h": "8"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if s.Name() != "arena" || s.Size() != (core.Size{W: 8, H: 8}) {
		t.Fatalf("built %s %+v", s.Name(), s.Size())
	}
}
