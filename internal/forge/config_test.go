package forge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mrodier/hintforge/internal/tensor"
)

func TestConfig_RoundTrip(t *testing.T) {
	cfg := Config{
		Count:     8,
		Shape:     "2x3x256x256",
		OutputDir: "hints",
		Seed:      42,
		Workers:   4,
		Scale:     2,
		Annotate:  true,
	}

	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := SaveConfig(path, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded != cfg {
		t.Errorf("round-trip mismatch:\n  saved:  %+v\n  loaded: %+v", cfg, loaded)
	}
}

func TestConfig_ToOptions(t *testing.T) {
	cfg := Config{Count: 2, Shape: "1x3x64x64", OutputDir: "out", Seed: 7}

	opts, err := cfg.ToOptions()
	if err != nil {
		t.Fatalf("ToOptions failed: %v", err)
	}
	want := tensor.Shape{Batch: 1, Channels: 3, Height: 64, Width: 64}
	if opts.Shape != want {
		t.Errorf("shape = %s, want %s", opts.Shape, want)
	}
	if opts.Count != 2 || opts.Seed != 7 || opts.OutputDir != "out" {
		t.Errorf("options not carried over: %+v", opts)
	}
}

func TestConfig_ToOptions_BadShape(t *testing.T) {
	cfg := Config{Count: 1, Shape: "banana", OutputDir: "out"}
	if _, err := cfg.ToOptions(); err == nil {
		t.Error("ToOptions should reject a malformed shape")
	}
}

func TestFromOptions(t *testing.T) {
	opts := Options{
		Count:     3,
		Shape:     tensor.Shape{Batch: 1, Channels: 3, Height: 128, Width: 128},
		OutputDir: "out",
		Seed:      5,
	}

	cfg := FromOptions(opts)
	if cfg.Shape != "1x3x128x128" {
		t.Errorf("shape string = %q, want %q", cfg.Shape, "1x3x128x128")
	}

	back, err := cfg.ToOptions()
	if err != nil {
		t.Fatalf("ToOptions failed: %v", err)
	}
	if back.Shape != opts.Shape || back.Count != opts.Count {
		t.Errorf("options round-trip mismatch: %+v", back)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadConfig should fail for a missing file")
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("count: [not an int\n"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig should fail for malformed YAML")
	}
}
