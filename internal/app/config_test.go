package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Side != 50 {
		t.Fatalf("default side = %d, expected 50", cfg.Side)
	}
	if cfg.StepInterval != 100*time.Millisecond {
		t.Fatalf("default interval = %s, expected 100ms", cfg.StepInterval)
	}
	if cfg.Workers != 1 || cfg.Scale != 12 {
		t.Fatalf("default workers/scale = %d/%d, expected 1/12", cfg.Workers, cfg.Scale)
	}
}

func TestLoadFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.yaml")
	body := "side: 30\nworkers: 4\npattern: glider\nstep_interval: 250000000\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Side != 30 || cfg.Workers != 4 || cfg.Pattern != "glider" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.StepInterval != 250*time.Millisecond {
		t.Fatalf("interval = %s, expected 250ms", cfg.StepInterval)
	}
	if cfg.Scale != 12 {
		t.Fatalf("fields absent from the file must keep defaults, scale = %d", cfg.Scale)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("missing config file must report an error")
	}
}

func TestLoadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("side: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("malformed config file must report an error")
	}
}

func TestResolveFlagsBeatFile(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := DefaultConfig()
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-side", "80", "-density", "0.5"}); err != nil {
		t.Fatal(err)
	}

	fileCfg := DefaultConfig()
	fileCfg.Side = 30
	fileCfg.Workers = 4
	fileCfg.Density = 0.1

	got := cfg.Resolve(fileCfg, fs)
	if got.Side != 80 {
		t.Fatalf("explicit -side must win over the file, got %d", got.Side)
	}
	if got.Density != 0.5 {
		t.Fatalf("explicit -density must win over the file, got %f", got.Density)
	}
	if got.Workers != 4 {
		t.Fatalf("file workers must apply when the flag is untouched, got %d", got.Workers)
	}
}

func TestValidateFloors(t *testing.T) {
	cfg := Config{Side: -5, StepInterval: -time.Second, Scale: 0, Workers: 0, Density: 1.5, HUDWidth: -1}
	cfg.Validate()
	if cfg.Side != 0 || cfg.Scale != 1 || cfg.Workers != 1 || cfg.HUDWidth != 0 {
		t.Fatalf("validate did not floor int fields: %+v", cfg)
	}
	if cfg.StepInterval != 100*time.Millisecond {
		t.Fatalf("validate interval = %s, expected 100ms", cfg.StepInterval)
	}
	if cfg.Density != 1 {
		t.Fatalf("validate density = %f, expected cap at 1", cfg.Density)
	}
}
