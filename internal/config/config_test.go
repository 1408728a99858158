package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/SeamusWaldron/cubestate"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ScrambleLength != 20 || cfg.Listen != DefaultListen || cfg.LogLevel != "info" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if p, _ := cfg.ScramblePolicy(); p != cubestate.StrictAxis {
		t.Errorf("default policy = %v", p)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := DefaultConfig()
	cfg.ScrambleLength = 25
	cfg.Seed = 99
	cfg.Policy = "opposite-pairs"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *got != *cfg {
		t.Errorf("Load = %+v, want %+v", got, cfg)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, []byte("seed: 7\n"), 0644)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seed != 7 || cfg.ScrambleLength != 20 {
		t.Errorf("got %+v", cfg)
	}
	if len(cfg.ScrambleOptions()) != 2 {
		t.Error("seeded config should yield policy and seed options")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative length", func(c *Config) { c.ScrambleLength = -1 }},
		{"bad policy", func(c *Config) { c.Policy = "loose" }},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	cfg := DefaultConfig()
	cfg.Policy = "nope"
	if err := cfg.Validate(); !errors.Is(err, cubestate.ErrInvalidPolicy) {
		t.Errorf("policy error should wrap ErrInvalidPolicy, got %v", err)
	}
}

func TestLoad_RejectsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, []byte("scramble_length: [1, 2\n"), 0644)
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}
