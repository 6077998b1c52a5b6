package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.MaxEpisodes != 10 {
		t.Errorf("MaxEpisodes = %d, want 10", cfg.MaxEpisodes)
	}
	if cfg.MinWonRateForBidding != 0.6 {
		t.Errorf("MinWonRateForBidding = %v, want 0.6", cfg.MinWonRateForBidding)
	}
	if cfg.MinWonRateForHandGame != 0.95 {
		t.Errorf("MinWonRateForHandGame = %v, want 0.95", cfg.MinWonRateForHandGame)
	}
	if cfg.Epsilon != 0.1 {
		t.Errorf("Epsilon = %v, want 0.1", cfg.Epsilon)
	}
	if !cfg.RamschOnPassIn {
		t.Error("RamschOnPassIn should default to true")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.json")
	data := `{"max_episodes": 25, "epsilon": 0.2}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxEpisodes != 25 {
		t.Errorf("MaxEpisodes = %d, want 25", cfg.MaxEpisodes)
	}
	if cfg.Epsilon != 0.2 {
		t.Errorf("Epsilon = %v, want 0.2", cfg.Epsilon)
	}
	// Untouched keys keep their defaults.
	if cfg.MinWonRateForBidding != 0.6 {
		t.Errorf("MinWonRateForBidding = %v, want default 0.6", cfg.MinWonRateForBidding)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
	if cfg.MaxEpisodes != Default().MaxEpisodes {
		t.Error("defaults must survive a failed load")
	}
}

func TestLoadBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.json")
	if err := os.WriteFile(path, []byte("{"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for malformed config")
	}
}
