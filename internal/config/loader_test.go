package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValues(t *testing.T) {
	cfg := Default()

	if cfg.Game.GridSize != 15 {
		t.Errorf("GridSize = %d, expected 15", cfg.Game.GridSize)
	}
	if cfg.Game.TickIntervalMS != 150 {
		t.Errorf("TickIntervalMS = %d, expected 150", cfg.Game.TickIntervalMS)
	}
	if cfg.Game.FoodReward != 10 {
		t.Errorf("FoodReward = %d, expected 10", cfg.Game.FoodReward)
	}
	if cfg.Preview.Title == "" || cfg.Preview.Description == "" {
		t.Error("preview text defaults should not be empty")
	}
}

func TestEmbeddedDefaultFields(t *testing.T) {
	cfg, err := parse(defaultYAML, "embedded")
	if err != nil {
		t.Fatalf("embedded default failed to parse: %v", err)
	}

	want := Default()
	if cfg.Game != want.Game {
		t.Errorf("embedded game config = %+v, expected %+v", cfg.Game, want.Game)
	}
	if cfg.Preview.Title != want.Preview.Title || cfg.Preview.RegularFont != want.Preview.RegularFont {
		t.Errorf("embedded preview config = %+v, expected %+v", cfg.Preview, want.Preview)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	yaml := `
game:
  grid_size: 21
  tick_interval_ms: 100
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Game.GridSize != 21 {
		t.Errorf("GridSize = %d, expected 21", cfg.Game.GridSize)
	}
	if cfg.Game.TickIntervalMS != 100 {
		t.Errorf("TickIntervalMS = %d, expected 100", cfg.Game.TickIntervalMS)
	}
	// Unspecified keys keep their defaults
	if cfg.Game.FoodReward != 10 {
		t.Errorf("FoodReward = %d, expected default 10", cfg.Game.FoodReward)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Load() with missing explicit path should fail")
	}
}

func TestLoadCustomPathInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("game: ["), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() with invalid YAML should fail")
	}
}
