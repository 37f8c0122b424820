package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/avoronova/ritmo/internal/engine"
)

func TestLoadFromMissingFile(t *testing.T) {
	dir := t.TempDir()

	cfg, err := loadFrom(dir)
	if err != nil {
		t.Fatalf("a missing config file must fall back to defaults, got %v", err)
	}
	if cfg.DBPath != filepath.Join(dir, "ritmo.db") {
		t.Errorf("db path: got %q", cfg.DBPath)
	}
	if cfg.Engine != engine.DefaultConfig() {
		t.Errorf("engine config should be the defaults, got %+v", cfg.Engine)
	}
}

func TestLoadFromOverrides(t *testing.T) {
	dir := t.TempDir()
	yaml := `db_path: /tmp/elsewhere.db
planner:
  burnout_minutes: 120
  day_start_hour: 7
estimator:
  min_model_samples: 20
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadFrom(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DBPath != "/tmp/elsewhere.db" {
		t.Errorf("db path override ignored, got %q", cfg.DBPath)
	}
	if cfg.Engine.BurnoutMinutes != 120 {
		t.Errorf("burnout override ignored, got %d", cfg.Engine.BurnoutMinutes)
	}
	if cfg.Engine.DayStartHour != 7 {
		t.Errorf("day start override ignored, got %d", cfg.Engine.DayStartHour)
	}
	if cfg.Engine.MinModelSamples != 20 {
		t.Errorf("sample threshold override ignored, got %d", cfg.Engine.MinModelSamples)
	}

	// Keys the file does not mention keep their defaults.
	def := engine.DefaultConfig()
	if cfg.Engine.BreakMinutes != def.BreakMinutes {
		t.Errorf("break minutes should stay at the default %d, got %d", def.BreakMinutes, cfg.Engine.BreakMinutes)
	}
	if cfg.Engine.DueSoonDays != def.DueSoonDays {
		t.Errorf("due soon horizon should stay at the default %d, got %d", def.DueSoonDays, cfg.Engine.DueSoonDays)
	}
}

func TestLoadFromMalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("planner: [not: a map"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadFrom(dir); err == nil {
		t.Fatal("malformed yaml must be an error, not a silent fallback")
	}
}
