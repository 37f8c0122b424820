// Package config loads the ritmo config file and maps it onto the
// engine tunables. Missing file or keys fall back to defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/avoronova/ritmo/internal/engine"
)

// Config is everything the CLI surface needs to run: where the sqlite
// file lives plus the engine tunables.
type Config struct {
	DBPath string
	Engine engine.Config
}

// Load reads ~/.ritmo/config.yaml via Viper. A missing file returns
// defaults; a malformed one is an error.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, err
	}
	return loadFrom(filepath.Join(home, ".ritmo"))
}

func loadFrom(dir string) (Config, error) {
	cfg := Config{
		DBPath: filepath.Join(dir, "ritmo.db"),
		Engine: engine.DefaultConfig(),
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	// Defaults so missing keys fall back gracefully.
	v.SetDefault("db_path", cfg.DBPath)
	v.SetDefault("estimator.min_model_samples", cfg.Engine.MinModelSamples)
	v.SetDefault("estimator.retrain_after", cfg.Engine.RetrainAfter)
	v.SetDefault("estimator.min_minutes", cfg.Engine.MinEstimateMinutes)
	v.SetDefault("estimator.max_minutes", cfg.Engine.MaxEstimateMinutes)
	v.SetDefault("planner.min_score", cfg.Engine.MinScore)
	v.SetDefault("planner.lookahead_days", cfg.Engine.LookaheadDays)
	v.SetDefault("planner.burnout_minutes", cfg.Engine.BurnoutMinutes)
	v.SetDefault("planner.break_minutes", cfg.Engine.BreakMinutes)
	v.SetDefault("planner.day_start_hour", cfg.Engine.DayStartHour)
	v.SetDefault("planner.day_end_hour", cfg.Engine.DayEndHour)
	v.SetDefault("planner.implied_due_days", cfg.Engine.ImpliedDueDays)
	v.SetDefault("reminders.due_soon_days", cfg.Engine.DueSoonDays)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	cfg.DBPath = v.GetString("db_path")
	cfg.Engine.MinModelSamples = v.GetInt("estimator.min_model_samples")
	cfg.Engine.RetrainAfter = v.GetInt("estimator.retrain_after")
	cfg.Engine.MinEstimateMinutes = v.GetInt("estimator.min_minutes")
	cfg.Engine.MaxEstimateMinutes = v.GetInt("estimator.max_minutes")
	cfg.Engine.MinScore = v.GetFloat64("planner.min_score")
	cfg.Engine.LookaheadDays = v.GetInt("planner.lookahead_days")
	cfg.Engine.BurnoutMinutes = v.GetInt("planner.burnout_minutes")
	cfg.Engine.BreakMinutes = v.GetInt("planner.break_minutes")
	cfg.Engine.DayStartHour = v.GetInt("planner.day_start_hour")
	cfg.Engine.DayEndHour = v.GetInt("planner.day_end_hour")
	cfg.Engine.ImpliedDueDays = v.GetInt("planner.implied_due_days")
	cfg.Engine.DueSoonDays = v.GetInt("reminders.due_soon_days")

	return cfg, nil
}
