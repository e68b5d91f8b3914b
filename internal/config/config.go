// Package config provides YAML-based configuration loading for the jungle
// drill engine: board geometry, the grass model, offline regrowth, level
// progression and scoring.
package config

import (
	"errors"
	"fmt"
)

// JungleConfig contains all tunables of the drill engine.
type JungleConfig struct {
	Board       BoardConfig       `yaml:"board"`
	Grass       GrassConfig       `yaml:"grass"`
	Offline     OfflineConfig     `yaml:"offline"`
	Progression ProgressionConfig `yaml:"progression"`
	Scoring     ScoringConfig     `yaml:"scoring"`
}

// BoardConfig defines board geometry and bonus placement.
type BoardConfig struct {
	Size          int `yaml:"size"`
	StartViewSize int `yaml:"start_view_size"`
	MaxBonusCells int `yaml:"max_bonus_cells"`
}

// GrassConfig defines the in-session grass model.
type GrassConfig struct {
	Initial         float64 `yaml:"initial"`
	Max             float64 `yaml:"max"`
	PassableBelow   float64 `yaml:"passable_below"`    // strictly below = no question
	BonusEligibleAt float64 `yaml:"bonus_eligible_at"` // at or below = bonus can be collected
	CorrectCut      float64 `yaml:"correct_cut"`       // fraction removed on a correct answer
	WrongGrowth     float64 `yaml:"wrong_growth"`      // fraction added on a wrong answer
}

// OfflineConfig defines regrowth applied for days away from a board.
type OfflineConfig struct {
	DailyGrowth float64 `yaml:"daily_growth"`
	Cap         float64 `yaml:"cap"`
}

// ProgressionConfig defines when the viewport grows.
type ProgressionConfig struct {
	UnlockFraction float64 `yaml:"unlock_fraction"`
}

// ScoringConfig defines score multipliers and penalties.
type ScoringConfig struct {
	BonusMultiplier int `yaml:"bonus_multiplier"`
	WrongPenalty    int `yaml:"wrong_penalty"`
}

// Validate rejects configurations the engine cannot honor.
func (c JungleConfig) Validate() error {
	var errs []error

	if c.Board.Size < 2 {
		errs = append(errs, fmt.Errorf("board.size must be at least 2, got %d", c.Board.Size))
	}
	if c.Board.StartViewSize < 1 || c.Board.StartViewSize > c.Board.Size {
		errs = append(errs, fmt.Errorf("board.start_view_size must be in [1, %d], got %d", c.Board.Size, c.Board.StartViewSize))
	}
	if c.Board.MaxBonusCells < 0 || c.Board.MaxBonusCells > c.Board.Size*c.Board.Size-1 {
		errs = append(errs, fmt.Errorf("board.max_bonus_cells out of range: %d", c.Board.MaxBonusCells))
	}
	if c.Grass.Max <= 0 || c.Grass.Initial <= 0 || c.Grass.Initial > c.Grass.Max {
		errs = append(errs, fmt.Errorf("grass.initial must be in (0, grass.max], got %v / %v", c.Grass.Initial, c.Grass.Max))
	}
	if c.Grass.CorrectCut <= 0 || c.Grass.CorrectCut > 1 {
		errs = append(errs, fmt.Errorf("grass.correct_cut must be in (0, 1], got %v", c.Grass.CorrectCut))
	}
	if c.Grass.WrongGrowth < 0 {
		errs = append(errs, fmt.Errorf("grass.wrong_growth must not be negative, got %v", c.Grass.WrongGrowth))
	}
	if c.Offline.DailyGrowth < 1 {
		errs = append(errs, fmt.Errorf("offline.daily_growth must be at least 1, got %v", c.Offline.DailyGrowth))
	}
	if c.Offline.Cap <= 0 || c.Offline.Cap > c.Grass.Max {
		errs = append(errs, fmt.Errorf("offline.cap must be in (0, grass.max], got %v", c.Offline.Cap))
	}
	if c.Progression.UnlockFraction <= 0 || c.Progression.UnlockFraction > 1 {
		errs = append(errs, fmt.Errorf("progression.unlock_fraction must be in (0, 1], got %v", c.Progression.UnlockFraction))
	}
	if c.Scoring.BonusMultiplier < 1 {
		errs = append(errs, fmt.Errorf("scoring.bonus_multiplier must be at least 1, got %d", c.Scoring.BonusMultiplier))
	}
	if c.Scoring.WrongPenalty < 0 {
		errs = append(errs, fmt.Errorf("scoring.wrong_penalty must not be negative, got %d", c.Scoring.WrongPenalty))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid jungle config: %w", errors.Join(errs...))
	}
	return nil
}
