// Package jungle implements the grid-exploration math drill: board
// generation, the grass decay/regrowth model, the player movement state
// machine, scoring, viewport progression and the persisted board format.
//
// Everything here is single-threaded. A Session is mutated only through its
// command methods and callers must serialize access.
package jungle

import "github.com/vovakirdan/jungle-drill/internal/config"

// Rules holds every constant of the drill model.
type Rules struct {
	BoardSize     int
	StartViewSize int
	MaxBonusCells int

	InitialGrass    float64
	MaxGrass        float64
	PassableBelow   float64
	BonusEligibleAt float64
	CorrectCut      float64
	WrongGrowth     float64

	OfflineGrowth float64
	OfflineCap    float64

	UnlockFraction float64

	BonusMultiplier int
	WrongPenalty    int
}

// DefaultRules returns the standard 10×10 jungle.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultJungleConfig())
}

// RulesFromConfig converts a loaded configuration into engine rules.
func RulesFromConfig(cfg config.JungleConfig) Rules {
	return Rules{
		BoardSize:       cfg.Board.Size,
		StartViewSize:   cfg.Board.StartViewSize,
		MaxBonusCells:   cfg.Board.MaxBonusCells,
		InitialGrass:    cfg.Grass.Initial,
		MaxGrass:        cfg.Grass.Max,
		PassableBelow:   cfg.Grass.PassableBelow,
		BonusEligibleAt: cfg.Grass.BonusEligibleAt,
		CorrectCut:      cfg.Grass.CorrectCut,
		WrongGrowth:     cfg.Grass.WrongGrowth,
		OfflineGrowth:   cfg.Offline.DailyGrowth,
		OfflineCap:      cfg.Offline.Cap,
		UnlockFraction:  cfg.Progression.UnlockFraction,
		BonusMultiplier: cfg.Scoring.BonusMultiplier,
		WrongPenalty:    cfg.Scoring.WrongPenalty,
	}
}
