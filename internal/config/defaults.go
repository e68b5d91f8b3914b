package config

import (
	_ "embed"
)

//go:embed defaults/jungle.yaml
var defaultJungleYAML []byte

// DefaultJungleConfig returns the default jungle configuration.
func DefaultJungleConfig() JungleConfig {
	return JungleConfig{
		Board: BoardConfig{
			Size:          10,
			StartViewSize: 4,
			MaxBonusCells: 12,
		},
		Grass: GrassConfig{
			Initial:         100,
			Max:             200,
			PassableBelow:   10,
			BonusEligibleAt: 50,
			CorrectCut:      0.5,
			WrongGrowth:     0.2,
		},
		Offline: OfflineConfig{
			DailyGrowth: 1.05,
			Cap:         100,
		},
		Progression: ProgressionConfig{
			UnlockFraction: 0.40,
		},
		Scoring: ScoringConfig{
			BonusMultiplier: 2,
			WrongPenalty:    1,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultJungleYAML
}
