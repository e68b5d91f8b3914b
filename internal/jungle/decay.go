package jungle

import (
	"math"
	"time"
)

// AfterCorrect trims grass on a correct answer: the removed amount is
// ceil(grass × CorrectCut), so a cell roughly halves each time.
func (r Rules) AfterCorrect(grass float64) float64 {
	return math.Max(0, grass-math.Ceil(grass*r.CorrectCut))
}

// AfterWrong grows grass on a wrong answer by ceil(grass × WrongGrowth),
// capped at MaxGrass.
func (r Rules) AfterWrong(grass float64) float64 {
	return math.Min(r.MaxGrass, grass+math.Ceil(grass*r.WrongGrowth))
}

// AfterOffline applies regrowth for whole days away. The cap is OfflineCap
// rather than MaxGrass, and it applies even when days is zero.
func (r Rules) AfterOffline(grass float64, days int) float64 {
	if days < 0 {
		days = 0
	}
	grown := grass * math.Pow(r.OfflineGrowth, float64(days))
	return math.Max(0, math.Min(r.OfflineCap, grown))
}

// Passable reports whether the player may step onto grass without a question.
func (r Rules) Passable(grass float64) bool {
	return grass < r.PassableBelow
}

// Grassy reports whether stepping onto grass opens a question.
func (r Rules) Grassy(grass float64) bool {
	return !r.Passable(grass)
}

// BonusEligible reports whether a bonus under this grass can be collected.
func (r Rules) BonusEligible(grass float64) bool {
	return grass <= r.BonusEligibleAt
}

// DaysBetween counts whole days from last to now. A clock that went
// backwards yields zero.
func DaysBetween(last, now time.Time) int {
	if !now.After(last) {
		return 0
	}
	return int(now.Sub(last) / (24 * time.Hour))
}

// regrow applies offline regrowth to every cell of the board.
func (r Rules) regrow(b *Board, days int) {
	for i := range b.cells {
		b.cells[i].setGrass(r.AfterOffline(b.cells[i].Grass, days), r.MaxGrass)
	}
}
