package jungle

// CellScore is the value of answering the cell at (row, col). Cells further
// from the start are worth more; a bonus award multiplies the value.
func (r Rules) CellScore(row, col int, bonus bool) int {
	base := row + col + 2
	if bonus {
		return base * r.BonusMultiplier
	}
	return base
}

// BonusDelta is what a bonus pays on top of the base score, so the base is
// never counted twice.
func (r Rules) BonusDelta(row, col int) int {
	return r.CellScore(row, col, true) - r.CellScore(row, col, false)
}

// penalize applies the wrong-answer penalty, never going below zero.
func (r Rules) penalize(score int) int {
	return max(0, score-r.WrongPenalty)
}
