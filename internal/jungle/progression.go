package jungle

// ClearedFraction is the share of viewport cells whose grass is below the
// initial height.
func (r Rules) ClearedFraction(b *Board, viewSize int) float64 {
	cells := b.Viewport(viewSize)
	if len(cells) == 0 {
		return 0
	}

	cleared := 0
	for i := range cells {
		if cells[i].Grass < r.InitialGrass {
			cleared++
		}
	}
	return float64(cleared) / float64(len(cells))
}

// NextViewSize grows the viewport by one when enough of it is cleared.
// It never grows by more than one step and never past the board.
func (r Rules) NextViewSize(b *Board, viewSize int) int {
	if viewSize >= b.Size {
		return viewSize
	}
	if r.ClearedFraction(b, viewSize) >= r.UnlockFraction {
		return viewSize + 1
	}
	return viewSize
}
