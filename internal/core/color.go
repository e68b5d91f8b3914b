package core

// Shade classifies a cell for display. Renderers map shades to their own
// styles; the engine never deals in concrete colors.
type Shade uint8

const (
	ShadeCleared   Shade = iota // passable ground
	ShadeSparse                 // trimmed grass, bonus eligible
	ShadeGrown                  // partly trimmed
	ShadeDense                  // untouched or regrown
	ShadeOvergrown              // above initial height after wrong answers
	ShadeHidden                 // outside the unlocked viewport
)

// ShadeForGrass picks the display shade for a grass height.
func ShadeForGrass(grass float64) Shade {
	switch {
	case grass < 10:
		return ShadeCleared
	case grass <= 50:
		return ShadeSparse
	case grass < 100:
		return ShadeGrown
	case grass <= 100:
		return ShadeDense
	default:
		return ShadeOvergrown
	}
}
