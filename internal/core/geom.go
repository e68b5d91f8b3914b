// Package core provides fundamental types shared by the drill engine and its
// front ends. It has no external dependencies (especially no Bubble Tea) so
// that board logic stays pure and testable.
package core

// Point is a board coordinate. Row grows southwards, Col grows eastwards.
type Point struct {
	Row, Col int
}

// P is shorthand for constructing a Point.
func P(row, col int) Point {
	return Point{Row: row, Col: col}
}

// Add returns the point offset by the given delta.
func (p Point) Add(d Point) Point {
	return Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Within reports whether the point lies in the size×size square anchored at (0,0).
func (p Point) Within(size int) bool {
	return p.Row >= 0 && p.Col >= 0 && p.Row < size && p.Col < size
}

// Direction is the facing of the player on the board.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// String returns the single-letter compass name.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return "?"
	}
}

// ParseDirection converts a compass letter back into a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "N", "n":
		return North, true
	case "E", "e":
		return East, true
	case "S", "s":
		return South, true
	case "W", "w":
		return West, true
	}
	return North, false
}

// Left rotates counter-clockwise: N→W→S→E→N.
func (d Direction) Left() Direction {
	return (d + 3) % 4
}

// Right rotates clockwise: N→E→S→W→N.
func (d Direction) Right() Direction {
	return (d + 1) % 4
}

// Delta returns the unit step for moving one cell in this direction.
func (d Direction) Delta() Point {
	switch d {
	case North:
		return Point{Row: -1}
	case East:
		return Point{Col: 1}
	case South:
		return Point{Row: 1}
	case West:
		return Point{Col: -1}
	default:
		return Point{}
	}
}

// Clamp restricts an int to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 to [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
