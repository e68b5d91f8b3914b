package jungle

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/jungle-drill/internal/core"
	"github.com/vovakirdan/jungle-drill/internal/registry"
)

// ErrUnknownMode is returned for mode ids missing from the registry.
var ErrUnknownMode = errors.New("jungle: unknown mode")

// Cell is one board position.
type Cell struct {
	Row, Col       int
	Grass          float64
	Question       core.Question
	IsBonus        bool
	BonusCollected bool
	EverCleared    bool
	Revealed       bool
}

// Point returns the cell coordinate.
func (c *Cell) Point() core.Point {
	return core.P(c.Row, c.Col)
}

// setGrass stores a new height, clamped to [0, max], and latches EverCleared.
func (c *Cell) setGrass(grass, maxGrass float64) {
	c.Grass = core.ClampF(grass, 0, maxGrass)
	if c.Grass == 0 {
		c.EverCleared = true
	}
}

// Board is a square grid of cells for one mode, stored row-major.
type Board struct {
	Mode  string
	Size  int
	cells []Cell
}

// BuildBoard generates a fresh board: every cell gets its question and full
// grass, the start cell (0,0) is cleared and revealed, and up to
// rules.MaxBonusCells bonus cells are drawn without replacement from the
// remaining cells.
func BuildBoard(mode string, seed int64, rules Rules) (*Board, error) {
	if !registry.Exists(mode) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	size := rules.BoardSize
	b := &Board{Mode: mode, Size: size, cells: make([]Cell, size*size)}

	for row := range size {
		for col := range size {
			q, err := registry.Generate(mode, row, col, seed)
			if err != nil {
				return nil, fmt.Errorf("jungle: generating (%d,%d): %w", row, col, err)
			}
			b.cells[row*size+col] = Cell{
				Row:      row,
				Col:      col,
				Grass:    rules.InitialGrass,
				Question: q,
			}
		}
	}

	start := &b.cells[0]
	start.Grass = 0
	start.EverCleared = true
	start.Revealed = true

	placeBonuses(b, rand.New(rand.NewSource(seed)), rules.MaxBonusCells)
	return b, nil
}

// placeBonuses marks up to count non-start cells as bonuses using a partial
// Fisher-Yates shuffle, so every subset is equally likely.
func placeBonuses(b *Board, rng *rand.Rand, count int) {
	candidates := make([]int, 0, len(b.cells)-1)
	for i := 1; i < len(b.cells); i++ {
		candidates = append(candidates, i)
	}

	count = core.Clamp(count, 0, len(candidates))
	for i := range count {
		j := i + rng.Intn(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
		b.cells[candidates[i]].IsBonus = true
	}
}

// InBounds reports whether p is on the board.
func (b *Board) InBounds(p core.Point) bool {
	return p.Within(b.Size)
}

// At returns the cell at p, or nil when p is off the board.
func (b *Board) At(p core.Point) *Cell {
	if !b.InBounds(p) {
		return nil
	}
	return &b.cells[p.Row*b.Size+p.Col]
}

// Cells returns a copy of every cell in row-major order.
func (b *Board) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// Viewport returns copies of the cells with row < viewSize and col < viewSize,
// row-major. It never mutates or regenerates cells.
func (b *Board) Viewport(viewSize int) []Cell {
	viewSize = core.Clamp(viewSize, 0, b.Size)
	out := make([]Cell, 0, viewSize*viewSize)
	for row := range viewSize {
		out = append(out, b.cells[row*b.Size:row*b.Size+viewSize]...)
	}
	return out
}

// BonusCount returns how many cells carry a bonus.
func (b *Board) BonusCount() int {
	n := 0
	for i := range b.cells {
		if b.cells[i].IsBonus {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	return &Board{Mode: b.Mode, Size: b.Size, cells: b.Cells()}
}
