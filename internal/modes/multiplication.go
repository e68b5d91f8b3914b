package modes

import (
	"math/rand"

	"github.com/vovakirdan/jungle-drill/internal/core"
	"github.com/vovakirdan/jungle-drill/internal/registry"
)

func init() {
	registry.Register(Multiplication, "Multiplication", multiplication)
}

// multiplication is the times table: (row+1) × (col+1).
func multiplication(row, col int, _ *rand.Rand) core.Question {
	a, b := row+1, col+1
	return core.Question{Operation: core.OpMultiply, Operand1: a, Operand2: b, Answer: a * b}
}
