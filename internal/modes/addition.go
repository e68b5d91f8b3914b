package modes

import (
	"math/rand"

	"github.com/vovakirdan/jungle-drill/internal/core"
	"github.com/vovakirdan/jungle-drill/internal/registry"
)

func init() {
	registry.Register(Addition, "Addition", addition)
}

// addition asks (row+1) + (col+1).
func addition(row, col int, _ *rand.Rand) core.Question {
	a, b := row+1, col+1
	return core.Question{Operation: core.OpAdd, Operand1: a, Operand2: b, Answer: a + b}
}
