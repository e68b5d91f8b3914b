package modes

import (
	"math/rand"

	"github.com/vovakirdan/jungle-drill/internal/core"
	"github.com/vovakirdan/jungle-drill/internal/registry"
)

func init() {
	registry.Register(Division, "Division", division)
}

// division is the inverse times table, always with a whole quotient.
func division(row, col int, _ *rand.Rand) core.Question {
	lo, hi := minMax(row+1, col+1)
	divisor := max(1, lo)
	quotient := hi
	return core.Question{
		Operation: core.OpDivide,
		Operand1:  divisor * quotient,
		Operand2:  divisor,
		Answer:    quotient,
	}
}
