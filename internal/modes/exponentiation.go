package modes

import (
	"math/rand"

	"github.com/vovakirdan/jungle-drill/internal/core"
	"github.com/vovakirdan/jungle-drill/internal/registry"
)

func init() {
	registry.Register(Exponentiation, "Exponentiation", exponentiation)
}

// exponentiation keeps numbers small: base 2..5, exponent 1..3.
func exponentiation(row, col int, _ *rand.Rand) core.Question {
	lo, _ := minMax(row+1, col+1)
	_, far := minMax(row, col)
	base := core.Clamp(lo, 2, 5)
	exp := core.Clamp(far, 1, 3)

	answer := 1
	for range exp {
		answer *= base
	}
	return core.Question{Operation: core.OpPower, Operand1: base, Operand2: exp, Answer: answer}
}
