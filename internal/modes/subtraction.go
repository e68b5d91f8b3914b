package modes

import (
	"math/rand"

	"github.com/vovakirdan/jungle-drill/internal/core"
	"github.com/vovakirdan/jungle-drill/internal/registry"
)

// maxSubtractionOffset bounds the random amount added to the minuend.
const maxSubtractionOffset = 4

func init() {
	registry.Register(Subtraction, "Subtraction", subtraction)
}

// subtraction takes the larger coordinate (plus a small offset) as minuend
// and the smaller one as subtrahend, so answers are never negative.
func subtraction(row, col int, rng *rand.Rand) core.Question {
	lo, hi := minMax(row+1, col+1)
	minuend := hi + rng.Intn(maxSubtractionOffset+1)
	return core.Question{Operation: core.OpSubtract, Operand1: minuend, Operand2: lo, Answer: minuend - lo}
}
