package modes

import (
	"math/rand"

	"github.com/vovakirdan/jungle-drill/internal/core"
	"github.com/vovakirdan/jungle-drill/internal/registry"
)

// perfectSquares is indexed by the cell's distance from the start corner.
var perfectSquares = []int{1, 4, 9, 16, 25, 36, 49, 64, 81, 100, 121, 144}

func init() {
	registry.Register(SquareRoot, "Square Root", squareRoot)
}

func squareRoot(row, col int, _ *rand.Rand) core.Question {
	_, far := minMax(row, col)
	square := perfectSquares[core.Clamp(far, 0, len(perfectSquares)-1)]

	root := 0
	for root*root < square {
		root++
	}
	return core.Question{Operation: core.OpRoot, Operand1: square, Operand2: 2, Answer: root}
}
