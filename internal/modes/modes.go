// Package modes registers the arithmetic drill modes. Importing it for side
// effects makes every operation available through the registry.
package modes

// Mode identifiers, also used as persistence keys.
const (
	Addition       = "addition"
	Subtraction    = "subtraction"
	Multiplication = "multiplication"
	Division       = "division"
	Exponentiation = "exponentiation"
	SquareRoot     = "square-root"
)

// IDs lists every mode in menu order.
func IDs() []string {
	return []string{Addition, Subtraction, Multiplication, Division, Exponentiation, SquareRoot}
}

func minMax(a, b int) (int, int) {
	if a < b {
		return a, b
	}
	return b, a
}
