package core

import "fmt"

// Operation is the arithmetic operation a question drills.
type Operation string

const (
	OpAdd      Operation = "+"
	OpSubtract Operation = "-"
	OpMultiply Operation = "×"
	OpDivide   Operation = "÷"
	OpPower    Operation = "^"
	OpRoot     Operation = "√"
)

// Question is one generated arithmetic exercise bound to a board cell.
// It is immutable once generated for a given mode and coordinate.
type Question struct {
	Operation Operation `json:"operation"`
	Operand1  int       `json:"operand1"`
	Operand2  int       `json:"operand2"`
	Answer    int       `json:"correctAnswer"`
}

// Prompt renders the question without its answer.
func (q Question) Prompt() string {
	switch q.Operation {
	case OpRoot:
		return fmt.Sprintf("√%d", q.Operand1)
	case OpPower:
		return fmt.Sprintf("%d^%d", q.Operand1, q.Operand2)
	default:
		return fmt.Sprintf("%d %s %d", q.Operand1, q.Operation, q.Operand2)
	}
}

// Check reports whether value is the correct answer.
func (q Question) Check(value int) bool {
	return value == q.Answer
}
