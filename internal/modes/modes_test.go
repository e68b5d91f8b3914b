package modes

import (
	"testing"

	"github.com/vovakirdan/jungle-drill/internal/core"
	"github.com/vovakirdan/jungle-drill/internal/registry"
)

func TestAllModesRegistered(t *testing.T) {
	for _, id := range IDs() {
		if !registry.Exists(id) {
			t.Errorf("mode %q is not registered", id)
		}
	}

	listed := registry.List()
	if len(listed) != len(IDs()) {
		t.Fatalf("expected %d modes, got %d", len(IDs()), len(listed))
	}
	for i, info := range listed {
		if info.ID != IDs()[i] {
			t.Errorf("List()[%d] = %q, want %q (registration order)", i, info.ID, IDs()[i])
		}
	}
}

func TestGeneratedQuestions(t *testing.T) {
	tests := []struct {
		name     string
		mode     string
		row, col int
		expected core.Question
	}{
		{"addition", Addition, 2, 3, core.Question{Operation: core.OpAdd, Operand1: 3, Operand2: 4, Answer: 7}},
		{"multiplication", Multiplication, 2, 3, core.Question{Operation: core.OpMultiply, Operand1: 3, Operand2: 4, Answer: 12}},
		{"multiplication corner", Multiplication, 9, 9, core.Question{Operation: core.OpMultiply, Operand1: 10, Operand2: 10, Answer: 100}},
		{"division", Division, 2, 5, core.Question{Operation: core.OpDivide, Operand1: 18, Operand2: 3, Answer: 6}},
		{"division start row", Division, 0, 4, core.Question{Operation: core.OpDivide, Operand1: 5, Operand2: 1, Answer: 5}},
		{"power small", Exponentiation, 0, 0, core.Question{Operation: core.OpPower, Operand1: 2, Operand2: 1, Answer: 2}},
		{"power mid", Exponentiation, 2, 3, core.Question{Operation: core.OpPower, Operand1: 3, Operand2: 3, Answer: 27}},
		{"power clamped", Exponentiation, 8, 9, core.Question{Operation: core.OpPower, Operand1: 5, Operand2: 3, Answer: 125}},
		{"root start", SquareRoot, 0, 0, core.Question{Operation: core.OpRoot, Operand1: 1, Operand2: 2, Answer: 1}},
		{"root far", SquareRoot, 3, 8, core.Question{Operation: core.OpRoot, Operand1: 81, Operand2: 2, Answer: 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := registry.Generate(tt.mode, tt.row, tt.col, 1)
			if err != nil {
				t.Fatalf("Generate() failed: %v", err)
			}
			if q != tt.expected {
				t.Errorf("Generate(%s, %d, %d) = %+v, want %+v", tt.mode, tt.row, tt.col, q, tt.expected)
			}
		})
	}
}

func TestSubtractionBounds(t *testing.T) {
	for row := 0; row < 10; row++ {
		for col := 0; col < 10; col++ {
			q, err := registry.Generate(Subtraction, row, col, 42)
			if err != nil {
				t.Fatalf("Generate() failed: %v", err)
			}

			lo, hi := minMax(row+1, col+1)
			if q.Operand2 != lo {
				t.Errorf("(%d,%d) subtrahend = %d, want %d", row, col, q.Operand2, lo)
			}
			if q.Operand1 < hi || q.Operand1 > hi+maxSubtractionOffset {
				t.Errorf("(%d,%d) minuend %d outside [%d, %d]", row, col, q.Operand1, hi, hi+maxSubtractionOffset)
			}
			if q.Answer != q.Operand1-q.Operand2 || q.Answer < 0 {
				t.Errorf("(%d,%d) answer %d inconsistent with %s", row, col, q.Answer, q.Prompt())
			}
		}
	}
}

func TestGenerationIsDeterministic(t *testing.T) {
	for _, mode := range IDs() {
		for row := 0; row < 10; row++ {
			for col := 0; col < 10; col++ {
				first, _ := registry.Generate(mode, row, col, 7)
				second, _ := registry.Generate(mode, row, col, 7)
				if first != second {
					t.Fatalf("%s (%d,%d): %+v != %+v", mode, row, col, first, second)
				}
			}
		}
	}
}

func TestAnswersAreConsistent(t *testing.T) {
	for _, mode := range IDs() {
		for row := 0; row < 10; row++ {
			for col := 0; col < 10; col++ {
				q, _ := registry.Generate(mode, row, col, 3)
				var got int
				switch q.Operation {
				case core.OpAdd:
					got = q.Operand1 + q.Operand2
				case core.OpSubtract:
					got = q.Operand1 - q.Operand2
				case core.OpMultiply:
					got = q.Operand1 * q.Operand2
				case core.OpDivide:
					if q.Operand1%q.Operand2 != 0 {
						t.Errorf("%s (%d,%d): %s has a remainder", mode, row, col, q.Prompt())
					}
					got = q.Operand1 / q.Operand2
				case core.OpPower:
					got = 1
					for i := 0; i < q.Operand2; i++ {
						got *= q.Operand1
					}
				case core.OpRoot:
					got = q.Answer
					if got*got != q.Operand1 {
						t.Errorf("%s (%d,%d): %d is not the root of %d", mode, row, col, got, q.Operand1)
					}
				}
				if got != q.Answer {
					t.Errorf("%s (%d,%d): %s answer %d, computed %d", mode, row, col, q.Prompt(), q.Answer, got)
				}
			}
		}
	}
}
