package arith

import (
	"math"
	"math/rand"
	"strconv"
	"testing"
)

type stringAnswer string

func (s stringAnswer) String() string { return string(s) }

func TestEvaluate(t *testing.T) {
	calc := Calculation{A: 2, B: 3, C: 5, Operator: OperatorAdd}
	tests := []struct {
		name   string
		answer any
		want   bool
	}{
		{name: "int", answer: 5, want: true},
		{name: "int64", answer: int64(5), want: true},
		{name: "uint8", answer: uint8(5), want: true},
		{name: "float", answer: 5.0, want: true},
		{name: "string", answer: "5", want: true},
		{name: "padded string", answer: " 5\n", want: true},
		{name: "leading zero", answer: "05", want: true},
		{name: "decimal string", answer: "5.0", want: true},
		{name: "stringer", answer: stringAnswer("5"), want: true},
		{name: "wrong int", answer: 4, want: false},
		{name: "wrong string", answer: "4", want: false},
		{name: "fraction", answer: 5.5, want: false},
		{name: "empty string", answer: "", want: false},
		{name: "blank string", answer: "   ", want: false},
		{name: "letters", answer: "abc", want: false},
		{name: "nan string", answer: "NaN", want: false},
		{name: "nan float", answer: math.NaN(), want: false},
		{name: "nil", answer: nil, want: false},
		{name: "bool", answer: true, want: false},
		{name: "slice", answer: []int{5}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(calc, tt.answer); got != tt.want {
				t.Fatalf("Evaluate(%v) = %v, want %v", tt.answer, got, tt.want)
			}
		})
	}
}

func TestEvaluateZeroResultDoesNotMatchEmpty(t *testing.T) {
	calc := Calculation{A: 4, B: 4, C: 0, Operator: OperatorSubtract}
	if Evaluate(calc, "") {
		t.Fatal("empty answer must not match a zero result")
	}
	if !Evaluate(calc, "0") {
		t.Fatal("expected \"0\" to match a zero result")
	}
}

func TestEvaluateGeneratedResults(t *testing.T) {
	settings := mustSettings(t, []Operator{OperatorAdd, OperatorSubtract}, WithRange(0, 60), WithMultiple(3))
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 100; i++ {
		calc, err := GenerateDefault(rng, settings)
		if err != nil {
			t.Fatalf("Generate returned error: %v", err)
		}
		if !Evaluate(calc, calc.C) {
			t.Fatalf("Evaluate(%v, %d) = false", calc, calc.C)
		}
		if !Evaluate(calc, strconv.Itoa(calc.C)) {
			t.Fatalf("Evaluate(%v, %q) = false", calc, strconv.Itoa(calc.C))
		}
		if Evaluate(calc, calc.C+1) {
			t.Fatalf("Evaluate(%v, %d) = true", calc, calc.C+1)
		}
	}
}

func TestCalculationString(t *testing.T) {
	calc := Calculation{A: 7, B: 3, C: 4, Operator: OperatorSubtract}
	if got := calc.String(); got != "7 - 3 = 4" {
		t.Fatalf("String() = %q, want %q", got, "7 - 3 = 4")
	}
	if !calc.Holds() {
		t.Fatal("expected calculation to hold")
	}
	if (Calculation{A: 1, B: 1, C: 3, Operator: OperatorAdd}).Holds() {
		t.Fatal("expected 1 + 1 = 3 not to hold")
	}
}
