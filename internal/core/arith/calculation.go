package arith

import "fmt"

// Calculation is a generated problem: A op B = C, with A >= B.
type Calculation struct {
	A        int
	B        int
	C        int
	Operator Operator
}

// String renders the problem with its result, e.g. "7 + 3 = 10".
func (c Calculation) String() string {
	return fmt.Sprintf("%d %s %d = %d", c.A, c.Operator.Symbol(), c.B, c.C)
}

// Holds reports whether C is the result of applying Operator to A and B.
func (c Calculation) Holds() bool {
	switch c.Operator {
	case OperatorAdd:
		return c.A+c.B == c.C
	case OperatorSubtract:
		return c.A-c.B == c.C
	default:
		return false
	}
}
