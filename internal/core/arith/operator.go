package arith

import "strings"

// Operator identifies the arithmetic operation of a problem.
type Operator int

const (
	OperatorUnspecified Operator = iota
	OperatorAdd
	OperatorSubtract
)

// Stable operator tags used on the wire and in configuration.
const (
	TagAdd      = "ADD"
	TagSubtract = "SUBTRACT"
)

func (o Operator) String() string {
	switch o {
	case OperatorUnspecified:
		return "UNSPECIFIED"
	case OperatorAdd:
		return TagAdd
	case OperatorSubtract:
		return TagSubtract
	default:
		return "UNKNOWN"
	}
}

// Symbol returns the infix symbol used when rendering a problem.
func (o Operator) Symbol() string {
	switch o {
	case OperatorAdd:
		return "+"
	case OperatorSubtract:
		return "-"
	default:
		return "?"
	}
}

// ParseOperator resolves a tag such as "ADD" into an Operator. Matching is
// case-insensitive and ignores surrounding whitespace.
func ParseOperator(tag string) (Operator, error) {
	switch strings.ToUpper(strings.TrimSpace(tag)) {
	case TagAdd:
		return OperatorAdd, nil
	case TagSubtract:
		return OperatorSubtract, nil
	default:
		return OperatorUnspecified, &UnsupportedModeError{Mode: tag}
	}
}

// ParseOperators resolves every tag in order, failing on the first unknown one.
func ParseOperators(tags []string) ([]Operator, error) {
	out := make([]Operator, 0, len(tags))
	for _, tag := range tags {
		op, err := ParseOperator(tag)
		if err != nil {
			return nil, err
		}
		out = append(out, op)
	}
	return out, nil
}
