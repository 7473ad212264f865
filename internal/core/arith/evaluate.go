package arith

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Evaluate reports whether answer equals calc.C. Numbers compare by value and
// strings are parsed first, so 5, 5.0, "5" and " 05 " all match a result of 5.
// Input that does not convert to a number evaluates to false.
func Evaluate(calc Calculation, answer any) bool {
	value, ok := ParseAnswer(answer)
	if !ok {
		return false
	}
	return value == float64(calc.C)
}

// ParseAnswer converts a user answer into a number. Integer, unsigned and
// float kinds convert directly; strings and fmt.Stringer values are trimmed
// and parsed as decimal floats. Empty strings, NaN and anything else report
// false.
func ParseAnswer(answer any) (float64, bool) {
	var value float64
	switch v := answer.(type) {
	case nil:
		return 0, false
	case int:
		value = float64(v)
	case int8:
		value = float64(v)
	case int16:
		value = float64(v)
	case int32:
		value = float64(v)
	case int64:
		value = float64(v)
	case uint:
		value = float64(v)
	case uint8:
		value = float64(v)
	case uint16:
		value = float64(v)
	case uint32:
		value = float64(v)
	case uint64:
		value = float64(v)
	case float32:
		value = float64(v)
	case float64:
		value = v
	case string:
		return parseAnswerString(v)
	case fmt.Stringer:
		return parseAnswerString(v.String())
	default:
		return 0, false
	}
	if math.IsNaN(value) {
		return 0, false
	}
	return value, true
}

func parseAnswerString(raw string) (float64, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}
