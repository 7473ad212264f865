package arith

// Generate draws one problem from settings.
//
// The operator is chosen uniformly from settings.Modes. Each attempt samples
// two operands with DefaultMaxAttempts per operand, orders them so A >= B and
// checks the operator invariant. Up to maxAttempts pairs are tried before an
// *AttemptsExhaustedError carrying maxAttempts is returned. A budget of zero
// or less fails before any draw, including the mode draw. An operand that
// cannot be sampled at all fails the call with the sampler's error. Pairs
// whose result does not fit in an int are rejected like any other pair.
//
// Errors:
//
//   - ErrNoModesAvailable or ErrInvalidConfiguration when settings fail Validate.
//   - *UnsupportedModeError when the chosen operator is not ADD or SUBTRACT.
//   - *AttemptsExhaustedError when no pair is accepted in time.
func Generate(src Source, settings Settings, maxAttempts int) (Calculation, error) {
	if err := settings.Validate(); err != nil {
		return Calculation{}, err
	}
	if maxAttempts <= 0 {
		return Calculation{}, &AttemptsExhaustedError{Attempts: maxAttempts}
	}
	if src == nil {
		src = DefaultSource()
	}

	mode := settings.modes[0]
	if len(settings.modes) > 1 {
		mode = settings.modes[src.Intn(len(settings.modes))]
	}

	switch mode {
	case OperatorAdd:
		return generatePair(src, settings, maxAttempts, mode, func(a, b int) (int, bool) {
			sum, ok := addInt(a, b)
			return sum, ok && sum <= settings.max && a != 0 && b != 0
		})
	case OperatorSubtract:
		return generatePair(src, settings, maxAttempts, mode, func(a, b int) (int, bool) {
			diff, ok := subInt(a, b)
			return diff, ok && diff >= 0
		})
	default:
		return Calculation{}, &UnsupportedModeError{Mode: mode.String()}
	}
}

// GenerateDefault is Generate with DefaultMaxAttempts.
func GenerateDefault(src Source, settings Settings) (Calculation, error) {
	return Generate(src, settings, DefaultMaxAttempts)
}

// generatePair runs the shared rejection loop. accept receives the ordered
// operands and returns the result and whether the pair is acceptable.
func generatePair(src Source, settings Settings, maxAttempts int, op Operator, accept func(a, b int) (int, bool)) (Calculation, error) {
	for attempts := 0; attempts < maxAttempts; attempts++ {
		a, err := Sample(src, settings.min, settings.max, settings.multiple, DefaultMaxAttempts)
		if err != nil {
			return Calculation{}, err
		}
		b, err := Sample(src, settings.min, settings.max, settings.multiple, DefaultMaxAttempts)
		if err != nil {
			return Calculation{}, err
		}
		if b > a {
			a, b = b, a
		}

		if c, ok := accept(a, b); ok {
			return Calculation{A: a, B: b, C: c, Operator: op}, nil
		}
	}

	return Calculation{}, &AttemptsExhaustedError{Attempts: maxAttempts}
}

// addInt returns a+b and whether it did not overflow.
func addInt(a, b int) (int, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

// subInt returns a-b and whether it did not overflow.
func subInt(a, b int) (int, bool) {
	diff := a - b
	if (b < 0 && diff < a) || (b > 0 && diff > a) {
		return 0, false
	}
	return diff, true
}
