package arith

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration indicates settings that cannot drive generation.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ErrNoModesAvailable indicates settings without any operator.
var ErrNoModesAvailable = fmt.Errorf("%w: no modes available", ErrInvalidConfiguration)

// ErrUnsupportedMode matches any *UnsupportedModeError via errors.Is.
var ErrUnsupportedMode = errors.New("unsupported mode")

// ErrAttemptsExhausted matches any *AttemptsExhaustedError via errors.Is.
var ErrAttemptsExhausted = errors.New("attempts exhausted")

// UnsupportedModeError reports an operator the generator cannot dispatch.
type UnsupportedModeError struct {
	Mode string
}

func (e *UnsupportedModeError) Error() string {
	return fmt.Sprintf("unsupported mode %q", e.Mode)
}

// Is reports whether target is ErrUnsupportedMode.
func (e *UnsupportedModeError) Is(target error) bool {
	return target == ErrUnsupportedMode
}

// AttemptsExhaustedError reports that a sampling budget ran out before any
// candidate was accepted. Attempts is the budget that was requested.
type AttemptsExhaustedError struct {
	Attempts int
}

func (e *AttemptsExhaustedError) Error() string {
	return fmt.Sprintf("no calculation found within %d iterations", e.Attempts)
}

// Is reports whether target is ErrAttemptsExhausted.
func (e *AttemptsExhaustedError) Is(target error) bool {
	return target == ErrAttemptsExhausted
}
