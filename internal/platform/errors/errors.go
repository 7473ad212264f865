package errors

import (
	"errors"
	"strconv"

	"github.com/louisbranch/mathdrill/internal/core/arith"
)

// Domain is the error domain attached to gRPC error details.
const Domain = "github.com/louisbranch/mathdrill"

// Error is a coded failure. Metadata feeds the localized message template
// registered for Code.
type Error struct {
	Code     Code
	Message  string
	Metadata map[string]string
	Cause    error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e.Code == t.Code
}

// New returns an error without a cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches code and template metadata to cause, keeping its message.
func Wrap(code Code, cause error, metadata map[string]string) *Error {
	return &Error{Code: code, Message: cause.Error(), Metadata: metadata, Cause: cause}
}

// FromArith maps generator errors to coded errors. Errors that already carry
// a code, and errors arith does not define, are returned unchanged.
func FromArith(err error) error {
	if err == nil {
		return nil
	}
	var coded *Error
	if errors.As(err, &coded) {
		return err
	}

	var modeErr *arith.UnsupportedModeError
	var exhaustedErr *arith.AttemptsExhaustedError
	switch {
	case errors.As(err, &modeErr):
		return Wrap(CodeUnsupportedMode, err, map[string]string{"Mode": modeErr.Mode})
	case errors.As(err, &exhaustedErr):
		return Wrap(CodeAttemptsExhausted, err, map[string]string{"Attempts": strconv.Itoa(exhaustedErr.Attempts)})
	case errors.Is(err, arith.ErrNoModesAvailable):
		return Wrap(CodeNoModesAvailable, err, nil)
	case errors.Is(err, arith.ErrInvalidConfiguration):
		return Wrap(CodeInvalidConfiguration, err, nil)
	default:
		return err
	}
}
