// Package errors provides structured error handling with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Request errors
	CodeInvalidRequest Code = "INVALID_REQUEST"

	// Generation errors
	CodeInvalidConfiguration Code = "INVALID_CONFIGURATION"
	CodeNoModesAvailable     Code = "NO_MODES_AVAILABLE"
	CodeUnsupportedMode      Code = "UNSUPPORTED_MODE"
	CodeAttemptsExhausted    Code = "ATTEMPTS_EXHAUSTED"

	// Random/seed errors
	CodeSeedOutOfRange Code = "SEED_OUT_OF_RANGE"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeInvalidRequest,
		CodeInvalidConfiguration,
		CodeNoModesAvailable,
		CodeUnsupportedMode,
		CodeSeedOutOfRange:
		return codes.InvalidArgument

	// FailedPrecondition - the settings cannot produce a problem
	case CodeAttemptsExhausted:
		return codes.FailedPrecondition

	default:
		return codes.Internal
	}
}
