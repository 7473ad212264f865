package errors

import (
	"errors"

	"github.com/louisbranch/mathdrill/internal/platform/errors/i18n"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DefaultLocale is the default locale for error messages.
const DefaultLocale = "en-US"

// HandleError converts err into a gRPC status for clients. Generator errors
// are coded through FromArith first. Coded errors carry an ErrorInfo with the
// code and metadata plus a LocalizedMessage rendered for locale; anything else
// becomes an opaque Internal status.
func HandleError(err error, locale string) error {
	if err == nil {
		return nil
	}
	if locale == "" {
		locale = DefaultLocale
	}

	var coded *Error
	if !errors.As(FromArith(err), &coded) {
		return status.Error(codes.Internal, "an unexpected error occurred")
	}

	messages := i18n.For(locale)
	st := status.New(coded.Code.GRPCCode(), coded.Message)
	detailed, detailErr := st.WithDetails(
		&errdetails.ErrorInfo{
			Reason:   string(coded.Code),
			Domain:   Domain,
			Metadata: coded.Metadata,
		},
		&errdetails.LocalizedMessage{
			Locale:  messages.Locale(),
			Message: messages.Render(string(coded.Code), coded.Metadata),
		},
	)
	if detailErr != nil {
		return st.Err()
	}
	return detailed.Err()
}

// GetCode extracts the code from err, or CodeUnknown.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// IsCode checks if the error has the specified code.
func IsCode(err error, code Code) bool {
	return GetCode(err) == code
}
