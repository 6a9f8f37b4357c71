package bedrock

import (
	"fmt"

	"github.com/Laisky/errors/v2"
	"github.com/aws/smithy-go"
)

// ErrorKind is the closed taxonomy of gateway failures. The caller's
// retry policy keys off the kind: auth errors are terminal, rate limits
// should be retried with backoff, model errors indicate a caller or
// mapping bug and must not be retried.
type ErrorKind int

const (
	ErrKindAuth ErrorKind = iota + 1
	ErrKindRateLimit
	ErrKindModel
	ErrKindTransport
)

func (k ErrorKind) String() string {
	switch k {
	case ErrKindAuth:
		return "auth"
	case ErrKindRateLimit:
		return "rate_limit"
	case ErrKindModel:
		return "model"
	case ErrKindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// ClassifiedError wraps a transport or mapping failure with its kind.
type ClassifiedError struct {
	Kind  ErrorKind
	cause error
}

func (e *ClassifiedError) Error() string {
	return fmt.Sprintf("bedrock %s error: %s", e.Kind, e.cause.Error())
}

func (e *ClassifiedError) Unwrap() error {
	return e.cause
}

// NewAuthError reports absent or rejected credentials.
func NewAuthError(format string, args ...any) *ClassifiedError {
	return &ClassifiedError{Kind: ErrKindAuth, cause: errors.Errorf(format, args...)}
}

// NewModelError reports a malformed request or unrecognized family.
func NewModelError(format string, args ...any) *ClassifiedError {
	return &ClassifiedError{Kind: ErrKindModel, cause: errors.Errorf(format, args...)}
}

// Classify maps a service failure to the error taxonomy. Classification
// keys off the service's structured error code when one is present;
// anything unrecognized becomes a transport error carrying the original
// message for diagnostics. Already-classified errors pass through.
func Classify(err error) *ClassifiedError {
	if err == nil {
		return nil
	}

	var classified *ClassifiedError
	if errors.As(err, &classified) {
		return classified
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "ThrottlingException", "TooManyRequestsException":
			return &ClassifiedError{Kind: ErrKindRateLimit, cause: err}
		case "ValidationException":
			return &ClassifiedError{Kind: ErrKindModel, cause: err}
		case "UnrecognizedClientException", "AccessDeniedException", "ExpiredTokenException":
			return &ClassifiedError{Kind: ErrKindAuth, cause: err}
		}
	}

	return &ClassifiedError{Kind: ErrKindTransport, cause: err}
}

// IsKind reports whether err carries the given classification.
func IsKind(err error, kind ErrorKind) bool {
	var classified *ClassifiedError
	return errors.As(err, &classified) && classified.Kind == kind
}
