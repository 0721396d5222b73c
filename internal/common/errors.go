package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
	ErrDatabase     = errors.New("database error")

	// ErrCatalogIntegrity marks a step catalog with duplicate order values in
	// one scope. It fails the whole load and is never resolved silently.
	ErrCatalogIntegrity = errors.New("catalog integrity violation")

	// ErrLeaseHeld is returned when another holder owns a job's unexpired lease.
	ErrLeaseHeld = errors.New("job lease held")

	// ErrStaleLease is returned to a walk whose lease expired mid-flight; the
	// walk must abandon the job and leave recovery to a fresh holder.
	ErrStaleLease = errors.New("job lease expired")
)

// CapabilityError is a failed step capability invocation. Kind is a stable
// token stored in the audit metadata ("timeout", "schema", "backend", ...).
type CapabilityError struct {
	Kind    string
	Message string
	Cause   error
}

func (e *CapabilityError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("capability %s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("capability %s: %s", e.Kind, e.Message)
}

func (e *CapabilityError) Unwrap() error {
	return e.Cause
}

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func FailedPreconditionError(message string) error {
	return status.Error(codes.FailedPrecondition, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}
