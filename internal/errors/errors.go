package gerr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest marks bad or missing parameters and malformed dates.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrNotFound marks a referenced entity that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDependency marks database or mail transport failures.
	ErrDependency = errors.New("dependency failure")

	ErrUnauthenticated  = errors.New("not authenticated")
	MailApiLimitReached = fmt.Errorf("%w: mail api limit reached", ErrDependency)
)

// InvalidRequest returns an error wrapping ErrInvalidRequest with the formatted message.
func InvalidRequest(format string, args ...any) error {
	return &kindError{kind: ErrInvalidRequest, msg: fmt.Sprintf(format, args...)}
}

// NotFound returns an error wrapping ErrNotFound with the formatted message.
func NotFound(format string, args ...any) error {
	return &kindError{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

// Dependency wraps err as a dependency failure, keeping the chain intact.
func Dependency(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &kindError{kind: ErrDependency, msg: msg, cause: err}
}

type kindError struct {
	kind  error
	msg   string
	cause error
}

func (e *kindError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

func (e *kindError) Is(target error) bool {
	return target == e.kind
}

func (e *kindError) Unwrap() error {
	return e.cause
}

// IsInvalidRequest reports whether err is a validation failure.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsNotFound reports whether err refers to a missing entity.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
