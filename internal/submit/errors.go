package submit

import (
	"errors"
	"fmt"
)

// Kind classifies a submission failure.
type Kind string

const (
	// KindValidation is a local, field-scoped rejection. Not retryable.
	KindValidation Kind = "validation"
	// KindNetwork means the transport failed. Retryable.
	KindNetwork Kind = "network"
	// KindTimeout means the submission did not finish in time. Retryable.
	KindTimeout Kind = "timeout"
)

// Error is a classified submission failure.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Retryable reports whether the same values may be submitted again.
func (e *Error) Retryable() bool {
	return e.Kind == KindNetwork || e.Kind == KindTimeout
}

func ValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NetworkError(message string, cause error) *Error {
	return &Error{Kind: KindNetwork, Message: message, Cause: cause}
}

func TimeoutError(message string, cause error) *Error {
	return &Error{Kind: KindTimeout, Message: message, Cause: cause}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// IsRetryable reports whether err is a classified, retryable failure.
func IsRetryable(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Retryable()
}
