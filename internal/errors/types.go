// Package errors classifies failures as transient or permanent and provides
// bounded retry helpers. The assembler uses it to wait for the live document
// host; everything pure in scopedraft never produces an error at all.
package errors

import (
	"errors"
	"fmt"
)

// TransientError represents an error that can be retried.
type TransientError struct {
	Err     error
	Message string
}

func (e *TransientError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("transient error: %v", e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// Transient wraps err as retryable.
func Transient(err error) *TransientError {
	return &TransientError{Err: err}
}

// PermanentError represents an error that should not be retried.
type PermanentError struct {
	Err     error
	Message string
}

func (e *PermanentError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("permanent error: %v", e.Err)
}

func (e *PermanentError) Unwrap() error {
	return e.Err
}

// Permanent wraps err as non-retryable.
func Permanent(err error) *PermanentError {
	return &PermanentError{Err: err}
}

// IsTransient checks whether an error is retryable. Unmarked errors default
// to non-transient so retries never loop on programming mistakes.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var transientErr *TransientError
	return errors.As(err, &transientErr)
}

// IsPermanent checks whether an error is explicitly non-retryable.
func IsPermanent(err error) bool {
	if err == nil {
		return false
	}
	var permanentErr *PermanentError
	return errors.As(err, &permanentErr)
}
