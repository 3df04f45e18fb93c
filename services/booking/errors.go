package booking

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned when a session id has no live entry, either
// because it never existed or because its TTL lapsed.
var ErrSessionNotFound = errors.New("booking session not found or expired")

// ValidationError reports a configuration that cannot be submitted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// SessionStateError reports an operation against a session in the wrong
// state, e.g. a second submit while payment is already processing.
type SessionStateError struct {
	Status string
}

func (e *SessionStateError) Error() string {
	return fmt.Sprintf("booking session is %s; no further changes accepted", e.Status)
}

// PaymentDeclinedError carries the payment collaborator's failure message,
// which is surfaced to the customer verbatim. No retry is attempted.
type PaymentDeclinedError struct {
	Message string
}

func (e *PaymentDeclinedError) Error() string {
	return e.Message
}
