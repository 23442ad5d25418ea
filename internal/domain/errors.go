package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors matched through errors.Is.
var (
	// ErrValidation marks bad caller input. Nothing was changed.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a lookup of something that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConsistency marks a profile and the hour buckets disagreeing.
	ErrConsistency = errors.New("index out of sync")

	// ErrDelivery marks a failed outbound message.
	ErrDelivery = errors.New("delivery failed")
)

// ValidationError describes the field that was rejected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NewValidationError builds a ValidationError with a formatted reason.
func NewValidationError(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// NotFoundError names what was looked up and by which key.
type NotFoundError struct {
	What string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.What, e.Key)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ConsistencyError is raised when a bucket entry expected from a profile is missing,
// or when one is present that no profile accounts for.
type ConsistencyError struct {
	UserID int64
	Hour   int
	Minute string
	Detail string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("user %d at hour %02d minute %s: %s", e.UserID, e.Hour, e.Minute, e.Detail)
}

func (e *ConsistencyError) Is(target error) bool { return target == ErrConsistency }

// DeliveryError wraps a transport failure for one recipient.
type DeliveryError struct {
	UserID int64
	Err    error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("failed to deliver to user %d: %v", e.UserID, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

func (e *DeliveryError) Is(target error) bool { return target == ErrDelivery }
