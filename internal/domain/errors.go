package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is the soft not-found signal for lookups by id.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateApplication is returned when a candidate already has an
	// application for the same job.
	ErrDuplicateApplication = errors.New("candidate has already applied to this job")
	// ErrEmailTaken is returned on signup with an email that already exists
	// in either tier of the user directory.
	ErrEmailTaken = errors.New("user with this email already exists")
)

// ValidationError reports a required field that is missing or empty at
// create time. The operation is aborted with no partial write.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func Required(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "must not be empty"}
}

// IllegalTransitionError reports an application status move that is not in
// the transition table.
type IllegalTransitionError struct {
	From ApplicationStatus
	To   ApplicationStatus
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal status transition from %q to %q", e.From, e.To)
}
