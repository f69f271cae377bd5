package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMeetNotFound     = errors.New("meet not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrAttendeeNotFound = errors.New("attendee not found")
	ErrMessageNotFound  = errors.New("message not found")
)

// policy
var (
	ErrStatusNotAcceptingApplications = errors.New("meet is not accepting applications")
	ErrCapacityExceeded               = errors.New("meet is at capacity")
	ErrGuestLimitExceeded             = errors.New("guest limit exceeded")
	ErrIndemnityNotAccepted           = errors.New("indemnity must be accepted")
	ErrTransitionNotAllowed           = errors.New("status transition not allowed")
	ErrActionNotAllowed               = errors.New("action not allowed in current status")
)

// identity
var (
	ErrDuplicateApplication = errors.New("an application with these contact details already exists")
	ErrIdentityMismatch     = errors.New("contact details do not match the application")
	ErrForbidden            = errors.New("forbidden")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrEmailTaken           = errors.New("email already registered")
)

var (
	ErrValidation           = errors.New("validation error")
	ErrMissingRequiredField = errors.New("missing required field")
)

// DuplicateApplicationError is returned instead of creating a second row for
// the same contact details. Callers branch on AttendeeID to offer update,
// withdraw or abandon.
type DuplicateApplicationError struct {
	AttendeeID string
}

func (e *DuplicateApplicationError) Error() string {
	return fmt.Sprintf("%s (attendee %s)", ErrDuplicateApplication.Error(), e.AttendeeID)
}

func (e *DuplicateApplicationError) Unwrap() error {
	return ErrDuplicateApplication
}

// MissingField wraps ErrMissingRequiredField with the offending field name.
func MissingField(field string) error {
	return fmt.Errorf("%w: %s", ErrMissingRequiredField, field)
}
