package auth

import (
	"errors"
	"fmt"
)

// ErrNotAuthenticated is returned when an operation requires an existing
// session and none exists.
var ErrNotAuthenticated = errors.New("auth: not authenticated")

// ErrNoPendingVerification is returned by VerifyPhoneCode when no phone
// verification is in progress.
var ErrNoPendingVerification = errors.New("auth: no phone verification in progress")

// ErrInvalidCode is returned when a verification code does not match.
// The pending verification stays intact so the caller can retry.
var ErrInvalidCode = errors.New("auth: invalid verification code")

// ValidationError reports caller-supplied input that failed a precondition.
type ValidationError struct {
	// Field is the offending input ("email", "password", "phoneNumber").
	Field string

	// Reason describes the failed precondition.
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("auth: invalid %s: %s", e.Field, e.Reason)
}

// IsAuthError reports whether err belongs to this package's taxonomy.
func IsAuthError(err error) bool {
	if err == nil {
		return false
	}
	var verr *ValidationError
	return errors.Is(err, ErrNotAuthenticated) ||
		errors.Is(err, ErrNoPendingVerification) ||
		errors.Is(err, ErrInvalidCode) ||
		errors.As(err, &verr)
}

// requireNonEmpty returns a ValidationError when value is empty.
func requireNonEmpty(field, value string) error {
	if value == "" {
		return &ValidationError{Field: field, Reason: "must not be empty"}
	}
	return nil
}
