package auth

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestIsAuthError(t *testing.T) {
	for _, tc := range []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"not authenticated", ErrNotAuthenticated, true},
		{"no pending verification", ErrNoPendingVerification, true},
		{"invalid code", ErrInvalidCode, true},
		{"validation", &ValidationError{Field: "email", Reason: "must not be empty"}, true},
		{"wrapped sentinel", fmt.Errorf("logout: %w", ErrNotAuthenticated), true},
		{"wrapped validation", fmt.Errorf("register: %w", &ValidationError{Field: "password", Reason: "too short"}), true},
		{"unrelated", io.ErrUnexpectedEOF, false},
		{"plain", errors.New("backend down"), false},
	} {
		if got := IsAuthError(tc.err); got != tc.want {
			t.Errorf("%s: IsAuthError(%v) = %v, want %v", tc.name, tc.err, got, tc.want)
		}
	}
}
