package auth

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Backend performs the actual authentication work.
// The store funnels every operation through this boundary so a real API
// client can replace MockBackend without changing the store's contract.
type Backend interface {
	// RegisterWithEmail creates an account and returns its session.
	RegisterWithEmail(ctx context.Context, email, password string) (Session, error)

	// LoginWithEmail signs in with email credentials.
	LoginWithEmail(ctx context.Context, email, password string) (Session, error)

	// RequestPhoneCode asks for a verification code to be sent.
	RequestPhoneCode(ctx context.Context, phoneNumber string) error

	// VerifyPhoneCode checks the code for the pending phone number and
	// returns the resulting session. Returns ErrInvalidCode on mismatch.
	VerifyPhoneCode(ctx context.Context, phoneNumber, code string) (Session, error)

	// ResetPassword triggers a password-reset message. Acknowledgement only.
	ResetPassword(ctx context.Context, email string) error

	// UpdateProfile merges update into current and returns the result.
	UpdateProfile(ctx context.Context, current Session, update ProfileUpdate) (Session, error)
}

// AcceptedTestCode is the verification code MockBackend accepts.
const AcceptedTestCode = "123456"

// MockBackend simulates the platform backend in-process.
// Operations succeed for any plausible input after an optional simulated
// latency; there is no real user database.
type MockBackend struct {
	latency time.Duration
	code    string
	now     func() time.Time
}

// MockOption configures MockBackend.
type MockOption func(*MockBackend)

// WithLatency sets the simulated round-trip latency. Default: none.
func WithLatency(d time.Duration) MockOption {
	return func(b *MockBackend) {
		b.latency = d
	}
}

// WithAcceptedCode overrides the accepted verification code.
func WithAcceptedCode(code string) MockOption {
	return func(b *MockBackend) {
		b.code = code
	}
}

// WithClock overrides the clock used for user IDs. Used by tests.
func WithClock(now func() time.Time) MockOption {
	return func(b *MockBackend) {
		b.now = now
	}
}

// NewMockBackend creates a mock backend.
func NewMockBackend(opts ...MockOption) *MockBackend {
	b := &MockBackend{
		code: AcceptedTestCode,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *MockBackend) RegisterWithEmail(ctx context.Context, email, password string) (Session, error) {
	if err := b.sleep(ctx); err != nil {
		return Session{}, err
	}
	return b.emailSession(email), nil
}

func (b *MockBackend) LoginWithEmail(ctx context.Context, email, password string) (Session, error) {
	if err := b.sleep(ctx); err != nil {
		return Session{}, err
	}
	// The mock has no user database: any non-empty credentials sign in.
	return b.emailSession(email), nil
}

func (b *MockBackend) RequestPhoneCode(ctx context.Context, phoneNumber string) error {
	// In a real backend this would trigger an SMS.
	return b.sleep(ctx)
}

func (b *MockBackend) VerifyPhoneCode(ctx context.Context, phoneNumber, code string) (Session, error) {
	if err := b.sleep(ctx); err != nil {
		return Session{}, err
	}
	if code != b.code {
		return Session{}, ErrInvalidCode
	}
	return Session{
		UserID:      b.newUserID(),
		PhoneNumber: phoneNumber,
	}, nil
}

func (b *MockBackend) ResetPassword(ctx context.Context, email string) error {
	return b.sleep(ctx)
}

func (b *MockBackend) UpdateProfile(ctx context.Context, current Session, update ProfileUpdate) (Session, error) {
	if err := b.sleep(ctx); err != nil {
		return Session{}, err
	}
	return update.Apply(current), nil
}

// emailSession builds a session for an email identity with the display name
// derived from the email's local part.
func (b *MockBackend) emailSession(email string) Session {
	name := email
	if i := strings.Index(email, "@"); i >= 0 {
		name = email[:i]
	}
	return Session{
		UserID:      b.newUserID(),
		Email:       email,
		DisplayName: name,
	}
}

func (b *MockBackend) newUserID() string {
	return fmt.Sprintf("user_%d", b.now().UnixMilli())
}

// sleep simulates network latency, honoring context cancellation.
func (b *MockBackend) sleep(ctx context.Context) error {
	if b.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(b.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
