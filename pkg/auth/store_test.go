package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/skilllink-dev/skilllink/pkg/storage"
	"github.com/skilllink-dev/skilllink/pkg/toast"
)

func TestInitialStateUnauthenticated(t *testing.T) {
	s := NewStore(Config{})
	if s.State().Phase != PhaseUnauthenticated {
		t.Errorf("expected unauthenticated start, got %q", s.State().Phase)
	}
	if _, ok := s.CurrentUser(); ok {
		t.Error("expected no current user")
	}
}

func TestRegisterWithEmail(t *testing.T) {
	ctx := context.Background()
	s := NewStore(Config{})

	if err := s.RegisterWithEmail(ctx, "ravi.kumar@example.com", "secret"); err != nil {
		t.Fatalf("RegisterWithEmail failed: %v", err)
	}

	session, ok := s.CurrentUser()
	if !ok {
		t.Fatal("expected authenticated session")
	}
	if session.Email != "ravi.kumar@example.com" {
		t.Errorf("unexpected email %q", session.Email)
	}
	if session.DisplayName != "ravi.kumar" {
		t.Errorf("expected display name from email local part, got %q", session.DisplayName)
	}
	if session.UserID == "" {
		t.Error("expected assigned user ID")
	}
}

func TestEmptyCredentialsRejected(t *testing.T) {
	ctx := context.Background()
	s := NewStore(Config{})

	for name, err := range map[string]error{
		"register empty email":    s.RegisterWithEmail(ctx, "", "pw"),
		"register empty password": s.RegisterWithEmail(ctx, "a@b.c", ""),
		"login empty email":       s.LoginWithEmail(ctx, "", "pw"),
		"login empty password":    s.LoginWithEmail(ctx, "a@b.c", ""),
		"phone empty number":      s.LoginWithPhone(ctx, ""),
		"reset empty email":       s.ResetPassword(ctx, ""),
	} {
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%s: expected ValidationError, got %v", name, err)
		}
	}

	if s.State().Phase != PhaseUnauthenticated {
		t.Errorf("validation failures must not change state, got %q", s.State().Phase)
	}
}

func TestLoginPersistsSession(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()

	s := NewStore(Config{Storage: kv})
	if err := s.LoginWithEmail(ctx, "meena@example.com", "pw"); err != nil {
		t.Fatalf("LoginWithEmail failed: %v", err)
	}
	session, _ := s.CurrentUser()

	// A fresh store over the same storage starts Authenticated.
	restored := NewStore(Config{Storage: kv})
	if restored.State().Phase != PhaseAuthenticated {
		t.Fatalf("expected restored Authenticated, got %q", restored.State().Phase)
	}
	got, _ := restored.CurrentUser()
	if got != session {
		t.Errorf("restored session differs: %+v vs %+v", got, session)
	}
}

func TestPhoneVerificationFlow(t *testing.T) {
	ctx := context.Background()
	s := NewStore(Config{})

	// Verify with no pending request fails.
	if err := s.VerifyPhoneCode(ctx, "123456"); !errors.Is(err, ErrNoPendingVerification) {
		t.Fatalf("expected ErrNoPendingVerification, got %v", err)
	}

	if err := s.LoginWithPhone(ctx, "+911234567890"); err != nil {
		t.Fatalf("LoginWithPhone failed: %v", err)
	}
	st := s.State()
	if st.Phase != PhasePhoneVerificationPending || st.PendingPhone != "+911234567890" {
		t.Fatalf("expected pending verification for +911234567890, got %+v", st)
	}
	if st.Session != nil {
		t.Error("phone login must not create a session")
	}

	// Wrong code fails and leaves the pending verification intact.
	if err := s.VerifyPhoneCode(ctx, "000000"); !errors.Is(err, ErrInvalidCode) {
		t.Fatalf("expected ErrInvalidCode, got %v", err)
	}
	st = s.State()
	if st.Phase != PhasePhoneVerificationPending || st.PendingPhone != "+911234567890" {
		t.Fatalf("wrong code must keep pending state, got %+v", st)
	}

	// Accepted test code completes the login.
	if err := s.VerifyPhoneCode(ctx, "123456"); err != nil {
		t.Fatalf("VerifyPhoneCode failed: %v", err)
	}
	session, ok := s.CurrentUser()
	if !ok {
		t.Fatal("expected authenticated session")
	}
	if session.PhoneNumber != "+911234567890" {
		t.Errorf("expected session keyed by phone number, got %q", session.PhoneNumber)
	}

	// The pending verification was consumed.
	if err := s.VerifyPhoneCode(ctx, "123456"); !errors.Is(err, ErrNoPendingVerification) {
		t.Errorf("expected pending state consumed, got %v", err)
	}
}

func TestNewPhoneLoginOverwritesPending(t *testing.T) {
	ctx := context.Background()
	s := NewStore(Config{})

	if err := s.LoginWithPhone(ctx, "+911111111111"); err != nil {
		t.Fatalf("LoginWithPhone failed: %v", err)
	}
	if err := s.LoginWithPhone(ctx, "+912222222222"); err != nil {
		t.Fatalf("LoginWithPhone failed: %v", err)
	}
	if got := s.State().PendingPhone; got != "+912222222222" {
		t.Errorf("expected latest phone number pending, got %q", got)
	}
}

func TestPendingVerificationRestored(t *testing.T) {
	ctx := context.Background()
	transient := storage.NewMemoryStore()

	s := NewStore(Config{Transient: transient})
	if err := s.LoginWithPhone(ctx, "+911234567890"); err != nil {
		t.Fatalf("LoginWithPhone failed: %v", err)
	}

	resumed := NewStore(Config{Transient: transient})
	st := resumed.State()
	if st.Phase != PhasePhoneVerificationPending || st.PendingPhone != "+911234567890" {
		t.Errorf("expected resumed pending verification, got %+v", st)
	}
}

func TestCancelPhoneVerification(t *testing.T) {
	ctx := context.Background()
	transient := storage.NewMemoryStore()
	s := NewStore(Config{Transient: transient})

	if err := s.LoginWithPhone(ctx, "+911234567890"); err != nil {
		t.Fatalf("LoginWithPhone failed: %v", err)
	}
	s.CancelPhoneVerification(ctx)

	if s.State().Phase != PhaseUnauthenticated {
		t.Errorf("expected unauthenticated after cancel, got %q", s.State().Phase)
	}
	if _, err := transient.Get(ctx, "pendingPhoneAuth"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected transient pending state cleared, got %v", err)
	}

	// Cancel with nothing pending is a no-op.
	s.CancelPhoneVerification(ctx)
}

func TestLogoutClearsSessionAndPersistence(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()
	s := NewStore(Config{Storage: kv})

	if err := s.LoginWithEmail(ctx, "a@b.c", "pw"); err != nil {
		t.Fatalf("LoginWithEmail failed: %v", err)
	}
	if err := s.Logout(ctx); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if s.State().Phase != PhaseUnauthenticated {
		t.Errorf("expected unauthenticated after logout, got %q", s.State().Phase)
	}

	// A persisted-state reload starts Unauthenticated.
	reloaded := NewStore(Config{Storage: kv})
	if reloaded.State().Phase != PhaseUnauthenticated {
		t.Errorf("expected unauthenticated reload after logout, got %q", reloaded.State().Phase)
	}
}

func TestResetPasswordDoesNotTouchState(t *testing.T) {
	ctx := context.Background()
	s := NewStore(Config{})

	if err := s.LoginWithEmail(ctx, "a@b.c", "pw"); err != nil {
		t.Fatalf("LoginWithEmail failed: %v", err)
	}
	before := s.State()

	if err := s.ResetPassword(ctx, "a@b.c"); err != nil {
		t.Fatalf("ResetPassword failed: %v", err)
	}
	after := s.State()
	if before.Phase != after.Phase || *before.Session != *after.Session {
		t.Error("ResetPassword must not mutate session state")
	}
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()
	s := NewStore(Config{Storage: kv})

	if err := s.UpdateProfile(ctx, ProfileUpdate{DisplayName: String("Ravi")}); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}

	if err := s.LoginWithEmail(ctx, "ravi@example.com", "pw"); err != nil {
		t.Fatalf("LoginWithEmail failed: %v", err)
	}

	err := s.UpdateProfile(ctx, ProfileUpdate{
		DisplayName: String("Ravi Kumar"),
		AvatarURL:   String("https://cdn.example.com/avatars/ravi.jpg"),
	})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}

	session, _ := s.CurrentUser()
	if session.DisplayName != "Ravi Kumar" {
		t.Errorf("expected merged display name, got %q", session.DisplayName)
	}
	if session.AvatarURL != "https://cdn.example.com/avatars/ravi.jpg" {
		t.Errorf("expected merged avatar URL, got %q", session.AvatarURL)
	}
	if session.Email != "ravi@example.com" {
		t.Errorf("untouched field changed: %q", session.Email)
	}

	// Profile edits may leave both identity channels set.
	if err := s.UpdateProfile(ctx, ProfileUpdate{PhoneNumber: String("+911234567890")}); err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	session, _ = s.CurrentUser()
	if session.Email == "" || session.PhoneNumber == "" {
		t.Errorf("expected both email and phone after edits, got %+v", session)
	}

	// The merged session is persisted.
	restored := NewStore(Config{Storage: kv})
	got, _ := restored.CurrentUser()
	if got != session {
		t.Errorf("restored session differs: %+v vs %+v", got, session)
	}
}

func TestSubscribeSeesTransitions(t *testing.T) {
	ctx := context.Background()
	s := NewStore(Config{})

	var phases []Phase
	cancel := s.Subscribe(func(st State) { phases = append(phases, st.Phase) })
	defer cancel()

	if err := s.LoginWithEmail(ctx, "a@b.c", "pw"); err != nil {
		t.Fatalf("LoginWithEmail failed: %v", err)
	}

	if len(phases) != 2 || phases[0] != PhaseAuthenticating || phases[1] != PhaseAuthenticated {
		t.Errorf("expected [authenticating authenticated], got %v", phases)
	}
}

func TestOperationsQueueBehindInFlight(t *testing.T) {
	ctx := context.Background()
	backend := NewMockBackend(WithLatency(20 * time.Millisecond))
	s := NewStore(Config{Backend: backend})

	done := make(chan error, 2)
	go func() { done <- s.LoginWithEmail(ctx, "first@example.com", "pw") }()
	go func() { done <- s.LoginWithEmail(ctx, "second@example.com", "pw") }()

	for i := 0; i < 2; i++ {
		if err := <-done; err != nil {
			t.Fatalf("concurrent login %d failed: %v", i, err)
		}
	}

	// Both ran to completion without corrupting state; the later one wins.
	st := s.State()
	if st.Phase != PhaseAuthenticated || st.Session == nil {
		t.Fatalf("expected authenticated end state, got %+v", st)
	}
	if st.Session.Email != "first@example.com" && st.Session.Email != "second@example.com" {
		t.Errorf("unexpected winning session %+v", st.Session)
	}
}

func TestToastsEmitted(t *testing.T) {
	ctx := context.Background()
	hub := toast.NewHub()

	var got []toast.Toast
	cancel := hub.Subscribe(func(tt toast.Toast) { got = append(got, tt) })
	defer cancel()

	s := NewStore(Config{Toasts: hub})
	if err := s.LoginWithPhone(ctx, "+911234567890"); err != nil {
		t.Fatalf("LoginWithPhone failed: %v", err)
	}

	if len(got) != 1 || got[0].Level != toast.TypeInfo {
		t.Fatalf("expected one info toast, got %v", got)
	}
	if got[0].Message != "Verification code sent to your phone!" {
		t.Errorf("unexpected toast message %q", got[0].Message)
	}
}

func TestMockBackendHonorsCancellation(t *testing.T) {
	backend := NewMockBackend(WithLatency(time.Minute))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := backend.LoginWithEmail(ctx, "a@b.c", "pw"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
