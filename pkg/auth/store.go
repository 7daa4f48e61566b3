package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/skilllink-dev/skilllink/pkg/reactive"
	"github.com/skilllink-dev/skilllink/pkg/storage"
	"github.com/skilllink-dev/skilllink/pkg/telemetry"
	"github.com/skilllink-dev/skilllink/pkg/toast"
)

const (
	// sessionKey is the durable-storage key for the serialized session.
	sessionKey = "currentUser"

	// pendingKey is the transient-storage key for the phone number
	// awaiting verification. Transient storage is session-scoped and
	// cleared more aggressively than durable storage.
	pendingKey = "pendingPhoneAuth"
)

// Config configures the session store.
type Config struct {
	// Backend performs the authentication work. Defaults to a mock
	// backend with no simulated latency.
	Backend Backend

	// Storage is the durable backend holding the serialized session.
	// Defaults to an in-memory store.
	Storage storage.Store

	// Transient is the session-scoped backend for the pending phone
	// verification. Defaults to an in-memory store.
	Transient storage.Store

	// Toasts receives operation feedback for the rendering layer. Optional.
	Toasts *toast.Hub

	// Logger receives persistence warnings. Defaults to slog.Default.
	Logger *slog.Logger

	// Tracer wraps backend calls in spans. Optional.
	Tracer *telemetry.Tracer
}

// Store owns "who is logged in" and the authentication lifecycle.
type Store struct {
	backend   Backend
	kv        storage.Store
	transient storage.Store
	toasts    *toast.Hub
	logger    *slog.Logger
	tracer    *telemetry.Tracer

	state *reactive.Signal[State]

	// opMu serializes authentication operations: a second operation
	// arriving while one is in flight queues behind it rather than
	// interleaving with its state transitions.
	opMu sync.Mutex
}

// NewStore creates the session store and restores persisted state: a stored
// session starts the store in Authenticated, an unconsumed pending phone
// verification resumes PhoneVerificationPending, otherwise Unauthenticated.
func NewStore(cfg Config) *Store {
	if cfg.Backend == nil {
		cfg.Backend = NewMockBackend()
	}
	if cfg.Storage == nil {
		cfg.Storage = storage.NewMemoryStore()
	}
	if cfg.Transient == nil {
		cfg.Transient = storage.NewMemoryStore()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	s := &Store{
		backend:   cfg.Backend,
		kv:        cfg.Storage,
		transient: cfg.Transient,
		toasts:    cfg.Toasts,
		logger:    cfg.Logger,
		tracer:    cfg.Tracer,
	}
	s.state = reactive.NewSignal(s.restore())
	return s
}

// restore rebuilds the startup state from storage.
func (s *Store) restore() State {
	ctx := context.Background()

	if raw, err := s.kv.Get(ctx, sessionKey); err == nil {
		var session Session
		if err := json.Unmarshal(raw, &session); err != nil {
			s.logger.Warn("auth: discarding corrupt session snapshot", "error", err)
		} else if session.UserID != "" {
			return State{Phase: PhaseAuthenticated, Session: &session}
		}
	} else if !errors.Is(err, storage.ErrNotFound) {
		perr := &storage.PersistenceError{Op: "get", Key: sessionKey, Err: err}
		s.logger.Warn("auth: failed to load session", "error", perr)
	}

	if raw, err := s.transient.Get(ctx, pendingKey); err == nil && len(raw) > 0 {
		return State{Phase: PhasePhoneVerificationPending, PendingPhone: string(raw)}
	}

	return State{Phase: PhaseUnauthenticated}
}

// State returns the current authentication state.
func (s *Store) State() State {
	return s.state.Get()
}

// CurrentUser returns the session, if authenticated.
func (s *Store) CurrentUser() (Session, bool) {
	st := s.state.Get()
	if !st.Authenticated() {
		return Session{}, false
	}
	return *st.Session, true
}

// IsAuthenticated reports whether a session exists.
func (s *Store) IsAuthenticated() bool {
	return s.state.Get().Authenticated()
}

// Subscribe registers fn to run on every state transition.
func (s *Store) Subscribe(fn func(State)) (cancel func()) {
	return s.state.Subscribe(fn)
}

// RegisterWithEmail creates an account and signs in.
// On success the session's display name is derived from the email's local
// part and the store transitions to Authenticated.
func (s *Store) RegisterWithEmail(ctx context.Context, email, password string) error {
	if err := requireNonEmpty("email", email); err != nil {
		return err
	}
	if err := requireNonEmpty("password", password); err != nil {
		return err
	}

	s.opMu.Lock()
	defer s.opMu.Unlock()

	prev := s.state.Get()
	s.state.Set(State{Phase: PhaseAuthenticating})

	var session Session
	err := s.traced(ctx, "auth.register_with_email", func(ctx context.Context) error {
		var err error
		session, err = s.backend.RegisterWithEmail(ctx, email, password)
		return err
	})
	if err != nil {
		s.state.Set(prev)
		s.toastError("Failed to create an account.")
		return err
	}

	s.completeLogin(ctx, session)
	s.toastSuccess("Account created successfully!")
	return nil
}

// LoginWithEmail signs in with email credentials.
// The mock backend accepts any non-empty credentials; it does not
// distinguish "account does not exist".
func (s *Store) LoginWithEmail(ctx context.Context, email, password string) error {
	if err := requireNonEmpty("email", email); err != nil {
		return err
	}
	if err := requireNonEmpty("password", password); err != nil {
		return err
	}

	s.opMu.Lock()
	defer s.opMu.Unlock()

	prev := s.state.Get()
	s.state.Set(State{Phase: PhaseAuthenticating})

	var session Session
	err := s.traced(ctx, "auth.login_with_email", func(ctx context.Context) error {
		var err error
		session, err = s.backend.LoginWithEmail(ctx, email, password)
		return err
	})
	if err != nil {
		s.state.Set(prev)
		s.toastError("Failed to log in.")
		return err
	}

	s.completeLogin(ctx, session)
	s.toastSuccess("Logged in successfully!")
	return nil
}

// LoginWithPhone requests a verification code for phoneNumber and
// transitions to PhoneVerificationPending. It does not create a session.
// Starting a new phone login overwrites any prior pending verification.
func (s *Store) LoginWithPhone(ctx context.Context, phoneNumber string) error {
	if err := requireNonEmpty("phoneNumber", phoneNumber); err != nil {
		return err
	}

	s.opMu.Lock()
	defer s.opMu.Unlock()

	prev := s.state.Get()
	s.state.Set(State{Phase: PhaseAuthenticating})

	err := s.traced(ctx, "auth.login_with_phone", func(ctx context.Context) error {
		return s.backend.RequestPhoneCode(ctx, phoneNumber)
	})
	if err != nil {
		s.state.Set(prev)
		s.toastError("Failed to send verification code.")
		return err
	}

	s.state.Set(State{Phase: PhasePhoneVerificationPending, PendingPhone: phoneNumber})
	if err := s.transient.Set(ctx, pendingKey, []byte(phoneNumber)); err != nil {
		perr := &storage.PersistenceError{Op: "set", Key: pendingKey, Err: err}
		s.logger.Warn("auth: failed to persist pending verification", "error", perr)
	}
	s.toastInfo("Verification code sent to your phone!")
	return nil
}

// VerifyPhoneCode completes a phone login.
// Fails with ErrNoPendingVerification when no verification is pending and
// with ErrInvalidCode on a wrong code; a wrong code leaves the pending
// verification intact so the user can retry.
func (s *Store) VerifyPhoneCode(ctx context.Context, code string) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	prev := s.state.Get()
	if prev.Phase != PhasePhoneVerificationPending || prev.PendingPhone == "" {
		return ErrNoPendingVerification
	}
	phoneNumber := prev.PendingPhone

	s.state.Set(State{Phase: PhaseAuthenticating})

	var session Session
	err := s.traced(ctx, "auth.verify_phone_code", func(ctx context.Context) error {
		var err error
		session, err = s.backend.VerifyPhoneCode(ctx, phoneNumber, code)
		return err
	})
	if err != nil {
		s.state.Set(prev)
		if errors.Is(err, ErrInvalidCode) {
			s.toastError("Invalid verification code")
		} else {
			s.toastError("Failed to verify code.")
		}
		return err
	}

	s.completeLogin(ctx, session)
	s.toastSuccess("Phone verified successfully!")
	return nil
}

// CancelPhoneVerification abandons a pending phone login, returning to
// Unauthenticated. Calling it with nothing pending is a no-op.
func (s *Store) CancelPhoneVerification(ctx context.Context) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	st := s.state.Get()
	if st.Phase != PhasePhoneVerificationPending {
		return
	}
	s.clearPending(ctx)
	s.state.Set(State{Phase: PhaseUnauthenticated})
}

// Logout clears the session unconditionally.
func (s *Store) Logout(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.state.Set(State{Phase: PhaseUnauthenticated})
	s.clearPending(ctx)
	if err := s.kv.Delete(ctx, sessionKey); err != nil {
		perr := &storage.PersistenceError{Op: "delete", Key: sessionKey, Err: err}
		s.logger.Warn("auth: failed to clear persisted session", "error", perr)
	}
	s.toastSuccess("Logged out successfully!")
	return nil
}

// ResetPassword triggers a password-reset message.
// Acknowledgement only: session state is never mutated.
func (s *Store) ResetPassword(ctx context.Context, email string) error {
	if err := requireNonEmpty("email", email); err != nil {
		return err
	}

	err := s.traced(ctx, "auth.reset_password", func(ctx context.Context) error {
		return s.backend.ResetPassword(ctx, email)
	})
	if err != nil {
		s.toastError("Failed to send password reset email.")
		return err
	}
	s.toastSuccess("Password reset email sent!")
	return nil
}

// UpdateProfile merges the non-nil fields of update into the current
// session. Fails with ErrNotAuthenticated when no session exists.
func (s *Store) UpdateProfile(ctx context.Context, update ProfileUpdate) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	st := s.state.Get()
	if !st.Authenticated() {
		return ErrNotAuthenticated
	}

	var session Session
	err := s.traced(ctx, "auth.update_profile", func(ctx context.Context) error {
		var err error
		session, err = s.backend.UpdateProfile(ctx, *st.Session, update)
		return err
	})
	if err != nil {
		s.toastError("Failed to update profile.")
		return err
	}

	s.state.Set(State{Phase: PhaseAuthenticated, Session: &session})
	s.persistSession(ctx, session)
	s.toastSuccess("Profile updated successfully!")
	return nil
}

// completeLogin installs a fresh session, persists it, and consumes any
// pending phone verification.
func (s *Store) completeLogin(ctx context.Context, session Session) {
	s.state.Set(State{Phase: PhaseAuthenticated, Session: &session})
	s.clearPending(ctx)
	s.persistSession(ctx, session)
}

// persistSession writes the session snapshot. Failures affect only
// durability across restarts and are logged, never surfaced.
func (s *Store) persistSession(ctx context.Context, session Session) {
	raw, err := json.Marshal(session)
	if err != nil {
		s.logger.Warn("auth: failed to encode session", "error", err)
		return
	}
	if err := s.kv.Set(ctx, sessionKey, raw); err != nil {
		perr := &storage.PersistenceError{Op: "set", Key: sessionKey, Err: err}
		s.logger.Warn("auth: failed to persist session", "error", perr)
	}
}

func (s *Store) clearPending(ctx context.Context) {
	if err := s.transient.Delete(ctx, pendingKey); err != nil {
		perr := &storage.PersistenceError{Op: "delete", Key: pendingKey, Err: err}
		s.logger.Warn("auth: failed to clear pending verification", "error", perr)
	}
}

// traced runs fn through the tracer when one is configured.
func (s *Store) traced(ctx context.Context, name string, fn func(context.Context) error) error {
	if s.tracer == nil {
		return fn(ctx)
	}
	return s.tracer.Operation(ctx, name, fn)
}

func (s *Store) toastSuccess(msg string) {
	if s.toasts != nil {
		s.toasts.Success(msg)
	}
}

func (s *Store) toastError(msg string) {
	if s.toasts != nil {
		s.toasts.Error(msg)
	}
}

func (s *Store) toastInfo(msg string) {
	if s.toasts != nil {
		s.toasts.Info(msg)
	}
}
