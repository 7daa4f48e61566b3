package auth

// Session is the current authenticated identity.
type Session struct {
	// UserID is an opaque stable identifier, assigned at creation.
	UserID string `json:"userId"`

	// Email is set for email-based logins and after profile edits.
	Email string `json:"email,omitempty"`

	// PhoneNumber is set for phone-based logins and after profile edits.
	PhoneNumber string `json:"phoneNumber,omitempty"`

	// DisplayName is the user-visible name.
	DisplayName string `json:"displayName,omitempty"`

	// AvatarURL points at the user's profile photo.
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// ProfileUpdate carries a partial set of profile fields.
// Nil fields are left untouched; later writes win per field.
type ProfileUpdate struct {
	Email       *string
	PhoneNumber *string
	DisplayName *string
	AvatarURL   *string
}

// Apply merges the update into s and returns the result.
func (u ProfileUpdate) Apply(s Session) Session {
	if u.Email != nil {
		s.Email = *u.Email
	}
	if u.PhoneNumber != nil {
		s.PhoneNumber = *u.PhoneNumber
	}
	if u.DisplayName != nil {
		s.DisplayName = *u.DisplayName
	}
	if u.AvatarURL != nil {
		s.AvatarURL = *u.AvatarURL
	}
	return s
}

// String is a convenience for building ProfileUpdate literals.
//
//	store.UpdateProfile(ctx, auth.ProfileUpdate{DisplayName: auth.String("Ravi")})
func String(s string) *string {
	return &s
}

// Phase names a position in the authentication state machine.
type Phase string

const (
	PhaseUnauthenticated          Phase = "unauthenticated"
	PhaseAuthenticating           Phase = "authenticating"
	PhasePhoneVerificationPending Phase = "phone_verification_pending"
	PhaseAuthenticated            Phase = "authenticated"
)

// State is the tagged authentication state.
// Session is non-nil only in PhaseAuthenticated; PendingPhone is non-empty
// only in PhasePhoneVerificationPending.
type State struct {
	Phase Phase

	// Session is the current identity while authenticated.
	Session *Session

	// PendingPhone is the number awaiting code verification.
	PendingPhone string
}

// Authenticated reports whether a session exists.
func (s State) Authenticated() bool {
	return s.Phase == PhaseAuthenticated && s.Session != nil
}
