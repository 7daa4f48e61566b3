// Package auth owns the current-user session and the transitions between
// unauthenticated and authenticated states.
//
// The store is a small state machine:
//
//	Unauthenticated ── LoginWithEmail/RegisterWithEmail/LoginWithPhone ──▶ Authenticating
//	Authenticating ──▶ Authenticated (email login, registration)
//	Authenticating ──▶ PhoneVerificationPending (phone code sent)
//	PhoneVerificationPending ── VerifyPhoneCode ──▶ Authenticated
//	PhoneVerificationPending ── CancelPhoneVerification ──▶ Unauthenticated
//	Authenticated ── Logout ──▶ Unauthenticated
//
// The state is a tagged variant: Session is present only while
// authenticated and the pending phone number only while a verification is
// in progress, so "authenticated but also verifying" is unrepresentable.
//
// All backend work goes through the Backend interface so a real API client
// can replace the bundled mock without changing the store's contract. Every
// state change persists the session (or its absence) to durable storage
// immediately; a process restart restores the last authenticated session
// verbatim.
package auth
