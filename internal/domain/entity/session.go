package entity

import (
	"time"

	"github.com/google/uuid"
)

// SessionState is derived from the step flags, expiry and closure.
type SessionState string

const (
	SessionStateCreated      SessionState = "created"
	SessionStateOTPVerified  SessionState = "otp_verified"
	SessionStateFaceVerified SessionState = "face_verified"
	SessionStateExpired      SessionState = "expired"
	SessionStateClosed       SessionState = "closed"
)

func (s SessionState) String() string {
	return string(s)
}

// AuthSession tracks one voter's progress through the three factors.
// Sessions are never deleted; they become inert once expired or closed.
type AuthSession struct {
	ID             uuid.UUID
	VoterID        uuid.UUID
	Step1Completed bool // knowledge: voter id + national id
	Step2Completed bool // possession: login code
	Step3Completed bool // biometric: face match
	TokenHash      string
	ExpiresAt      time.Time
	ClosedAt       *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// State evaluates the session at now. Closure wins over expiry.
func (s *AuthSession) State(now time.Time) SessionState {
	switch {
	case s.ClosedAt != nil:
		return SessionStateClosed
	case !now.Before(s.ExpiresAt):
		return SessionStateExpired
	case s.Step1Completed && s.Step2Completed && s.Step3Completed:
		return SessionStateFaceVerified
	case s.Step1Completed && s.Step2Completed:
		return SessionStateOTPVerified
	default:
		return SessionStateCreated
	}
}

// IsFullyAuthenticated reports whether all three factors passed and the session is live.
func (s *AuthSession) IsFullyAuthenticated(now time.Time) bool {
	return s.State(now) == SessionStateFaceVerified
}

// SessionSteps is the JSON view of the step flags.
type SessionSteps struct {
	Credentials bool `json:"credentials"`
	OTP         bool `json:"otp"`
	Face        bool `json:"face"`
}

// Steps returns the step flags.
func (s *AuthSession) Steps() SessionSteps {
	return SessionSteps{
		Credentials: s.Step1Completed,
		OTP:         s.Step2Completed,
		Face:        s.Step3Completed,
	}
}

// OpenedSession is returned by login: the raw token is only ever seen here.
type OpenedSession struct {
	Session *AuthSession
	Token   string
	// CodeExpiresAt is when the login code dispatched alongside the session expires.
	CodeExpiresAt time.Time
}

// SessionStatus is the authenticated view of a session.
type SessionStatus struct {
	State     SessionState
	Steps     SessionSteps
	Voter     *Voter
	ExpiresAt time.Time
}
