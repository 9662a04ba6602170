package entity

import (
	"time"

	"github.com/google/uuid"
)

// OTPPurpose is the closed set of reasons a one-time code is issued for.
type OTPPurpose string

const (
	// OTPPurposeRegistration confirms the phone supplied at registration.
	OTPPurposeRegistration OTPPurpose = "registration"
	// OTPPurposeLogin is the possession factor of an authentication session.
	OTPPurposeLogin OTPPurpose = "login"
)

func (p OTPPurpose) String() string {
	return string(p)
}

// IsValid checks if the purpose is one of the known values.
func (p OTPPurpose) IsValid() bool {
	switch p {
	case OTPPurposeRegistration, OTPPurposeLogin:
		return true
	default:
		return false
	}
}

// OneTimeCode is an issued code. Only its bcrypt digest is kept.
type OneTimeCode struct {
	ID         uuid.UUID
	VoterID    uuid.UUID
	Phone      string
	CodeDigest string
	Purpose    OTPPurpose
	ExpiresAt  time.Time
	Used       bool
	CreatedAt  time.Time
}

// IsExpired reports whether the code is past its expiry at now.
func (c *OneTimeCode) IsExpired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// IssuedCode is what the ledger hands back to the caller after issuance.
// The plain code never leaves the process except through the SMS sender.
type IssuedCode struct {
	ID        uuid.UUID
	Purpose   OTPPurpose
	ExpiresAt time.Time
}

// OTPValidation is the outcome of a successful code validation.
type OTPValidation struct {
	VoterID  uuid.UUID
	Purpose  OTPPurpose
	NextStep string
	// Session is set for login codes: the session advanced to step 2.
	Session *AuthSession
}
