package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims are the claims carried by a session token. The subject is the voter id.
type SessionClaims struct {
	SessionID uuid.UUID `json:"sid"`
	jwt.RegisteredClaims
}

// VoterID parses the subject claim.
func (c *SessionClaims) VoterID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// SessionTokenService issues and verifies bearer tokens for authentication sessions.
type SessionTokenService interface {
	// Issue signs a token bound to the voter and session, valid until expiresAt.
	Issue(voterID, sessionID uuid.UUID, expiresAt time.Time) (string, error)

	// Parse verifies the signature and expiry of a token.
	Parse(token string) (*SessionClaims, error)

	// Hash returns the digest stored in place of the raw token.
	Hash(token string) string
}
