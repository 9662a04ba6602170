package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"votegate/config"
	"votegate/internal/domain/service"
	"votegate/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const sessionIssuer = "votegate"

// jwtService signs HS256 session tokens.
type jwtService struct {
	secret []byte
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.SessionTokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &jwtService{secret: []byte(cfg.SecretKey.Session)}, nil
}

func (s *jwtService) Issue(voterID, sessionID uuid.UUID, expiresAt time.Time) (string, error) {
	now := time.Now()
	claims := service.SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionIssuer,
			Subject:   voterID.String(),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign session token")
	}

	return signed, nil
}

func (s *jwtService) Parse(token string) (*service.SessionClaims, error) {
	claims := &service.SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(sessionIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "parse session token")
	}
	if !parsed.Valid || claims.SessionID == uuid.Nil {
		return nil, errors.New("session token is invalid")
	}

	return claims, nil
}

func (s *jwtService) Hash(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}
