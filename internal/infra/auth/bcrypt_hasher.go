// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"votegate/config"
	"votegate/internal/domain/service"
	"votegate/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher digests one-time codes with bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher reads the cost from otp.bcryptCost, falling back to bcrypt.DefaultCost.
func NewBcryptHasher(cfg *config.Config) service.CodeHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.OTP != nil && cfg.OTP.BcryptCost >= bcrypt.MinCost && cfg.OTP.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.OTP.BcryptCost
	}

	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(code string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(code), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt digest")
	}

	return string(digest), nil
}

func (h *bcryptHasher) Check(code, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(code)) == nil
}
