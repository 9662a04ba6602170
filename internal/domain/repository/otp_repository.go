package repository

import (
	"context"

	"votegate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrOTPAlreadyUsed is returned when the used=false guard matched no row.
var ErrOTPAlreadyUsed = errors.New("one-time code already used")

// OTPRepository persists one-time code digests.
type OTPRepository interface {
	CreateCode(ctx context.Context, code *entity.OneTimeCode) error

	// FindUnusedCodes returns up to limit unused codes for phone, newest first.
	// purpose filters when non-empty. Expired codes are included so callers can report expiry.
	FindUnusedCodes(ctx context.Context, phone string, purpose entity.OTPPurpose, limit int) ([]*entity.OneTimeCode, error)

	// MarkCodeUsed consumes a code. Exactly one caller succeeds; the rest get ErrOTPAlreadyUsed.
	MarkCodeUsed(ctx context.Context, id uuid.UUID) error
}
