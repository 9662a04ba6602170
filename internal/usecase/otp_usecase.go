// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"votegate/internal/domain/entity"

	"github.com/google/uuid"
)

// ValidateOTPInput is a code submitted by a voter. Purpose is optional.
type ValidateOTPInput struct {
	Phone   string
	Code    string
	Purpose entity.OTPPurpose
}

// OTPUsecase issues and consumes one-time codes.
type OTPUsecase interface {
	// Issue stores a fresh code digest for the voter and dispatches the code by SMS.
	Issue(ctx context.Context, voterID uuid.UUID, phone string, purpose entity.OTPPurpose) (*entity.IssuedCode, error)

	// Validate consumes the most recently issued matching code and applies its transition.
	Validate(ctx context.Context, input ValidateOTPInput) (*entity.OTPValidation, error)
}
