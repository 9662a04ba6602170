package usecase

import (
	"context"

	"votegate/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterVoterInput defines the data required to register a voter.
type RegisterVoterInput struct {
	VoterExternalID string
	NationalID      string
	Phone           string
}

// LoginInput is the knowledge factor.
type LoginInput struct {
	VoterExternalID string
	NationalID      string
}

// ResendOTPInput asks for a fresh code superseding earlier ones.
type ResendOTPInput struct {
	Phone   string
	Purpose entity.OTPPurpose
}

// --- Output DTOs ---

// RegisterOutput returns the new voter and the registration code metadata.
type RegisterOutput struct {
	Voter *entity.Voter
	Code  *entity.IssuedCode
}

// AuthUsecase drives registration and the three-step login.
type AuthUsecase interface {
	Register(ctx context.Context, input RegisterVoterInput) (*RegisterOutput, error)
	VerifyOTP(ctx context.Context, input ValidateOTPInput) (*entity.OTPValidation, error)
	ResendOTP(ctx context.Context, input ResendOTPInput) (*entity.IssuedCode, error)

	// Login checks the ID pair, opens a session at step 1 and sends the login code.
	Login(ctx context.Context, input LoginInput) (*entity.OpenedSession, error)

	// Authenticate resolves a bearer token to its live session.
	Authenticate(ctx context.Context, token string) (*entity.AuthSession, error)

	Status(ctx context.Context, session *entity.AuthSession) (*entity.SessionStatus, error)
	Logout(ctx context.Context, session *entity.AuthSession) error
}
