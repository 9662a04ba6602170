package usecase

import (
	"context"

	"votegate/internal/domain/entity"

	"github.com/google/uuid"
)

// EnrollInput is one capture batch of base64 images.
type EnrollInput struct {
	VoterID uuid.UUID
	Images  []string
}

// FaceUsecase covers enrollment, training and matching.
type FaceUsecase interface {
	// Detect reports faces found in one image without storing anything.
	Detect(ctx context.Context, image string) (*entity.DetectionReport, error)

	// Enroll adds usable crops to the voter's training set and trains once enough are stored.
	Enroll(ctx context.Context, input EnrollInput) (*entity.EnrollmentResult, error)

	// Train builds the voter's model from the stored set and returns the number of images used.
	Train(ctx context.Context, voterID uuid.UUID) (int, error)

	// Match scores a probe against the claimed voter's model only.
	Match(ctx context.Context, claimedVoterID uuid.UUID, image string) (*entity.MatchOutcome, error)

	// Recognize runs the biometric step of an OTP-verified session.
	Recognize(ctx context.Context, session *entity.AuthSession, image string) (*entity.RecognitionResult, error)

	Status(ctx context.Context, voterID uuid.UUID) (*entity.FaceStatus, error)
}
