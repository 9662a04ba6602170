package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrFaceModelNotFound is returned when no model blob exists for a voter.
var ErrFaceModelNotFound = errors.New("face model not found")

// FaceStore keeps per-voter training crops and models, keyed by voter id only.
// Writers are expected to hold the voter lock.
type FaceStore interface {
	// AppendTrainingImage stores one normalized PNG crop and returns the new total for the voter.
	AppendTrainingImage(ctx context.Context, voterID uuid.UUID, png []byte) (int, error)

	// ListTrainingImages returns the voter's crops in insertion order.
	ListTrainingImages(ctx context.Context, voterID uuid.UUID) ([][]byte, error)

	CountTrainingImages(ctx context.Context, voterID uuid.UUID) (int, error)

	SaveModel(ctx context.Context, voterID uuid.UUID, model []byte) error

	LoadModel(ctx context.Context, voterID uuid.UUID) ([]byte, error)
}
