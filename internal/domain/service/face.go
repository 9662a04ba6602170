package service

import (
	"context"
	"image"

	"votegate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Sentinel errors of the face pipeline.
var (
	ErrInvalidImage        = errors.New("invalid image")
	ErrNoFaceDetected      = errors.New("no face detected")
	ErrMultipleFaces       = errors.New("multiple faces detected")
	ErrDetectorUnavailable = errors.New("face detector unavailable")
	ErrInvalidModel        = errors.New("invalid face model")
	ErrVoterLockLost       = errors.New("voter lock lost")
)

// FaceDetector locates faces in an image.
type FaceDetector interface {
	Detect(img image.Image) ([]entity.FaceBox, error)

	// Available reports whether the cascade was loaded.
	Available() bool
}

// FaceProcessor turns uploaded images into normalized grayscale crops.
type FaceProcessor interface {
	// Decode reads a base64 JPEG/PNG payload, with or without a data-URL prefix.
	Decode(encoded string) (image.Image, error)

	// Normalize crops box out of img, resizes it to the configured square and equalizes its histogram.
	Normalize(img image.Image, box entity.FaceBox) *image.Gray

	EncodePNG(face *image.Gray) ([]byte, error)
	DecodePNG(data []byte) (*image.Gray, error)
}

// FaceRecognizer builds and queries per-voter appearance models.
type FaceRecognizer interface {
	// Train builds a single-label model from normalized faces and returns it serialized.
	Train(label uuid.UUID, faces []*image.Gray) ([]byte, error)

	// Predict returns the nearest label of model and its distance to probe.
	Predict(model []byte, probe *image.Gray) (label uuid.UUID, distance float64, err error)
}

// VoterLock serializes writes to one voter's face data.
type VoterLock interface {
	// Acquire blocks until the lock is held or ctx ends. Work done under the lock
	// uses the returned context, which is cancelled with ErrVoterLockLost as its
	// cause if the lock expires before release is called.
	Acquire(ctx context.Context, voterID uuid.UUID) (held context.Context, release func(), err error)
}
