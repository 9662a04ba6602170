package impl

import (
	"context"
	"image"
	"testing"
	"time"

	"votegate/config"
	"votegate/internal/domain/entity"
	domainerrors "votegate/internal/domain/errors"
	"votegate/internal/domain/repository"
	"votegate/internal/domain/service"
	"votegate/internal/infra/face"
	"votegate/internal/infra/face/facetest"
	"votegate/internal/infra/lock"
	"votegate/internal/infra/storage"
	"votegate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

// widthDetector finds faces by image width: 300 has one, 400 has two, anything else none.
type widthDetector struct {
	unavailable bool
}

func (d widthDetector) Detect(img image.Image) ([]entity.FaceBox, error) {
	if d.unavailable {
		return nil, service.ErrDetectorUnavailable
	}

	switch img.Bounds().Dx() {
	case 300:
		return []entity.FaceBox{{X: 50, Y: 50, Width: 200, Height: 200, Quality: 9}}, nil
	case 400:
		return []entity.FaceBox{{X: 0, Y: 0, Width: 150, Height: 150}, {X: 200, Y: 200, Width: 150, Height: 150}}, nil
	default:
		return nil, nil
	}
}

func (d widthDetector) Available() bool {
	return !d.unavailable
}

var (
	horizontalFace = facetest.EncodeBase64PNG(facetest.Gradient(300, 300, image.Rect(50, 50, 250, 250), facetest.Horizontal))
	verticalFace   = facetest.EncodeBase64PNG(facetest.Gradient(300, 300, image.Rect(50, 50, 250, 250), facetest.Vertical))
	noFace         = facetest.EncodeBase64PNG(facetest.Gradient(100, 100, image.Rect(0, 0, 100, 100), facetest.Horizontal))
	twoFaces       = facetest.EncodeBase64PNG(facetest.Gradient(400, 400, image.Rect(0, 0, 400, 400), facetest.Horizontal))
)

type faceServiceFixtures struct {
	db    *memoryDB
	store repository.FaceStore
}

func createTestFaceService(t *testing.T, detector service.FaceDetector) (*faceService, *faceServiceFixtures) {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	fx := &faceServiceFixtures{
		db:    newMemoryDB(),
		store: storage.NewFaceStore(bucket),
	}
	cfg := &config.Config{Face: &config.FaceConfig{MinTrainingImages: 5, ImageSize: 200, ConfidenceThreshold: 100}}

	srv := NewFaceService(FaceServiceParams{
		TxManager:  fx.db,
		Store:      fx.store,
		Detector:   detector,
		Processor:  face.NewProcessor(cfg),
		Recognizer: face.NewLBPH(),
		Lock:       lock.NewLocal(),
		Config:     cfg,
		Logger:     discardLogger(),
	}).(*faceService)
	srv.now = fixedClock(testNow)

	return srv, fx
}

func (fx *faceServiceFixtures) addVoter(verified bool) uuid.UUID {
	id := uuid.New()
	fx.db.state.voters[id] = entity.Voter{ID: id, VoterExternalID: id.String(), NationalID: id.String(), PhoneVerified: verified}

	return id
}

func repeat(encoded string, n int) []string {
	images := make([]string, n)
	for i := range images {
		images[i] = encoded
	}

	return images
}

func TestFaceService_Detect(t *testing.T) {
	srv, _ := createTestFaceService(t, widthDetector{})
	ctx := context.Background()

	tests := []struct {
		image    string
		detected bool
		faces    int
		reason   string
	}{
		{horizontalFace, true, 1, entity.FaceReasonDetectedOneFace},
		{noFace, false, 0, entity.FaceReasonNoFace},
		{twoFaces, false, 2, entity.FaceReasonMultipleFaces},
		{"not-base64!", false, 0, entity.FaceReasonInvalidImage},
	}

	for _, tt := range tests {
		t.Run(tt.reason, func(t *testing.T) {
			report, err := srv.Detect(ctx, tt.image)
			require.NoError(t, err)
			assert.Equal(t, tt.detected, report.Detected)
			assert.Len(t, report.Faces, tt.faces)
			assert.Equal(t, tt.reason, report.Reason)
		})
	}
}

func TestFaceService_Detect_DetectorUnavailable(t *testing.T) {
	srv, _ := createTestFaceService(t, widthDetector{unavailable: true})

	_, err := srv.Detect(context.Background(), horizontalFace)

	assert.True(t, errors.Is(err, domainerrors.ErrInternalError))
}

func TestFaceService_Enroll_TrainsAtMinimum(t *testing.T) {
	srv, fx := createTestFaceService(t, widthDetector{})
	ctx := context.Background()
	voterID := fx.addVoter(true)

	result, err := srv.Enroll(ctx, usecase.EnrollInput{VoterID: voterID, Images: repeat(horizontalFace, 5)})

	require.NoError(t, err)
	assert.Equal(t, 5, result.ImagesSaved)
	assert.Equal(t, 5, result.TotalImages)
	assert.True(t, result.ModelTrained)
	assert.Empty(t, result.Rejected)
	assert.True(t, fx.db.voter(voterID).FaceModelTrained)

	_, err = fx.store.LoadModel(ctx, voterID)
	require.NoError(t, err)

	// The model is immutable once trained.
	_, err = srv.Enroll(ctx, usecase.EnrollInput{VoterID: voterID, Images: repeat(horizontalFace, 1)})
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyEnrolled))

	count, err := srv.Train(ctx, voterID)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestFaceService_Enroll_InsufficientKeepsAcceptedImages(t *testing.T) {
	srv, fx := createTestFaceService(t, widthDetector{})
	ctx := context.Background()
	voterID := fx.addVoter(true)

	images := append(repeat(horizontalFace, 4), noFace, twoFaces, "garbage")
	_, err := srv.Enroll(ctx, usecase.EnrollInput{VoterID: voterID, Images: images})

	require.True(t, errors.Is(err, domainerrors.ErrInsufficientImages), "got %v", err)
	var appErr *domainerrors.BaseError
	require.True(t, errors.As(err, &appErr))
	details, ok := appErr.Details().(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 4, details["images_saved"])
	assert.Equal(t, 4, details["total_images"])
	assert.Equal(t, []entity.ImageRejection{
		{Index: 4, Reason: entity.FaceReasonNoFace},
		{Index: 5, Reason: entity.FaceReasonMultipleFaces},
		{Index: 6, Reason: entity.FaceReasonInvalidImage},
	}, details["rejected"])

	count, err := fx.store.CountTrainingImages(ctx, voterID)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
	assert.False(t, fx.db.voter(voterID).FaceModelTrained)

	// A later batch tops the set up and triggers training.
	result, err := srv.Enroll(ctx, usecase.EnrollInput{VoterID: voterID, Images: []string{horizontalFace}})
	require.NoError(t, err)
	assert.Equal(t, 5, result.TotalImages)
	assert.True(t, result.ModelTrained)
}

func TestFaceService_Enroll_Preconditions(t *testing.T) {
	srv, fx := createTestFaceService(t, widthDetector{})
	ctx := context.Background()

	_, err := srv.Enroll(ctx, usecase.EnrollInput{VoterID: fx.addVoter(false), Images: []string{horizontalFace}})
	assert.True(t, errors.Is(err, domainerrors.ErrSessionStepOutOfOrder))

	_, err = srv.Enroll(ctx, usecase.EnrollInput{VoterID: uuid.New(), Images: []string{horizontalFace}})
	assert.True(t, errors.Is(err, domainerrors.ErrVoterNotFound))

	_, err = srv.Enroll(ctx, usecase.EnrollInput{VoterID: fx.addVoter(true)})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestFaceService_Train_Errors(t *testing.T) {
	srv, fx := createTestFaceService(t, widthDetector{})
	ctx := context.Background()
	voterID := fx.addVoter(true)

	_, err := srv.Train(ctx, voterID)
	assert.True(t, errors.Is(err, domainerrors.ErrNoTrainingData))

	_, err = srv.Enroll(ctx, usecase.EnrollInput{VoterID: voterID, Images: repeat(horizontalFace, 2)})
	require.True(t, errors.Is(err, domainerrors.ErrInsufficientImages))

	_, err = srv.Train(ctx, voterID)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientImages))
}

func TestFaceService_Match(t *testing.T) {
	srv, fx := createTestFaceService(t, widthDetector{})
	ctx := context.Background()
	alice := fx.addVoter(true)
	bob := fx.addVoter(true)

	_, err := srv.Enroll(ctx, usecase.EnrollInput{VoterID: alice, Images: repeat(horizontalFace, 5)})
	require.NoError(t, err)
	_, err = srv.Enroll(ctx, usecase.EnrollInput{VoterID: bob, Images: repeat(verticalFace, 5)})
	require.NoError(t, err)

	outcome, err := srv.Match(ctx, alice, horizontalFace)
	require.NoError(t, err)
	assert.True(t, outcome.Matched)
	assert.Equal(t, alice, outcome.PredictedLabel)
	assert.InDelta(t, 0.0, outcome.Confidence, 1e-9)

	// Bob's face against Alice's model.
	outcome, err = srv.Match(ctx, alice, verticalFace)
	require.NoError(t, err)
	assert.False(t, outcome.Matched)
	assert.Equal(t, entity.FaceReasonLowConfidence, outcome.Reason)
	assert.Greater(t, outcome.Confidence, outcome.Threshold)

	_, err = srv.Match(ctx, fx.addVoter(true), horizontalFace)
	assert.True(t, errors.Is(err, domainerrors.ErrFaceModelNotFound))

	_, err = srv.Match(ctx, alice, noFace)
	assert.True(t, errors.Is(err, domainerrors.ErrNoFaceDetected))

	_, err = srv.Match(ctx, alice, twoFaces)
	assert.True(t, errors.Is(err, domainerrors.ErrMultipleFacesDetected))

	_, err = srv.Match(ctx, alice, "garbage")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidImage))
}

func TestFaceService_Recognize(t *testing.T) {
	srv, fx := createTestFaceService(t, widthDetector{})
	ctx := context.Background()
	voterID := fx.addVoter(true)

	_, err := srv.Enroll(ctx, usecase.EnrollInput{VoterID: voterID, Images: repeat(horizontalFace, 5)})
	require.NoError(t, err)

	newSession := func(otpDone bool) *entity.AuthSession {
		s := entity.AuthSession{
			ID:             uuid.New(),
			VoterID:        voterID,
			Step1Completed: true,
			Step2Completed: otpDone,
			ExpiresAt:      testNow.Add(10 * time.Minute),
		}
		fx.db.state.sessions[s.ID] = s

		return &s
	}

	t.Run("before the otp step", func(t *testing.T) {
		_, err := srv.Recognize(ctx, newSession(false), horizontalFace)
		assert.True(t, errors.Is(err, domainerrors.ErrSessionStepOutOfOrder))
	})

	t.Run("wrong face leaves the session unchanged", func(t *testing.T) {
		session := newSession(true)

		result, err := srv.Recognize(ctx, session, verticalFace)

		require.NoError(t, err)
		assert.False(t, result.Outcome.Matched)
		assert.Equal(t, entity.SessionStateOTPVerified, result.Session.State(testNow))
		assert.False(t, fx.db.state.sessions[session.ID].Step3Completed)
	})

	t.Run("match completes the face step", func(t *testing.T) {
		session := newSession(true)

		result, err := srv.Recognize(ctx, session, horizontalFace)

		require.NoError(t, err)
		assert.True(t, result.Outcome.Matched)
		assert.Equal(t, entity.SessionStateFaceVerified, result.Session.State(testNow))

		_, err = srv.Recognize(ctx, result.Session, horizontalFace)
		assert.True(t, errors.Is(err, domainerrors.ErrSessionStepOutOfOrder))
	})

	t.Run("expired session", func(t *testing.T) {
		session := newSession(true)
		session.ExpiresAt = testNow

		_, err := srv.Recognize(ctx, session, horizontalFace)
		assert.True(t, errors.Is(err, domainerrors.ErrSessionExpired))
	})
}

func TestFaceService_Status(t *testing.T) {
	srv, fx := createTestFaceService(t, widthDetector{})
	ctx := context.Background()
	voterID := fx.addVoter(true)

	_, err := srv.Enroll(ctx, usecase.EnrollInput{VoterID: voterID, Images: repeat(horizontalFace, 3)})
	require.True(t, errors.Is(err, domainerrors.ErrInsufficientImages))

	status, err := srv.Status(ctx, voterID)

	require.NoError(t, err)
	assert.True(t, status.DetectorAvailable)
	assert.Equal(t, 3, status.TrainingImages)
	assert.False(t, status.ModelTrained)
}
