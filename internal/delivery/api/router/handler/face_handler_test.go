package handler

import (
	"net/http"
	"testing"

	"votegate/internal/domain/entity"
	domainerrors "votegate/internal/domain/errors"
	mockUsecase "votegate/internal/mocks/usecase"
	"votegate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFaceHandler_Detect(t *testing.T) {
	uc := mockUsecase.NewMockFaceUsecase(t)
	uc.EXPECT().Detect(mock.Anything, "aW1n").Return(&entity.DetectionReport{
		Detected: true,
		Faces:    []entity.FaceBox{{X: 50, Y: 50, Width: 200, Height: 200, Quality: 1}},
		Reason:   entity.FaceReasonDetectedOneFace,
	}, nil)

	e := newTestEcho(t)
	e.POST("/face/detect", NewFaceHandler(uc, discardLogger()).Detect)

	rec := serve(e, http.MethodPost, "/face/detect", `{"image":"aW1n"}`, false)

	require.Equal(t, http.StatusOK, rec.Code)
	var res detectResponse
	decodeData(t, rec, &res)
	assert.True(t, res.Detected)
	assert.Len(t, res.Faces, 1)
	assert.Equal(t, 200, res.Faces[0].Width)
}

func TestFaceHandler_Capture(t *testing.T) {
	voterID := uuid.New()

	t.Run("saved and trained", func(t *testing.T) {
		uc := mockUsecase.NewMockFaceUsecase(t)
		uc.EXPECT().Enroll(mock.Anything, usecase.EnrollInput{VoterID: voterID, Images: []string{"a", "b"}}).
			Return(&entity.EnrollmentResult{
				VoterID:      voterID,
				ImagesSaved:  2,
				TotalImages:  5,
				Required:     5,
				Rejected:     []entity.ImageRejection{},
				ModelTrained: true,
			}, nil)

		e := newTestEcho(t)
		e.POST("/face/capture", NewFaceHandler(uc, discardLogger()).Capture)

		rec := serve(e, http.MethodPost, "/face/capture", `{"voter_id":"`+voterID.String()+`","images":["a","b"]}`, false)

		require.Equal(t, http.StatusCreated, rec.Code)
		var res captureResponse
		decodeData(t, rec, &res)
		assert.Equal(t, 2, res.ImagesSaved)
		assert.True(t, res.ModelTrained)
	})

	t.Run("insufficient images carry the rejections", func(t *testing.T) {
		uc := mockUsecase.NewMockFaceUsecase(t)
		uc.EXPECT().Enroll(mock.Anything, mock.Anything).Return(nil, errors.Wrap(
			domainerrors.ErrInsufficientImages.WithDetails(map[string]any{
				"total_images": 1,
				"required":     5,
				"rejected":     []entity.ImageRejection{{Index: 1, Reason: entity.FaceReasonNoFace}},
			}), "not enough usable images"))

		e := newTestEcho(t)
		e.POST("/face/capture", NewFaceHandler(uc, discardLogger()).Capture)

		rec := serve(e, http.MethodPost, "/face/capture", `{"voter_id":"`+voterID.String()+`","images":["a","b"]}`, false)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "INSUFFICIENT_IMAGES", env.Error.Code)
		assert.Contains(t, string(env.Error.Details), entity.FaceReasonNoFace)
	})

	t.Run("empty batch", func(t *testing.T) {
		e := newTestEcho(t)
		e.POST("/face/capture", NewFaceHandler(mockUsecase.NewMockFaceUsecase(t), discardLogger()).Capture)

		rec := serve(e, http.MethodPost, "/face/capture", `{"voter_id":"`+voterID.String()+`","images":[]}`, false)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestFaceHandler_Train(t *testing.T) {
	voterID := uuid.New()

	uc := mockUsecase.NewMockFaceUsecase(t)
	uc.EXPECT().Train(mock.Anything, voterID).Return(5, nil)

	e := newTestEcho(t)
	e.POST("/face/train", NewFaceHandler(uc, discardLogger()).Train)

	rec := serve(e, http.MethodPost, "/face/train", `{"voter_id":"`+voterID.String()+`"}`, false)

	require.Equal(t, http.StatusOK, rec.Code)
	var res map[string]int
	decodeData(t, rec, &res)
	assert.Equal(t, 5, res["images_used"])
}

func TestFaceHandler_Recognize(t *testing.T) {
	session := liveSession(2)

	t.Run("match advances the session", func(t *testing.T) {
		verified := *session
		verified.Step3Completed = true

		uc := mockUsecase.NewMockFaceUsecase(t)
		uc.EXPECT().Recognize(mock.Anything, session, "probe").Return(&entity.RecognitionResult{
			Outcome: entity.MatchOutcome{Matched: true, Confidence: 12.5, Threshold: 80},
			Session: &verified,
		}, nil)

		e := newTestEcho(t)
		e.POST("/face/recognize", NewFaceHandler(uc, discardLogger()).Recognize, sessionAuth(t, session))

		rec := serve(e, http.MethodPost, "/face/recognize", `{"image":"probe"}`, true)

		require.Equal(t, http.StatusOK, rec.Code)
		var res recognizeResponse
		decodeData(t, rec, &res)
		assert.True(t, res.Matched)
		assert.Equal(t, entity.SessionStateFaceVerified, res.SessionState)
		assert.Equal(t, "vote", res.NextStep)
	})

	t.Run("rejected face is not an error", func(t *testing.T) {
		uc := mockUsecase.NewMockFaceUsecase(t)
		uc.EXPECT().Recognize(mock.Anything, session, "probe").Return(&entity.RecognitionResult{
			Outcome: entity.MatchOutcome{Matched: false, Confidence: 140, Threshold: 80, Reason: entity.FaceReasonLowConfidence},
			Session: session,
		}, nil)

		e := newTestEcho(t)
		e.POST("/face/recognize", NewFaceHandler(uc, discardLogger()).Recognize, sessionAuth(t, session))

		rec := serve(e, http.MethodPost, "/face/recognize", `{"image":"probe"}`, true)

		require.Equal(t, http.StatusOK, rec.Code)
		var res recognizeResponse
		decodeData(t, rec, &res)
		assert.False(t, res.Matched)
		assert.Equal(t, entity.FaceReasonLowConfidence, res.Reason)
		assert.Equal(t, entity.SessionStateOTPVerified, res.SessionState)
	})

	t.Run("requires a session", func(t *testing.T) {
		e := newTestEcho(t)
		e.POST("/face/recognize", NewFaceHandler(mockUsecase.NewMockFaceUsecase(t), discardLogger()).Recognize, sessionAuth(t, session))

		rec := serve(e, http.MethodPost, "/face/recognize", `{"image":"probe"}`, false)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestFaceHandler_Status(t *testing.T) {
	voterID := uuid.New()

	uc := mockUsecase.NewMockFaceUsecase(t)
	uc.EXPECT().Status(mock.Anything, voterID).Return(&entity.FaceStatus{DetectorAvailable: true, TrainingImages: 3}, nil)

	e := newTestEcho(t)
	e.GET("/face/status", NewFaceHandler(uc, discardLogger()).Status)

	rec := serve(e, http.MethodGet, "/face/status?voter_id="+voterID.String(), "", false)

	require.Equal(t, http.StatusOK, rec.Code)
	var res faceStatusResponse
	decodeData(t, rec, &res)
	assert.Equal(t, 3, res.TrainingImages)
	assert.False(t, res.ModelTrained)

	t.Run("bad voter id", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/face/status?voter_id=abc", "", false)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
