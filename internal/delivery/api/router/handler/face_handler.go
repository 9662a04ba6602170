package handler

import (
	"log/slog"
	"net/http"
	"time"

	"votegate/internal/delivery/api/middleware"
	"votegate/internal/delivery/api/response"
	"votegate/internal/domain/entity"
	domainerrors "votegate/internal/domain/errors"
	"votegate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FaceHandler serves enrollment, training and recognition.
type FaceHandler struct {
	uc     usecase.FaceUsecase
	logger *slog.Logger
}

// NewFaceHandler is the constructor for FaceHandler, injected by Fx.
func NewFaceHandler(uc usecase.FaceUsecase, logger *slog.Logger) *FaceHandler {
	return &FaceHandler{uc: uc, logger: logger}
}

type imageRequest struct {
	Image string `json:"image" validate:"required"`
}

type captureRequest struct {
	VoterID uuid.UUID `json:"voter_id" validate:"required"`
	Images  []string  `json:"images" validate:"required,min=1,max=20,dive,required"`
}

type trainRequest struct {
	VoterID uuid.UUID `json:"voter_id" validate:"required"`
}

type detectResponse struct {
	Detected bool             `json:"detected"`
	Faces    []entity.FaceBox `json:"faces"`
	Reason   string           `json:"reason"`
}

type captureResponse struct {
	ImagesSaved  int                     `json:"images_saved"`
	TotalImages  int                     `json:"total_images"`
	Required     int                     `json:"required"`
	Rejected     []entity.ImageRejection `json:"rejected"`
	ModelTrained bool                    `json:"model_trained"`
}

type recognizeResponse struct {
	Matched      bool                `json:"matched"`
	Confidence   float64             `json:"confidence"`
	Threshold    float64             `json:"threshold"`
	Reason       string              `json:"reason,omitempty"`
	SessionState entity.SessionState `json:"session_state"`
	NextStep     string              `json:"next_step,omitempty"`
}

type faceStatusResponse struct {
	DetectorAvailable bool `json:"detector_available"`
	TrainingImages    int  `json:"training_images"`
	ModelTrained      bool `json:"model_trained"`
}

// Detect handles POST /face/detect, capture feedback only.
func (h *FaceHandler) Detect(c echo.Context) error {
	var req imageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	report, err := h.uc.Detect(c.Request().Context(), req.Image)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, detectResponse{
		Detected: report.Detected,
		Faces:    report.Faces,
		Reason:   report.Reason,
	})
}

// Capture handles POST /face/capture.
func (h *FaceHandler) Capture(c echo.Context) error {
	var req captureRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.uc.Enroll(c.Request().Context(), usecase.EnrollInput{VoterID: req.VoterID, Images: req.Images})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, captureResponse{
		ImagesSaved:  result.ImagesSaved,
		TotalImages:  result.TotalImages,
		Required:     result.Required,
		Rejected:     result.Rejected,
		ModelTrained: result.ModelTrained,
	})
}

// Train handles POST /face/train.
func (h *FaceHandler) Train(c echo.Context) error {
	var req trainRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	used, err := h.uc.Train(c.Request().Context(), req.VoterID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"images_used": used})
}

// Recognize handles POST /face/recognize, the biometric step.
// A rejected face is a 200 with matched=false.
func (h *FaceHandler) Recognize(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return errors.Wrap(domainerrors.ErrUnauthorized, "no session in context")
	}

	var req imageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.uc.Recognize(c.Request().Context(), session, req.Image)
	if err != nil {
		return errors.WithStack(err)
	}

	state := result.Session.State(time.Now())

	return response.Success(c, http.StatusOK, recognizeResponse{
		Matched:      result.Outcome.Matched,
		Confidence:   result.Outcome.Confidence,
		Threshold:    result.Outcome.Threshold,
		Reason:       result.Outcome.Reason,
		SessionState: state,
		NextStep:     nextStep(state),
	})
}

// Status handles GET /face/status?voter_id=.
func (h *FaceHandler) Status(c echo.Context) error {
	voterID, err := uuid.Parse(c.QueryParam("voter_id"))
	if err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(map[string]string{"field": "voter_id"}), "voter_id must be a uuid")
	}

	status, err := h.uc.Status(c.Request().Context(), voterID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, faceStatusResponse{
		DetectorAvailable: status.DetectorAvailable,
		TrainingImages:    status.TrainingImages,
		ModelTrained:      status.ModelTrained,
	})
}
