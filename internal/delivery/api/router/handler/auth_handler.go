// Package handler contains the HTTP handlers for the voting API.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"votegate/internal/delivery/api/middleware"
	"votegate/internal/delivery/api/response"
	"votegate/internal/domain/constants"
	"votegate/internal/domain/entity"
	domainerrors "votegate/internal/domain/errors"
	"votegate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler serves registration and the three-step login flow.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, logger: logger}
}

type registerRequest struct {
	VoterExternalID string `json:"voter_external_id" validate:"required,max=64"`
	NationalID      string `json:"national_id" validate:"required,max=64"`
	Phone           string `json:"phone" validate:"required,phone"`
}

type registerResponse struct {
	VoterID      uuid.UUID `json:"voter_id"`
	NextStep     string    `json:"next_step"`
	OTPExpiresAt time.Time `json:"otp_expires_at"`
}

type verifyOTPRequest struct {
	Phone   string `json:"phone" validate:"required,phone"`
	Code    string `json:"code" validate:"required,otpcode"`
	Purpose string `json:"purpose" validate:"omitempty,otppurpose"`
}

type verifyOTPResponse struct {
	Purpose      entity.OTPPurpose   `json:"purpose"`
	NextStep     string              `json:"next_step"`
	VoterID      uuid.UUID           `json:"voter_id"`
	SessionState entity.SessionState `json:"session_state,omitempty"`
}

type resendOTPRequest struct {
	Phone   string `json:"phone" validate:"required,phone"`
	Purpose string `json:"purpose" validate:"required,otppurpose"`
}

type loginRequest struct {
	VoterExternalID string `json:"voter_external_id" validate:"required"`
	NationalID      string `json:"national_id" validate:"required"`
}

type loginResponse struct {
	SessionToken string    `json:"session_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	OTPExpiresAt time.Time `json:"otp_expires_at"`
	NextStep     string    `json:"next_step"`
}

type statusResponse struct {
	State     entity.SessionState `json:"state"`
	Steps     entity.SessionSteps `json:"steps"`
	Voter     entity.VoterSummary `json:"voter"`
	HasVoted  bool                `json:"has_voted"`
	NextStep  string              `json:"next_step,omitempty"`
	ExpiresAt time.Time           `json:"expires_at"`
}

// bindAndValidate decodes the body and runs the echo validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.uc.Register(c.Request().Context(), usecase.RegisterVoterInput{
		VoterExternalID: req.VoterExternalID,
		NationalID:      req.NationalID,
		Phone:           req.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, registerResponse{
		VoterID:      out.Voter.ID,
		NextStep:     constants.NextStepVerifyOTP,
		OTPExpiresAt: out.Code.ExpiresAt,
	})
}

// VerifyOTP handles POST /auth/verify-otp for both purposes.
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req verifyOTPRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.uc.VerifyOTP(c.Request().Context(), usecase.ValidateOTPInput{
		Phone:   req.Phone,
		Code:    req.Code,
		Purpose: entity.OTPPurpose(req.Purpose),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	res := verifyOTPResponse{
		Purpose:  result.Purpose,
		NextStep: result.NextStep,
		VoterID:  result.VoterID,
	}
	if result.Session != nil {
		res.SessionState = result.Session.State(time.Now())
	}

	return response.Success(c, http.StatusOK, res)
}

// ResendOTP handles POST /auth/resend-otp.
func (h *AuthHandler) ResendOTP(c echo.Context) error {
	var req resendOTPRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	issued, err := h.uc.ResendOTP(c.Request().Context(), usecase.ResendOTPInput{
		Phone:   req.Phone,
		Purpose: entity.OTPPurpose(req.Purpose),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"otp_expires_at": issued.ExpiresAt})
}

// Login handles POST /auth/login, the credential step.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	opened, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		VoterExternalID: req.VoterExternalID,
		NationalID:      req.NationalID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loginResponse{
		SessionToken: opened.Token,
		ExpiresAt:    opened.Session.ExpiresAt,
		OTPExpiresAt: opened.CodeExpiresAt,
		NextStep:     constants.NextStepVerifyOTP,
	})
}

// Status handles GET /auth/status.
func (h *AuthHandler) Status(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return errors.Wrap(domainerrors.ErrUnauthorized, "no session in context")
	}

	status, err := h.uc.Status(c.Request().Context(), session)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, statusResponse{
		State:     status.State,
		Steps:     status.Steps,
		Voter:     status.Voter.Summary(),
		HasVoted:  status.Voter.HasVoted,
		NextStep:  nextStep(status.State),
		ExpiresAt: status.ExpiresAt,
	})
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return errors.Wrap(domainerrors.ErrUnauthorized, "no session in context")
	}

	if err := h.uc.Logout(c.Request().Context(), session); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Session closed"})
}

func nextStep(state entity.SessionState) string {
	switch state {
	case entity.SessionStateCreated:
		return constants.NextStepVerifyOTP
	case entity.SessionStateOTPVerified:
		return constants.NextStepFaceRecognition
	case entity.SessionStateFaceVerified:
		return constants.NextStepVote
	default:
		return ""
	}
}
