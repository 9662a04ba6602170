package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"votegate/internal/delivery/api/middleware"
	"votegate/internal/delivery/api/validator"
	"votegate/internal/domain/entity"
	mockUsecase "votegate/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "session-token"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.Validator = validator.MustNew()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(discardLogger()).HandleHTTPError

	return e
}

// sessionAuth returns Authenticate middleware that resolves testToken to session.
func sessionAuth(t *testing.T, session *entity.AuthSession) echo.MiddlewareFunc {
	t.Helper()

	auth := mockUsecase.NewMockAuthUsecase(t)
	auth.EXPECT().Authenticate(mock.Anything, testToken).Return(session, nil).Maybe()

	return middleware.NewAuthMiddleware(auth).Authenticate
}

func liveSession(steps int) *entity.AuthSession {
	return &entity.AuthSession{
		ID:             uuid.New(),
		VoterID:        uuid.New(),
		Step1Completed: steps >= 1,
		Step2Completed: steps >= 2,
		Step3Completed: steps >= 3,
		ExpiresAt:      time.Now().Add(time.Hour),
		CreatedAt:      time.Now(),
	}
}

func serve(e *echo.Echo, method, path, body string, authorized bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authorized {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	env := decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, out))
}
