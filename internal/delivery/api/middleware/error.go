package middleware

import (
	"log/slog"
	"net/http"

	"votegate/internal/delivery/api/response"
	deliverycontext "votegate/internal/delivery/context"
	domainerrors "votegate/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware is the echo HTTPErrorHandler.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError maps err onto the response envelope. Unknown errors become a bare 500.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() >= http.StatusInternalServerError {
		logger.Error("Request failed", slog.Any("error", err), slog.String("code", appErr.ErrorCode()))
	}

	handled, writeErr := response.FromError(c, err)
	if !handled {
		logger.Error("Unhandled error",
			slog.Any("error", err),
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
		)
		writeErr = response.Error(c, http.StatusInternalServerError,
			domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message(), nil)
	}
	if writeErr != nil {
		logger.Warn("Failed to write error response", slog.Any("error", writeErr))
	}
}
