// Package response renders the JSON envelope shared by every API route.
package response

import (
	"net/http"

	deliverycontext "votegate/internal/delivery/context"
	domainerrors "votegate/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type (
	SuccessResponse = domainerrors.SuccessResponse
	ErrorResponse   = domainerrors.ErrorResponse
	ErrorInfo       = domainerrors.ErrorInfo
	MetaInfo        = domainerrors.MetaInfo
)

// codes for errors raised by echo itself rather than by a handler
var httpErrorCodes = map[int]string{
	http.StatusNotFound:              "ROUTE_NOT_FOUND",
	http.StatusMethodNotAllowed:      "METHOD_NOT_ALLOWED",
	http.StatusRequestEntityTooLarge: "PAYLOAD_TOO_LARGE",
	http.StatusUnsupportedMediaType:  "UNSUPPORTED_MEDIA_TYPE",
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success writes {data, meta}.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: meta(c)})
}

// Error writes {error, meta}. Details never leave the server on 401 or 5xx.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

// FromError renders AppErrors and echo HTTP errors. It reports false for anything else.
func FromError(c echo.Context, err error) (bool, error) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return true, Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code, ok := httpErrorCodes[httpErr.Code]
		if !ok {
			code = "HTTP_ERROR"
		}
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		return true, Error(c, httpErr.Code, code, message, nil)
	}

	return false, nil
}
