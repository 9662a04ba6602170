package middleware

import (
	"log/slog"
	"slices"
	"strings"
	"time"

	deliverycontext "votegate/internal/delivery/context"
	"votegate/internal/domain/entity"
	domainerrors "votegate/internal/domain/errors"
	"votegate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	sessionKey   = "auth_session"
	bearerPrefix = "Bearer "
)

var timeNow = time.Now

// AuthMiddleware resolves bearer session tokens.
type AuthMiddleware struct {
	auth usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(auth usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// Authenticate loads the session behind the bearer token into the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return errors.Wrap(domainerrors.ErrUnauthorized, "authorization header is missing")
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
		if token == header || token == "" {
			return errors.Wrap(domainerrors.ErrUnauthorized, "authorization must be a bearer token")
		}

		session, err := m.auth.Authenticate(c.Request().Context(), token)
		if err != nil {
			return errors.WithStack(err)
		}

		c.Set(sessionKey, session)
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogAttrs(c.Request().Context(),
			slog.String("session_id", session.ID.String()),
			slog.String("voter_id", session.VoterID.String()),
		)))

		return next(c)
	}
}

// RequireState rejects sessions that are not in one of states.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireState(states ...entity.SessionState) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := GetSession(c)
			if !ok {
				return errors.Wrap(domainerrors.ErrUnauthorized, "no session in context")
			}

			state := session.State(timeNow())
			if !slices.Contains(states, state) {
				return errors.Wrapf(domainerrors.ErrSessionStepOutOfOrder.WithDetails(map[string]any{
					"state": state.String(),
					"steps": session.Steps(),
				}), "session state %s not allowed", state)
			}

			return next(c)
		}
	}
}

// GetSession returns the session stored by Authenticate.
func GetSession(c echo.Context) (*entity.AuthSession, bool) {
	session, ok := c.Get(sessionKey).(*entity.AuthSession)

	return session, ok && session != nil
}
