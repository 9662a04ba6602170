package repository

import (
	"context"
	"time"

	"votegate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for session persistence.
var (
	ErrSessionNotFound = errors.New("auth session not found")

	// ErrSessionTransitionRejected is returned when a step guard matched no row:
	// the session is closed, expired or not in the required prior state.
	ErrSessionTransitionRejected = errors.New("auth session transition rejected")
)

// AuthSessionRepository persists authentication sessions. Step changes are guarded updates.
type AuthSessionRepository interface {
	CreateSession(ctx context.Context, session *entity.AuthSession) error

	FindSessionByID(ctx context.Context, id uuid.UUID) (*entity.AuthSession, error)

	FindSessionByTokenHash(ctx context.Context, tokenHash string) (*entity.AuthSession, error)

	// FindPendingOTPSession returns the voter's most recent open session still waiting for step 2.
	FindPendingOTPSession(ctx context.Context, voterID uuid.UUID, now time.Time) (*entity.AuthSession, error)

	// CompleteOTPStep sets step 2 when step 1 is set, step 2 is not, and the session is open at now.
	CompleteOTPStep(ctx context.Context, id uuid.UUID, now time.Time) error

	// CompleteFaceStep sets step 3 when steps 1 and 2 are set and the session is open at now.
	CompleteFaceStep(ctx context.Context, id uuid.UUID, now time.Time) error

	// CloseSession stamps closed_at on an open session.
	CloseSession(ctx context.Context, id uuid.UUID, now time.Time) error
}
