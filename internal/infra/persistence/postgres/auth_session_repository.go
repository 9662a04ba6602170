package postgres

import (
	"context"
	"time"

	"votegate/internal/domain/entity"
	domainerrors "votegate/internal/domain/errors"
	"votegate/internal/domain/repository"
	"votegate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type authSessionRepository struct {
	db *gorm.DB
}

// NewAuthSessionRepository is the constructor for authSessionRepository.
func NewAuthSessionRepository(db *gorm.DB) repository.AuthSessionRepository {
	return &authSessionRepository{db: db}
}

func (repo *authSessionRepository) CreateSession(ctx context.Context, session *entity.AuthSession) error {
	sessionM := fromSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrInternalError.WrapMessage("session token hash collision")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create auth session")
	}

	session.CreatedAt = sessionM.CreatedAt
	session.UpdatedAt = sessionM.UpdatedAt

	return nil
}

func (repo *authSessionRepository) FindSessionByID(ctx context.Context, id uuid.UUID) (*entity.AuthSession, error) {
	return repo.first(ctx, repo.db.Where("id = ?", id))
}

func (repo *authSessionRepository) FindSessionByTokenHash(ctx context.Context, tokenHash string) (*entity.AuthSession, error) {
	return repo.first(ctx, repo.db.Where("token_hash = ?", tokenHash))
}

func (repo *authSessionRepository) FindPendingOTPSession(ctx context.Context, voterID uuid.UUID, now time.Time) (*entity.AuthSession, error) {
	return repo.first(ctx, repo.db.
		Where("voter_id = ? AND step1_completed = ? AND step2_completed = ?", voterID, true, false).
		Where("closed_at IS NULL AND expires_at > ?", now).
		Order("created_at DESC"))
}

func (repo *authSessionRepository) first(ctx context.Context, scope *gorm.DB) (*entity.AuthSession, error) {
	var sessionM model.AuthSessionModel
	if err := scope.WithContext(ctx).First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toSessionDomain(&sessionM), nil
}

func (repo *authSessionRepository) CompleteOTPStep(ctx context.Context, id uuid.UUID, now time.Time) error {
	return repo.transition(ctx, repo.openAt(id, now).
		Where("step1_completed = ? AND step2_completed = ?", true, false),
		map[string]any{"step2_completed": true, "updated_at": now})
}

func (repo *authSessionRepository) CompleteFaceStep(ctx context.Context, id uuid.UUID, now time.Time) error {
	return repo.transition(ctx, repo.openAt(id, now).
		Where("step1_completed = ? AND step2_completed = ? AND step3_completed = ?", true, true, false),
		map[string]any{"step3_completed": true, "updated_at": now})
}

func (repo *authSessionRepository) CloseSession(ctx context.Context, id uuid.UUID, now time.Time) error {
	return repo.transition(ctx, repo.db.Model(&model.AuthSessionModel{}).
		Where("id = ? AND closed_at IS NULL", id),
		map[string]any{"closed_at": now, "updated_at": now})
}

func (repo *authSessionRepository) openAt(id uuid.UUID, now time.Time) *gorm.DB {
	return repo.db.Model(&model.AuthSessionModel{}).
		Where("id = ? AND closed_at IS NULL AND expires_at > ?", id, now)
}

func (repo *authSessionRepository) transition(ctx context.Context, scope *gorm.DB, values map[string]any) error {
	result := scope.WithContext(ctx).Updates(values)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update auth session")
	}
	if result.RowsAffected != 1 {
		return repository.ErrSessionTransitionRejected
	}

	return nil
}

func toSessionDomain(m *model.AuthSessionModel) *entity.AuthSession {
	return &entity.AuthSession{
		ID:             m.ID,
		VoterID:        m.VoterID,
		Step1Completed: m.Step1Completed,
		Step2Completed: m.Step2Completed,
		Step3Completed: m.Step3Completed,
		TokenHash:      m.TokenHash,
		ExpiresAt:      m.ExpiresAt,
		ClosedAt:       m.ClosedAt,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func fromSessionDomain(s *entity.AuthSession) *model.AuthSessionModel {
	return &model.AuthSessionModel{
		ID:             s.ID,
		VoterID:        s.VoterID,
		Step1Completed: s.Step1Completed,
		Step2Completed: s.Step2Completed,
		Step3Completed: s.Step3Completed,
		TokenHash:      s.TokenHash,
		ExpiresAt:      s.ExpiresAt,
		ClosedAt:       s.ClosedAt,
	}
}
