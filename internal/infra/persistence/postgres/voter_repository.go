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

type voterRepository struct {
	db *gorm.DB
}

// NewVoterRepository is the constructor for voterRepository.
func NewVoterRepository(db *gorm.DB) repository.VoterRepository {
	return &voterRepository{db: db}
}

func (repo *voterRepository) CreateVoter(ctx context.Context, voter *entity.Voter) error {
	voterM := fromVoterDomain(voter)

	if err := repo.db.WithContext(ctx).Create(voterM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrapf(repository.ErrVoterAlreadyExists, "constraint %s", constraintName(err))
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required voter information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create voter")
	}

	voter.ID = voterM.ID
	voter.RegisteredAt = voterM.RegisteredAt
	voter.UpdatedAt = voterM.UpdatedAt

	return nil
}

func (repo *voterRepository) FindVoterByID(ctx context.Context, id uuid.UUID) (*entity.Voter, error) {
	return repo.first(ctx, repo.db.Where("id = ?", id))
}

func (repo *voterRepository) FindVoterByCredentials(ctx context.Context, voterExternalID, nationalID string) (*entity.Voter, error) {
	return repo.first(ctx, repo.db.Where("voter_external_id = ? AND national_id = ?", voterExternalID, nationalID))
}

func (repo *voterRepository) FindVoterByPhone(ctx context.Context, phone string) (*entity.Voter, error) {
	return repo.first(ctx, repo.db.Where("phone = ?", phone).Order("registered_at DESC"))
}

func (repo *voterRepository) first(ctx context.Context, scope *gorm.DB) (*entity.Voter, error) {
	var voterM model.VoterModel
	if err := scope.WithContext(ctx).First(&voterM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVoterNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toVoterDomain(&voterM), nil
}

func (repo *voterRepository) MarkPhoneVerified(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VoterModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"phone_verified": true, "updated_at": time.Now()})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark phone verified")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVoterNotFound
	}

	return nil
}

func (repo *voterRepository) MarkFaceModelTrained(ctx context.Context, id uuid.UUID) error {
	return repo.flip(ctx, id, "face_model_trained", repository.ErrVoterAlreadyTrained)
}

func (repo *voterRepository) MarkVoted(ctx context.Context, id uuid.UUID) error {
	return repo.flip(ctx, id, "has_voted", repository.ErrVoterAlreadyVoted)
}

// flip sets a boolean column false -> true in one guarded statement.
// Zero affected rows means either the voter is missing or the flag was already set.
func (repo *voterRepository) flip(ctx context.Context, id uuid.UUID, column string, alreadySet error) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VoterModel{}).
		Where("id = ? AND "+column+" = ?", id, false).
		Updates(map[string]any{column: true, "updated_at": time.Now()})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update voter "+column)
	}
	if result.RowsAffected == 1 {
		return nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.VoterModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return errors.WithStack(err)
	}
	if count == 0 {
		return repository.ErrVoterNotFound
	}

	return alreadySet
}

func (repo *voterRepository) CountVoters(ctx context.Context) (*repository.VoterCounts, error) {
	var row struct {
		Total    int64
		Voted    int64
		Enrolled int64
	}

	err := repo.db.WithContext(ctx).
		Model(&model.VoterModel{}).
		Select("COUNT(*) AS total, " +
			"COUNT(*) FILTER (WHERE has_voted) AS voted, " +
			"COUNT(*) FILTER (WHERE face_model_trained) AS enrolled").
		Scan(&row).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &repository.VoterCounts{Total: row.Total, Voted: row.Voted, Enrolled: row.Enrolled}, nil
}

func toVoterDomain(m *model.VoterModel) *entity.Voter {
	return &entity.Voter{
		ID:               m.ID,
		VoterExternalID:  m.VoterExternalID,
		NationalID:       m.NationalID,
		Phone:            m.Phone,
		PhoneVerified:    m.PhoneVerified,
		HasVoted:         m.HasVoted,
		FaceModelTrained: m.FaceModelTrained,
		RegisteredAt:     m.RegisteredAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func fromVoterDomain(v *entity.Voter) *model.VoterModel {
	id := v.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	registeredAt := v.RegisteredAt
	if registeredAt.IsZero() {
		registeredAt = time.Now()
	}

	return &model.VoterModel{
		ID:               id,
		VoterExternalID:  v.VoterExternalID,
		NationalID:       v.NationalID,
		Phone:            v.Phone,
		PhoneVerified:    v.PhoneVerified,
		HasVoted:         v.HasVoted,
		FaceModelTrained: v.FaceModelTrained,
		RegisteredAt:     registeredAt,
	}
}
