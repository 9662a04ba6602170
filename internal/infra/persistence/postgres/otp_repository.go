package postgres

import (
	"context"

	"votegate/internal/domain/entity"
	domainerrors "votegate/internal/domain/errors"
	"votegate/internal/domain/repository"
	"votegate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type otpRepository struct {
	db *gorm.DB
}

// NewOTPRepository is the constructor for otpRepository.
func NewOTPRepository(db *gorm.DB) repository.OTPRepository {
	return &otpRepository{db: db}
}

func (repo *otpRepository) CreateCode(ctx context.Context, code *entity.OneTimeCode) error {
	codeM := fromOTPDomain(code)

	if err := repo.db.WithContext(ctx).Create(codeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(repository.ErrVoterNotFound, "one-time code voter reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create one-time code")
	}

	code.ID = codeM.ID
	code.CreatedAt = codeM.CreatedAt

	return nil
}

func (repo *otpRepository) FindUnusedCodes(ctx context.Context, phone string, purpose entity.OTPPurpose, limit int) ([]*entity.OneTimeCode, error) {
	query := repo.db.WithContext(ctx).
		Where("phone = ? AND used = ?", phone, false)
	if purpose != "" {
		query = query.Where("purpose = ?", purpose.String())
	}

	var codeModels []*model.OneTimeCodeModel
	if err := query.Order("created_at DESC").Limit(limit).Find(&codeModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	codes := make([]*entity.OneTimeCode, len(codeModels))
	for i, m := range codeModels {
		codes[i] = toOTPDomain(m)
	}

	return codes, nil
}

func (repo *otpRepository) MarkCodeUsed(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OneTimeCodeModel{}).
		Where("id = ? AND used = ?", id, false).
		Update("used", true)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to consume one-time code")
	}
	if result.RowsAffected != 1 {
		return repository.ErrOTPAlreadyUsed
	}

	return nil
}

func toOTPDomain(m *model.OneTimeCodeModel) *entity.OneTimeCode {
	return &entity.OneTimeCode{
		ID:         m.ID,
		VoterID:    m.VoterID,
		Phone:      m.Phone,
		CodeDigest: m.CodeDigest,
		Purpose:    entity.OTPPurpose(m.Purpose),
		ExpiresAt:  m.ExpiresAt,
		Used:       m.Used,
		CreatedAt:  m.CreatedAt,
	}
}

func fromOTPDomain(c *entity.OneTimeCode) *model.OneTimeCodeModel {
	id := c.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &model.OneTimeCodeModel{
		ID:         id,
		VoterID:    c.VoterID,
		Phone:      c.Phone,
		CodeDigest: c.CodeDigest,
		Purpose:    c.Purpose.String(),
		ExpiresAt:  c.ExpiresAt,
		Used:       c.Used,
		CreatedAt:  c.CreatedAt,
	}
}
