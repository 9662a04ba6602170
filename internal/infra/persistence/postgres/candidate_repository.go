package postgres

import (
	"context"

	"votegate/internal/domain/entity"
	domainerrors "votegate/internal/domain/errors"
	"votegate/internal/domain/repository"
	"votegate/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type candidateRepository struct {
	db *gorm.DB
}

// NewCandidateRepository is the constructor for candidateRepository.
func NewCandidateRepository(db *gorm.DB) repository.CandidateRepository {
	return &candidateRepository{db: db}
}

func (repo *candidateRepository) ListCandidates(ctx context.Context) ([]*entity.Candidate, error) {
	var candidateModels []*model.CandidateModel
	if err := repo.db.WithContext(ctx).Order("id ASC").Find(&candidateModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	candidates := make([]*entity.Candidate, len(candidateModels))
	for i, m := range candidateModels {
		candidates[i] = toCandidateDomain(m)
	}

	return candidates, nil
}

// FindCandidateByID takes a shared row lock so the candidate cannot vanish under a vote transaction.
func (repo *candidateRepository) FindCandidateByID(ctx context.Context, id int) (*entity.Candidate, error) {
	var candidateM model.CandidateModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthShare}).
		Where("id = ?", id).
		First(&candidateM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCandidateNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toCandidateDomain(&candidateM), nil
}

func (repo *candidateRepository) SeedCandidates(ctx context.Context, candidates []*entity.Candidate) (int, error) {
	if len(candidates) == 0 {
		return 0, nil
	}

	candidateModels := make([]*model.CandidateModel, len(candidates))
	for i, c := range candidates {
		candidateModels[i] = &model.CandidateModel{Name: c.Name, Party: c.Party, Description: c.Description}
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&candidateModels)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to seed candidates")
	}

	return int(result.RowsAffected), nil
}

func toCandidateDomain(m *model.CandidateModel) *entity.Candidate {
	return &entity.Candidate{
		ID:          m.ID,
		Name:        m.Name,
		Party:       m.Party,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}
