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
	"gorm.io/gorm/clause"
)

type voteRepository struct {
	db *gorm.DB
}

// NewVoteRepository is the constructor for voteRepository.
func NewVoteRepository(db *gorm.DB) repository.VoteRepository {
	return &voteRepository{db: db}
}

func (repo *voteRepository) CreateVote(ctx context.Context, vote *entity.Vote) error {
	if vote.ID == uuid.Nil {
		vote.ID = uuid.New()
	}
	if vote.CastAt.IsZero() {
		vote.CastAt = time.Now()
	}

	voteM := &model.VoteModel{
		ID:          vote.ID,
		VoterID:     vote.VoterID,
		CandidateID: vote.CandidateID,
		CastAt:      vote.CastAt,
	}

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(voteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrVoteAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCandidateNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert vote")
	}

	return nil
}

func (repo *voteRepository) CountVotes(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.VoteModel{}).Count(&count).Error; err != nil {
		return 0, errors.WithStack(err)
	}

	return count, nil
}

func (repo *voteRepository) TallyByCandidate(ctx context.Context) ([]*entity.CandidateTally, error) {
	var rows []struct {
		model.CandidateModel
		Votes int64
	}

	err := repo.db.WithContext(ctx).
		Model(&model.CandidateModel{}).
		Select("candidates.*, COUNT(votes.id) AS votes").
		Joins("LEFT JOIN votes ON votes.candidate_id = candidates.id").
		Group("candidates.id").
		Order("votes DESC, candidates.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	tallies := make([]*entity.CandidateTally, len(rows))
	for i := range rows {
		tallies[i] = &entity.CandidateTally{
			Candidate: *toCandidateDomain(&rows[i].CandidateModel),
			Votes:     rows[i].Votes,
		}
	}

	return tallies, nil
}

func (repo *voteRepository) CountVotesPerHour(ctx context.Context, since time.Time) ([]entity.HourlyVotes, error) {
	var rows []struct {
		Hour  time.Time
		Votes int64
	}

	err := repo.db.WithContext(ctx).
		Model(&model.VoteModel{}).
		Select("date_trunc('hour', cast_at) AS hour, COUNT(*) AS votes").
		Where("cast_at >= ?", since).
		Group("hour").
		Order("hour ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	buckets := make([]entity.HourlyVotes, len(rows))
	for i, row := range rows {
		buckets[i] = entity.HourlyVotes{Hour: row.Hour, Votes: row.Votes}
	}

	return buckets, nil
}
