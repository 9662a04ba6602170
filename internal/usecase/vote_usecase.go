package usecase

import (
	"context"

	"votegate/internal/domain/entity"
)

// VoteUsecase is the ballot box.
type VoteUsecase interface {
	Candidates(ctx context.Context) ([]*entity.Candidate, error)
	Eligibility(ctx context.Context, session *entity.AuthSession) (*entity.Eligibility, error)

	// Cast records the session voter's single vote and closes the session.
	Cast(ctx context.Context, session *entity.AuthSession, candidateID int) (*entity.Receipt, error)

	Results(ctx context.Context) (*entity.ElectionResults, error)
	Stats(ctx context.Context) (*entity.ElectionStats, error)
}
