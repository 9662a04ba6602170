package repository

import (
	"context"

	"votegate/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrCandidateNotFound is returned when a candidate is not found.
var ErrCandidateNotFound = errors.New("candidate not found")

// CandidateRepository reads the static ballot.
type CandidateRepository interface {
	ListCandidates(ctx context.Context) ([]*entity.Candidate, error)

	FindCandidateByID(ctx context.Context, id int) (*entity.Candidate, error)

	// SeedCandidates inserts candidates whose name is not present yet and returns how many were added.
	SeedCandidates(ctx context.Context, candidates []*entity.Candidate) (int, error)
}
