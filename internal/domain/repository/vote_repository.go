package repository

import (
	"context"
	"time"

	"votegate/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrVoteAlreadyExists is returned when the voter already has a vote row.
var ErrVoteAlreadyExists = errors.New("vote already exists for voter")

// VoteRepository persists the ballot box.
type VoteRepository interface {
	CreateVote(ctx context.Context, vote *entity.Vote) error

	CountVotes(ctx context.Context) (int64, error)

	// TallyByCandidate returns every candidate with its vote count, zero included.
	TallyByCandidate(ctx context.Context) ([]*entity.CandidateTally, error)

	// CountVotesPerHour buckets votes cast at or after since by hour, oldest first.
	CountVotesPerHour(ctx context.Context, since time.Time) ([]entity.HourlyVotes, error)
}
