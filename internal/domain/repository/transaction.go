package repository

import "context"

// TransactionManager scopes a unit of work. Anything that must be atomic,
// such as recording a ballot and flipping the voter's has_voted flag, goes
// through Execute with repositories obtained from the factory it hands out.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise.
	Execute(ctx context.Context, fn func(tx RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to one transaction.
type RepositoryFactory interface {
	NewVoterRepository() VoterRepository
	NewOTPRepository() OTPRepository
	NewAuthSessionRepository() AuthSessionRepository
	NewCandidateRepository() CandidateRepository
	NewVoteRepository() VoteRepository
}
