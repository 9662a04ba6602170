package impl

import (
	"context"
	"encoding/base64"
	"log/slog"
	"math"
	"time"

	deliverycontext "votegate/internal/delivery/context"
	"votegate/internal/domain/entity"
	domainerrors "votegate/internal/domain/errors"
	"votegate/internal/domain/repository"
	"votegate/internal/domain/service"
	"votegate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const statsWindow = 24 * time.Hour

// voteService implements the VoteUsecase interface.
type voteService struct {
	txManager repository.TransactionManager
	qrCode    service.QRCodeService
	publisher service.EventPublisher
	now       func() time.Time
	logger    *slog.Logger
}

// VoteServiceParams holds dependencies for VoteService, injected by Fx.
type VoteServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	QRCode    service.QRCodeService
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewVoteService is the constructor for voteService.
func NewVoteService(params VoteServiceParams) usecase.VoteUsecase {
	return &voteService{
		txManager: params.TxManager,
		qrCode:    params.QRCode,
		publisher: params.Publisher,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *voteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Candidates lists the ballot.
func (srv *voteService) Candidates(ctx context.Context) ([]*entity.Candidate, error) {
	var candidates []*entity.Candidate

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		candidates, err = repoFactory.NewCandidateRepository().ListCandidates(ctx)

		return errors.Wrap(err, "failed to list candidates")
	})
	if err != nil {
		return nil, err
	}

	return candidates, nil
}

// Eligibility reports whether the fully authenticated voter may still vote.
func (srv *voteService) Eligibility(ctx context.Context, session *entity.AuthSession) (*entity.Eligibility, error) {
	if err := srv.requireFullyAuthenticated(session); err != nil {
		return nil, err
	}

	var voter *entity.Voter

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		voter, err = repoFactory.NewVoterRepository().FindVoterByID(ctx, session.VoterID)
		if err != nil {
			if errors.Is(err, repository.ErrVoterNotFound) {
				return errors.Wrap(domainerrors.ErrVoterNotFound, "session voter not found")
			}

			return errors.Wrap(err, "failed to find voter")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &entity.Eligibility{Eligible: !voter.HasVoted, HasVoted: voter.HasVoted, Voter: voter}, nil
}

// Cast records the vote. The candidate check, the has_voted flip, the vote row and the
// session closure commit together or not at all.
func (srv *voteService) Cast(ctx context.Context, session *entity.AuthSession, candidateID int) (*entity.Receipt, error) {
	if err := srv.requireFullyAuthenticated(session); err != nil {
		return nil, err
	}

	now := srv.now()
	vote := &entity.Vote{
		ID:          uuid.New(),
		VoterID:     session.VoterID,
		CandidateID: candidateID,
		CastAt:      now,
	}

	var candidate *entity.Candidate
	var voter *entity.Voter

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		voterRepo := repoFactory.NewVoterRepository()

		// 1. Candidate must exist; the row is share-locked until commit
		var err error
		candidate, err = repoFactory.NewCandidateRepository().FindCandidateByID(ctx, candidateID)
		if err != nil {
			if errors.Is(err, repository.ErrCandidateNotFound) {
				return errors.Wrapf(domainerrors.ErrCandidateNotFound, "candidate %d", candidateID)
			}

			return errors.Wrap(err, "failed to find candidate")
		}

		// 2. Flip has_voted; concurrent casts race on this guard
		if err := voterRepo.MarkVoted(ctx, session.VoterID); err != nil {
			switch {
			case errors.Is(err, repository.ErrVoterAlreadyVoted):
				return errors.Wrap(domainerrors.ErrAlreadyVoted, "voter already voted")
			case errors.Is(err, repository.ErrVoterNotFound):
				return errors.Wrap(domainerrors.ErrVoterNotFound, "session voter not found")
			default:
				return errors.Wrap(err, "failed to mark voter as voted")
			}
		}

		// 3. Insert the ballot
		if err := repoFactory.NewVoteRepository().CreateVote(ctx, vote); err != nil {
			switch {
			case errors.Is(err, repository.ErrVoteAlreadyExists):
				return errors.Wrap(domainerrors.ErrAlreadyVoted, "vote already recorded")
			case errors.Is(err, repository.ErrCandidateNotFound):
				return errors.Wrapf(domainerrors.ErrCandidateNotFound, "candidate %d", candidateID)
			default:
				return errors.Wrap(err, "failed to record vote")
			}
		}

		// 4. Consume the session; a concurrent logout rolls the vote back
		if err := repoFactory.NewAuthSessionRepository().CloseSession(ctx, session.ID, now); err != nil {
			if errors.Is(err, repository.ErrSessionTransitionRejected) {
				return errors.Wrap(domainerrors.ErrSessionExpired, "session closed before the vote committed")
			}

			return errors.Wrap(err, "failed to close session")
		}

		voter, err = voterRepo.FindVoterByID(ctx, session.VoterID)

		return errors.Wrap(err, "failed to reload voter")
	})
	if err != nil {
		srv.log(ctx).Warn("Vote rejected",
			slog.Any("error", err),
			slog.String("voter_id", session.VoterID.String()),
			slog.Int("candidate_id", candidateID),
		)

		return nil, errors.Wrap(err, "failed to cast vote")
	}

	receipt := &entity.Receipt{
		TransactionID: vote.TransactionID(),
		VoteID:        vote.ID,
		Timestamp:     vote.CastAt,
		Candidate:     candidate,
	}

	srv.log(ctx).Info("Vote cast", slog.String("transaction_id", receipt.TransactionID))

	if png, err := srv.qrCode.GenerateReceiptQR(receipt.TransactionID); err != nil {
		srv.log(ctx).Warn("Failed to render receipt QR code", slog.Any("error", err), slog.String("transaction_id", receipt.TransactionID))
	} else {
		receipt.QRCode = base64.StdEncoding.EncodeToString(png)
	}

	srv.publishVoteCast(ctx, receipt, voter)

	return receipt, nil
}

// publishVoteCast is best effort: the vote is already committed.
func (srv *voteService) publishVoteCast(ctx context.Context, receipt *entity.Receipt, voter *entity.Voter) {
	event := &service.VoteCastEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		TransactionID: receipt.TransactionID,
		VoterID:       voter.ID.String(),
		Phone:         voter.Phone,
		CastAt:        receipt.Timestamp,
	}

	if err := srv.publisher.PublishVoteCast(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish vote event", slog.Any("error", err), slog.String("transaction_id", receipt.TransactionID))
	}
}

// Results tallies every candidate, highest first.
func (srv *voteService) Results(ctx context.Context) (*entity.ElectionResults, error) {
	var tallies []*entity.CandidateTally
	var counts *repository.VoterCounts

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		tallies, err = repoFactory.NewVoteRepository().TallyByCandidate(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to tally votes")
		}

		counts, err = repoFactory.NewVoterRepository().CountVoters(ctx)

		return errors.Wrap(err, "failed to count voters")
	})
	if err != nil {
		return nil, err
	}

	results := &entity.ElectionResults{
		Results:     make([]entity.CandidateResult, 0, len(tallies)),
		TotalVoters: counts.Total,
	}
	for _, tally := range tallies {
		results.TotalVotes += tally.Votes
	}
	for _, tally := range tallies {
		results.Results = append(results.Results, entity.CandidateResult{
			ID:         tally.ID,
			Name:       tally.Name,
			Party:      tally.Party,
			Votes:      tally.Votes,
			Percentage: percentage(tally.Votes, results.TotalVotes),
		})
	}
	results.Participation = percentage(results.TotalVotes, counts.Total)

	return results, nil
}

// Stats summarizes turnout over the last 24 hours.
func (srv *voteService) Stats(ctx context.Context) (*entity.ElectionStats, error) {
	var counts *repository.VoterCounts
	var hourly []entity.HourlyVotes

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		counts, err = repoFactory.NewVoterRepository().CountVoters(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to count voters")
		}

		hourly, err = repoFactory.NewVoteRepository().CountVotesPerHour(ctx, srv.now().Add(-statsWindow))

		return errors.Wrap(err, "failed to bucket votes")
	})
	if err != nil {
		return nil, err
	}

	if hourly == nil {
		hourly = []entity.HourlyVotes{}
	}

	return &entity.ElectionStats{
		TotalVoters:    counts.Total,
		VotersVoted:    counts.Voted,
		VotersEnrolled: counts.Enrolled,
		Participation:  percentage(counts.Voted, counts.Total),
		VotesPerHour:   hourly,
	}, nil
}

func (srv *voteService) requireFullyAuthenticated(session *entity.AuthSession) error {
	switch state := session.State(srv.now()); state {
	case entity.SessionStateFaceVerified:
		return nil
	case entity.SessionStateExpired, entity.SessionStateClosed:
		return errors.Wrap(domainerrors.ErrSessionExpired, "session is no longer active")
	default:
		return errors.Wrap(domainerrors.ErrSessionStepOutOfOrder.WithDetails(map[string]any{
			"state": state.String(),
			"steps": session.Steps(),
		}), "voting requires a fully authenticated session")
	}
}

// percentage rounds part/total to two decimals; zero when total is zero.
func percentage(part, total int64) float64 {
	if total == 0 {
		return 0
	}

	return math.Round(float64(part)/float64(total)*10000) / 100
}
