package handler

import (
	"log/slog"
	"net/http"
	"time"

	"votegate/internal/delivery/api/middleware"
	"votegate/internal/delivery/api/response"
	"votegate/internal/domain/entity"
	domainerrors "votegate/internal/domain/errors"
	"votegate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VoteHandler serves the ballot, the vote gate and the public tallies.
type VoteHandler struct {
	uc     usecase.VoteUsecase
	logger *slog.Logger
}

// NewVoteHandler is the constructor for VoteHandler, injected by Fx.
func NewVoteHandler(uc usecase.VoteUsecase, logger *slog.Logger) *VoteHandler {
	return &VoteHandler{uc: uc, logger: logger}
}

type candidateResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Party       string `json:"party"`
	Description string `json:"description,omitempty"`
}

type submitRequest struct {
	CandidateID int `json:"candidate_id" validate:"required,gt=0"`
}

type receiptResponse struct {
	TransactionID string            `json:"transaction_id"`
	Timestamp     time.Time         `json:"timestamp"`
	Candidate     candidateResponse `json:"candidate"`
	QRCode        string            `json:"qr_code,omitempty"`
}

type eligibilityResponse struct {
	Eligible bool                `json:"eligible"`
	HasVoted bool                `json:"has_voted"`
	Voter    entity.VoterSummary `json:"voter"`
}

type resultEntry struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Party      string  `json:"party"`
	Votes      int64   `json:"votes"`
	Percentage float64 `json:"percentage"`
}

type resultsResponse struct {
	Results       []resultEntry `json:"results"`
	TotalVotes    int64         `json:"total_votes"`
	TotalVoters   int64         `json:"total_voters"`
	Participation float64       `json:"participation"`
}

type hourlyEntry struct {
	Hour  time.Time `json:"hour"`
	Votes int64     `json:"votes"`
}

type statsResponse struct {
	TotalVoters    int64         `json:"total_voters"`
	VotersVoted    int64         `json:"voters_voted"`
	VotersEnrolled int64         `json:"voters_enrolled"`
	Participation  float64       `json:"participation"`
	VotesPerHour   []hourlyEntry `json:"votes_per_hour"`
}

func toCandidateResponse(c *entity.Candidate) candidateResponse {
	return candidateResponse{ID: c.ID, Name: c.Name, Party: c.Party, Description: c.Description}
}

// Candidates handles GET /vote/candidates.
func (h *VoteHandler) Candidates(c echo.Context) error {
	candidates, err := h.uc.Candidates(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	res := make([]candidateResponse, 0, len(candidates))
	for _, candidate := range candidates {
		res = append(res, toCandidateResponse(candidate))
	}

	return response.Success(c, http.StatusOK, res)
}

// Eligibility handles GET /vote/eligibility.
func (h *VoteHandler) Eligibility(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return errors.Wrap(domainerrors.ErrUnauthorized, "no session in context")
	}

	eligibility, err := h.uc.Eligibility(c.Request().Context(), session)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, eligibilityResponse{
		Eligible: eligibility.Eligible,
		HasVoted: eligibility.HasVoted,
		Voter:    eligibility.Voter.Summary(),
	})
}

// Submit handles POST /vote/submit.
func (h *VoteHandler) Submit(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return errors.Wrap(domainerrors.ErrUnauthorized, "no session in context")
	}

	var req submitRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	receipt, err := h.uc.Cast(c.Request().Context(), session, req.CandidateID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, receiptResponse{
		TransactionID: receipt.TransactionID,
		Timestamp:     receipt.Timestamp,
		Candidate:     toCandidateResponse(receipt.Candidate),
		QRCode:        receipt.QRCode,
	})
}

// Results handles GET /vote/results.
func (h *VoteHandler) Results(c echo.Context) error {
	results, err := h.uc.Results(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	res := resultsResponse{
		Results:       make([]resultEntry, 0, len(results.Results)),
		TotalVotes:    results.TotalVotes,
		TotalVoters:   results.TotalVoters,
		Participation: results.Participation,
	}
	for _, r := range results.Results {
		res.Results = append(res.Results, resultEntry(r))
	}

	return response.Success(c, http.StatusOK, res)
}

// Stats handles GET /vote/stats.
func (h *VoteHandler) Stats(c echo.Context) error {
	stats, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	res := statsResponse{
		TotalVoters:    stats.TotalVoters,
		VotersVoted:    stats.VotersVoted,
		VotersEnrolled: stats.VotersEnrolled,
		Participation:  stats.Participation,
		VotesPerHour:   make([]hourlyEntry, 0, len(stats.VotesPerHour)),
	}
	for _, bucket := range stats.VotesPerHour {
		res.VotesPerHour = append(res.VotesPerHour, hourlyEntry(bucket))
	}

	return response.Success(c, http.StatusOK, res)
}
