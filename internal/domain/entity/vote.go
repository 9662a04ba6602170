package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Vote is a cast ballot. At most one exists per voter.
type Vote struct {
	ID          uuid.UUID
	VoterID     uuid.UUID
	CandidateID int
	CastAt      time.Time
}

// TransactionID renders the receipt identifier: VT-<YYYYmmddHHMMSS>-<first 8 hex of the vote id>.
func (v *Vote) TransactionID() string {
	hexID := strings.ReplaceAll(v.ID.String(), "-", "")

	return fmt.Sprintf("VT-%s-%s", v.CastAt.UTC().Format("20060102150405"), strings.ToUpper(hexID[:8]))
}

// Receipt is handed to the voter after a successful cast.
type Receipt struct {
	TransactionID string
	VoteID        uuid.UUID
	Timestamp     time.Time
	Candidate     *Candidate
	// QRCode is a base64-encoded PNG of the transaction id; empty when generation failed.
	QRCode string
}

// ElectionResults is the tally over all candidates, highest first.
type ElectionResults struct {
	Results       []CandidateResult
	TotalVotes    int64
	TotalVoters   int64
	Participation float64
}

// CandidateResult is one row of the results table.
type CandidateResult struct {
	ID         int
	Name       string
	Party      string
	Votes      int64
	Percentage float64
}

// HourlyVotes is one bucket of the participation timeline.
type HourlyVotes struct {
	Hour  time.Time
	Votes int64
}

// ElectionStats summarizes turnout.
type ElectionStats struct {
	TotalVoters    int64
	VotersVoted    int64
	VotersEnrolled int64
	Participation  float64
	VotesPerHour   []HourlyVotes
}

// Eligibility describes whether an authenticated voter may cast a vote.
type Eligibility struct {
	Eligible bool
	HasVoted bool
	Voter    *Voter
}
