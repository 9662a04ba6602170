package entity

import "time"

// Candidate is an entry of the seeded, static ballot.
type Candidate struct {
	ID          int
	Name        string
	Party       string
	Description string
	CreatedAt   time.Time
}

// CandidateTally is a candidate with its vote count.
type CandidateTally struct {
	Candidate
	Votes int64
}
