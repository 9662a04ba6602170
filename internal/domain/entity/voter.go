// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Voter is a registered elector. The two external identifiers are fixed at registration.
type Voter struct {
	ID               uuid.UUID // Internal identifier, also the face model label.
	VoterExternalID  string    // The voter card number printed by the electoral commission.
	NationalID       string    // National identity number, unique across voters.
	Phone            string    // Normalized E.164 phone number receiving one-time codes.
	PhoneVerified    bool      // Set once a registration code has been confirmed.
	HasVoted         bool      // Flips false -> true exactly once, when a vote is cast.
	FaceModelTrained bool      // Set by the trainer once a face model has been persisted.
	RegisteredAt     time.Time // Registration timestamp.
	UpdatedAt        time.Time
}

// CanEnroll reports whether the voter may still add training images.
func (v *Voter) CanEnroll() bool {
	return v.PhoneVerified && !v.FaceModelTrained
}

// VoterSummary is the public projection returned by status endpoints.
type VoterSummary struct {
	ID              uuid.UUID `json:"id"`
	VoterExternalID string    `json:"voter_external_id"`
	Phone           string    `json:"phone"`
	HasVoted        bool      `json:"has_voted"`
	FaceEnrolled    bool      `json:"face_enrolled"`
}

// Summary projects the voter for API responses.
func (v *Voter) Summary() VoterSummary {
	return VoterSummary{
		ID:              v.ID,
		VoterExternalID: v.VoterExternalID,
		Phone:           v.Phone,
		HasVoted:        v.HasVoted,
		FaceEnrolled:    v.FaceModelTrained,
	}
}
