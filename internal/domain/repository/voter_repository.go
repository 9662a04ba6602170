// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"votegate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for voter persistence.
var (
	ErrVoterNotFound      = errors.New("voter not found")
	ErrVoterAlreadyExists = errors.New("voter already exists")

	// ErrVoterAlreadyVoted is returned when the has_voted guard matched no row.
	ErrVoterAlreadyVoted = errors.New("voter has already voted")

	// ErrVoterAlreadyTrained is returned when the face_model_trained guard matched no row.
	ErrVoterAlreadyTrained = errors.New("voter face model already trained")
)

// VoterCounts aggregates the voter table for turnout statistics.
type VoterCounts struct {
	Total    int64
	Voted    int64
	Enrolled int64
}

// VoterRepository persists voters. Flag changes are conditional updates, never read-then-write.
type VoterRepository interface {
	CreateVoter(ctx context.Context, voter *entity.Voter) error

	FindVoterByID(ctx context.Context, id uuid.UUID) (*entity.Voter, error)

	// FindVoterByCredentials looks a voter up by the knowledge factor pair.
	FindVoterByCredentials(ctx context.Context, voterExternalID, nationalID string) (*entity.Voter, error)

	// FindVoterByPhone returns the most recently registered voter holding phone.
	FindVoterByPhone(ctx context.Context, phone string) (*entity.Voter, error)

	MarkPhoneVerified(ctx context.Context, id uuid.UUID) error

	// MarkFaceModelTrained flips face_model_trained false -> true.
	MarkFaceModelTrained(ctx context.Context, id uuid.UUID) error

	// MarkVoted flips has_voted false -> true. ErrVoterAlreadyVoted when it was already true.
	MarkVoted(ctx context.Context, id uuid.UUID) error

	CountVoters(ctx context.Context) (*VoterCounts, error)
}
