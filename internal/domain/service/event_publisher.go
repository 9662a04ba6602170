package service

import (
	"context"
	"time"
)

// VoteCastEvent is published after a vote commits. It never carries the chosen candidate.
type VoteCastEvent struct {
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	TransactionID string    `json:"transaction_id"`
	VoterID       string    `json:"voter_id"`
	Phone         string    `json:"phone"`
	CastAt        time.Time `json:"cast_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishVoteCast publishes a vote-cast event for the notifier
	PublishVoteCast(ctx context.Context, event *VoteCastEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
