package model

import (
	"time"

	"github.com/google/uuid"
)

// CandidateModel mirrors the 'candidates' table.
type CandidateModel struct {
	ID          int    `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Party       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CandidateModel) TableName() string {
	return "candidates"
}

// VoteModel mirrors the 'votes' table. The unique voter index is the last line of defence for one vote per voter.
type VoteModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	VoterID     uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	CandidateID int       `gorm:"not null;index"`
	CastAt      time.Time `gorm:"not null;index"`

	Voter     VoterModel     `gorm:"foreignKey:VoterID;constraint:OnDelete:RESTRICT"`
	Candidate CandidateModel `gorm:"foreignKey:CandidateID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (VoteModel) TableName() string {
	return "votes"
}

// All returns every model in migration order.
func All() []any {
	return []any{
		&VoterModel{},
		&OneTimeCodeModel{},
		&AuthSessionModel{},
		&CandidateModel{},
		&VoteModel{},
	}
}
