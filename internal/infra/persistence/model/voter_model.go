package model

import (
	"time"

	"github.com/google/uuid"
)

// VoterModel mirrors the 'voters' table.
type VoterModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	VoterExternalID  string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	NationalID       string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	Phone            string    `gorm:"type:varchar(20);index;not null"`
	PhoneVerified    bool      `gorm:"not null;default:false"`
	HasVoted         bool      `gorm:"not null;default:false"`
	FaceModelTrained bool      `gorm:"not null;default:false"`
	RegisteredAt     time.Time `gorm:"not null"`
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (VoterModel) TableName() string {
	return "voters"
}
