package model

import (
	"time"

	"github.com/google/uuid"
)

// OneTimeCodeModel mirrors the 'one_time_codes' table. Lookups go by phone, newest first.
type OneTimeCodeModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	VoterID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Phone      string    `gorm:"type:varchar(20);not null;index:idx_otp_phone_used_created,priority:1"`
	CodeDigest string    `gorm:"type:varchar(255);not null"`
	Purpose    string    `gorm:"type:varchar(20);not null"`
	ExpiresAt  time.Time `gorm:"not null"`
	Used       bool      `gorm:"not null;default:false;index:idx_otp_phone_used_created,priority:2"`
	CreatedAt  time.Time `gorm:"index:idx_otp_phone_used_created,priority:3,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (OneTimeCodeModel) TableName() string {
	return "one_time_codes"
}

// AuthSessionModel mirrors the 'auth_sessions' table.
type AuthSessionModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	VoterID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Step1Completed bool      `gorm:"not null;default:false"`
	Step2Completed bool      `gorm:"not null;default:false"`
	Step3Completed bool      `gorm:"not null;default:false"`
	TokenHash      string    `gorm:"type:varchar(64);unique;not null"`
	ExpiresAt      time.Time `gorm:"not null"`
	ClosedAt       *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuthSessionModel) TableName() string {
	return "auth_sessions"
}
