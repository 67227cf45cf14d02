package models

import (
	"time"

	"github.com/google/uuid"
)

type TokenPurpose string

const (
	PurposePasswordReset     TokenPurpose = "password_reset"
	PurposeEmailVerification TokenPurpose = "email_verification"
)

// AuthToken is a single-use token mailed to the account owner.
type AuthToken struct {
	Token     string       `json:"-" gorm:"primaryKey"`
	ProfileID uuid.UUID    `json:"profile_id" gorm:"type:uuid;not null;index"`
	Purpose   TokenPurpose `json:"purpose" gorm:"not null"`
	ExpiresAt time.Time    `json:"expires_at"`
	CreatedAt time.Time    `json:"created_at"`
}

func (AuthToken) TableName() string {
	return "auth_tokens"
}

// RevokedToken records the jti of a signed-out session token until it would
// have expired anyway.
type RevokedToken struct {
	JTI       string    `gorm:"column:jti;primaryKey"`
	ExpiresAt time.Time `gorm:"index"`
}

func (RevokedToken) TableName() string {
	return "revoked_tokens"
}
