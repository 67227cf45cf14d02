package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ContributionStatus string

const (
	ContributionPending  ContributionStatus = "pending"
	ContributionApproved ContributionStatus = "approved"
	ContributionRejected ContributionStatus = "rejected"
)

// Terminal reports whether no moderation transition leaves this status.
func (s ContributionStatus) Terminal() bool {
	return s == ContributionApproved || s == ContributionRejected
}

const DefaultIcon = "📝"

var Categories = []string{
	"Slang", "Meme", "Trend", "Gaming", "Social Media", "Music", "Fashion", "Other",
}

func IsCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// Contribution is a user-submitted candidate entry awaiting moderation.
type Contribution struct {
	ID             uuid.UUID                   `json:"id" gorm:"type:uuid;primaryKey"`
	Title          string                      `json:"title" gorm:"not null"`
	Icon           string                      `json:"icon"`
	Category       string                      `json:"category" gorm:"not null"`
	Definition     string                      `json:"definition" gorm:"type:text;not null"`
	Origin         string                      `json:"origin" gorm:"type:text"`
	Examples       datatypes.JSONSlice[string] `json:"examples"`
	RelatedTerms   datatypes.JSONSlice[string] `json:"related_terms"`
	SubmittedBy    uuid.UUID                   `json:"submitted_by" gorm:"type:uuid;not null;index"`
	SubmittedAt    time.Time                   `json:"submitted_at" gorm:"index"`
	Status         ContributionStatus          `json:"status" gorm:"default:'pending';index"`
	ModeratorNotes string                      `json:"moderator_notes,omitempty"`
	ModeratedBy    *uuid.UUID                  `json:"moderated_by,omitempty" gorm:"type:uuid"`
	ModeratedAt    *time.Time                  `json:"moderated_at,omitempty"`
	TermID         *uuid.UUID                  `json:"term_id,omitempty" gorm:"type:uuid"`
}

func (Contribution) TableName() string {
	return "contributions"
}

func (c *Contribution) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.SubmittedAt.IsZero() {
		c.SubmittedAt = time.Now()
	}
	return nil
}
