package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChangeType string

const (
	ChangeCreation ChangeType = "creation"
	ChangeUpdate   ChangeType = "update"
)

// TermVersion is an append-only snapshot of a term taken every time it is
// created or edited.
type TermVersion struct {
	ID            uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	TermID        uuid.UUID  `json:"term_id" gorm:"type:uuid;not null;index"`
	VersionNumber int        `json:"version_number" gorm:"not null"`
	ChangeType    ChangeType `json:"change_type"`
	Title         string     `json:"title" gorm:"not null"`
	Status        TermStatus `json:"status"`
	Category      string     `json:"category"`
	Definition    string     `json:"definition" gorm:"type:text"`
	ChangedBy     *uuid.UUID `json:"changed_by,omitempty" gorm:"type:uuid"`
	CreatedAt     time.Time  `json:"created_at"`
}

func (TermVersion) TableName() string {
	return "term_versions"
}

func (v *TermVersion) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

func NewTermVersion(term *Term, number int, change ChangeType, changedBy *uuid.UUID) *TermVersion {
	return &TermVersion{
		TermID:        term.ID,
		VersionNumber: number,
		ChangeType:    change,
		Title:         term.Title,
		Status:        term.Status,
		Category:      term.Category,
		Definition:    term.Definition,
		ChangedBy:     changedBy,
	}
}
