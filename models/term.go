package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TermStatus string

const (
	TermPublished TermStatus = "published"
	TermPending   TermStatus = "pending"
	TermRejected  TermStatus = "rejected"
)

func (s TermStatus) Valid() bool {
	return s == TermPublished || s == TermPending || s == TermRejected
}

type Term struct {
	ID             uuid.UUID                   `json:"id" gorm:"type:uuid;primaryKey"`
	Title          string                      `json:"title" gorm:"not null"`
	Slug           string                      `json:"slug" gorm:"index;not null"`
	Icon           string                      `json:"icon"`
	Category       string                      `json:"category"`
	Definition     string                      `json:"definition" gorm:"type:text"`
	Origin         string                      `json:"origin" gorm:"type:text"`
	Examples       datatypes.JSONSlice[string] `json:"examples"`
	RelatedTerms   datatypes.JSONSlice[string] `json:"related_terms"`
	PopularityData datatypes.JSONSlice[int]    `json:"popularity_data"`
	Status         TermStatus                  `json:"status" gorm:"default:'published';index"`
	SubmittedBy    *uuid.UUID                  `json:"submitted_by,omitempty" gorm:"type:uuid"`
	CreatedAt      time.Time                   `json:"created_at"`
	UpdatedAt      time.Time                   `json:"updated_at"`
	DeletedAt      gorm.DeletedAt              `json:"-" gorm:"index"`
}

func (Term) TableName() string {
	return "terms"
}

func (t *Term) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

func (t *Term) BeforeSave(tx *gorm.DB) error {
	t.Slug = Slugify(t.Title)
	return nil
}

// Slugify turns a title into the path segment used by the term detail route:
// lower case, surrounding space trimmed, inner whitespace runs collapsed to '-'.
func Slugify(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), "-")
}
