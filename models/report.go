package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportStatus string

const (
	ReportOpen     ReportStatus = "open"
	ReportResolved ReportStatus = "resolved"
)

type ContentType string

const (
	ContentTerm         ContentType = "term"
	ContentContribution ContentType = "contribution"
)

type Report struct {
	ID          uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	ContentType ContentType  `json:"content_type" gorm:"not null"`
	ContentID   uuid.UUID    `json:"content_id" gorm:"type:uuid;not null;index"`
	Reason      string       `json:"reason" gorm:"type:text"`
	ReportedBy  uuid.UUID    `json:"reported_by" gorm:"type:uuid;not null"`
	Status      ReportStatus `json:"status" gorm:"default:'open';index"`
	ResolvedBy  *uuid.UUID   `json:"resolved_by,omitempty" gorm:"type:uuid"`
	ResolvedAt  *time.Time   `json:"resolved_at,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

func (Report) TableName() string {
	return "reports"
}

func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
