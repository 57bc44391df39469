package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DocumentStatusUploaded = "uploaded"
	DocumentStatusParsing  = "parsing"
	DocumentStatusParsed   = "parsed"
	DocumentStatusFailed   = "failed"
)

// Document is an uploaded bank-statement file. Extraction happens in the
// external ingestion pipeline; this record only tracks the file and its
// parse status.
type Document struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	DealID      uuid.UUID `gorm:"type:uuid;not null;index" json:"deal_id"`
	FileName    string    `gorm:"type:varchar(255);not null" json:"file_name"`
	ContentType string    `gorm:"type:varchar(100)" json:"content_type,omitempty"`
	SizeBytes   int64     `gorm:"not null;default:0" json:"size_bytes"`
	Status      string    `gorm:"type:varchar(20);not null;default:'uploaded'" json:"status"`
	StatementMonth string `gorm:"type:varchar(7)" json:"statement_month,omitempty"`
	UploadedAt  time.Time `gorm:"not null" json:"uploaded_at"`
	ParsedAt    *time.Time `json:"parsed_at,omitempty"`
}

// BeforeCreate hook for Document
func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.Status == "" {
		d.Status = DocumentStatusUploaded
	}
	if d.UploadedAt.IsZero() {
		d.UploadedAt = time.Now()
	}
	return d.Validate()
}

// Validate validates the document fields
func (d *Document) Validate() error {
	if d.DealID == uuid.Nil {
		return errors.New("deal ID is required")
	}
	if d.FileName == "" {
		return errors.New("file name is required")
	}
	switch d.Status {
	case DocumentStatusUploaded, DocumentStatusParsing, DocumentStatusParsed, DocumentStatusFailed:
	default:
		return errors.New("invalid document status")
	}
	return nil
}

// TableName returns the table name for Document
func (d *Document) TableName() string {
	return "documents"
}
