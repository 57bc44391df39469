package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	DealStatusNew       = "new"
	DealStatusInReview  = "in_review"
	DealStatusApproved  = "approved"
	DealStatusDeclined  = "declined"
	DealStatusWithdrawn = "withdrawn"
)

var ErrInvalidDealStatus = errors.New("invalid deal status")

// Deal is one merchant funding application under review
type Deal struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UnderwriterID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"underwriter_id"`
	MerchantName    string          `gorm:"type:varchar(255);not null" json:"merchant_name"`
	Industry        string          `gorm:"type:varchar(100)" json:"industry,omitempty"`
	RequestedAmount decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"requested_amount"`
	Status          string          `gorm:"type:varchar(20);not null;default:'new'" json:"status"`
	CreatedAt       time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Documents    []Document    `gorm:"foreignKey:DealID" json:"-"`
	Transactions []Transaction `gorm:"foreignKey:DealID" json:"-"`
}

// BeforeCreate hook for Deal
func (d *Deal) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.Status == "" {
		d.Status = DealStatusNew
	}
	now := time.Now()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	if d.UpdatedAt.IsZero() {
		d.UpdatedAt = now
	}
	return d.Validate()
}

// BeforeUpdate hook for Deal
func (d *Deal) BeforeUpdate(tx *gorm.DB) error {
	d.UpdatedAt = time.Now()
	return d.Validate()
}

// Validate validates the deal fields
func (d *Deal) Validate() error {
	if d.UnderwriterID == uuid.Nil {
		return errors.New("underwriter ID is required")
	}
	if d.MerchantName == "" {
		return errors.New("merchant name is required")
	}
	if d.RequestedAmount.IsNegative() {
		return errors.New("requested amount must not be negative")
	}
	if !IsValidDealStatus(d.Status) {
		return ErrInvalidDealStatus
	}
	return nil
}

// TableName returns the table name for Deal
func (d *Deal) TableName() string {
	return "deals"
}

// IsValidDealStatus checks if the deal status is valid
func IsValidDealStatus(status string) bool {
	switch status {
	case DealStatusNew, DealStatusInReview, DealStatusApproved, DealStatusDeclined, DealStatusWithdrawn:
		return true
	default:
		return false
	}
}
