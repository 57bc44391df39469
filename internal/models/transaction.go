package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeCredit = "credit"
	TransactionTypeDebit  = "debit"

	ParseQualityHigh       = "high"
	ParseQualityMedium     = "medium"
	ParseQualityLow        = "low"
	ParseQualityUnassigned = "unassigned"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount must not be negative")
	ErrMissingDate            = errors.New("transaction date is required")
)

// Transaction is one extracted bank-statement line for a deal. Records are
// produced by the upstream document pipeline and are immutable once stored:
// Amount is a signed magnitude (always >= 0) with directionality carried by
// TransactionType, RunningBalance is the post-transaction balance when the
// statement exposes it, and ParseQuality tags the upstream categorization
// confidence for display only.
type Transaction struct {
	ID              uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	DealID          uuid.UUID        `gorm:"type:uuid;not null;index" json:"deal_id"`
	DocumentID      *uuid.UUID       `gorm:"type:uuid;index" json:"document_id,omitempty"`
	Date            time.Time        `gorm:"not null;index" json:"date"`
	Description     string           `gorm:"type:text;not null" json:"description"`
	Amount          decimal.Decimal  `gorm:"type:decimal(15,2);not null" json:"amount"`
	TransactionType string           `gorm:"type:varchar(10);not null" json:"transaction_type"`
	RunningBalance  *decimal.Decimal `gorm:"type:decimal(15,2)" json:"running_balance,omitempty"`
	Category        string           `gorm:"type:varchar(50)" json:"category,omitempty"`
	Subcategory     string           `gorm:"type:varchar(100)" json:"subcategory,omitempty"`
	ParseQuality    string           `gorm:"type:varchar(20)" json:"parse_quality,omitempty"`
	CreatedAt       time.Time        `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	return t.Validate()
}

// Validate rejects malformed records at the storage and engine boundary.
// Records are never silently coerced: a negative amount, missing date, or
// unknown type fails the record outright.
func (t *Transaction) Validate() error {
	if t.DealID == uuid.Nil {
		return errors.New("deal ID is required")
	}
	if t.Date.IsZero() {
		return ErrMissingDate
	}
	if !IsValidTransactionType(t.TransactionType) {
		return ErrInvalidTransactionType
	}
	if t.Amount.IsNegative() {
		return ErrInvalidAmount
	}
	if t.Description == "" {
		return errors.New("transaction description is required")
	}
	if t.ParseQuality != "" && !IsValidParseQuality(t.ParseQuality) {
		return errors.New("invalid parse quality")
	}
	return nil
}

// IsCredit returns true for inflow transactions
func (t *Transaction) IsCredit() bool {
	return t.TransactionType == TransactionTypeCredit
}

// IsDebit returns true for outflow transactions
func (t *Transaction) IsDebit() bool {
	return t.TransactionType == TransactionTypeDebit
}

// HasConfidentCategory reports whether the upstream categorization can be
// trusted outright. Unassigned or missing categories fall back to
// description matching during aggregation.
func (t *Transaction) HasConfidentCategory() bool {
	return t.Category != "" && t.ParseQuality != ParseQualityUnassigned
}

// SignedAmount returns the amount with the sign implied by the type
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.IsDebit() {
		return t.Amount.Neg()
	}
	return t.Amount
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeCredit, TransactionTypeDebit:
		return true
	default:
		return false
	}
}

// IsValidParseQuality checks if the parse quality tag is valid
func IsValidParseQuality(quality string) bool {
	switch quality {
	case ParseQualityHigh, ParseQualityMedium, ParseQualityLow, ParseQualityUnassigned:
		return true
	default:
		return false
	}
}
