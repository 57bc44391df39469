package dto

import (
	"mca-underwriting/internal/models"

	"github.com/google/uuid"
)

// Deal Request DTOs

// CreateDealRequest represents the request payload for opening a new deal
type CreateDealRequest struct {
	MerchantName    string `json:"merchant_name" validate:"required,min=1,max=255"`
	Industry        string `json:"industry" validate:"omitempty,max=100"`
	RequestedAmount string `json:"requested_amount" validate:"required"`
}

// UpdateDealStatusRequest represents the request payload for a status transition
type UpdateDealStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new in_review approved declined withdrawn"`
}

// IngestTransactionsRequest represents a batch of normalized transactions
// delivered by the upstream statement parser
type IngestTransactionsRequest struct {
	DocumentID   string               `json:"document_id" validate:"omitempty,uuid"`
	Transactions []TransactionPayload `json:"transactions" validate:"required,min=1,dive"`
}

// TransactionPayload is one parsed statement line
type TransactionPayload struct {
	Date            string `json:"date" validate:"required"`
	Description     string `json:"description" validate:"required,max=500"`
	Amount          string `json:"amount" validate:"required"`
	TransactionType string `json:"transaction_type" validate:"required,oneof=credit debit"`
	RunningBalance  string `json:"running_balance" validate:"omitempty"`
	Category        string `json:"category" validate:"omitempty,max=50"`
	Subcategory     string `json:"subcategory" validate:"omitempty,max=50"`
	ParseQuality    string `json:"parse_quality" validate:"omitempty,oneof=high medium low unassigned"`
}

// Deal Response DTOs

// CreateDealResponse represents the response after opening a deal
type CreateDealResponse struct {
	Deal    *models.Deal `json:"deal"`
	Message string       `json:"message"`
}

// DealResponse represents a single deal in API responses
type DealResponse struct {
	*models.Deal
}

// DealListResponse represents a paginated list of deals
type DealListResponse struct {
	Deals  []models.Deal `json:"deals"`
	Total  int64         `json:"total"`
	Offset int           `json:"offset"`
	Limit  int           `json:"limit"`
}

// IngestTransactionsResponse reports how many records were stored
type IngestTransactionsResponse struct {
	Stored  int    `json:"stored"`
	Message string `json:"message"`
}

// AnalysisResponse carries the engine output for one deal
type AnalysisResponse struct {
	DealID    uuid.UUID                 `json:"deal_id"`
	Metrics   *models.AggregatedMetrics `json:"metrics"`
	Scorecard *models.Scorecard         `json:"scorecard"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
