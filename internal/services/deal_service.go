package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"mca-underwriting/internal/dto"
	"mca-underwriting/internal/models"
	"mca-underwriting/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound      = errors.New("resource not found")
	ErrUnauthorized  = errors.New("unauthorized access to deal")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidStatus = errors.New("invalid deal status")
)

type dealService struct {
	dealRepo        repositories.DealRepositoryInterface
	documentRepo    repositories.DocumentRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	userRepo        repositories.UserRepositoryInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

func NewDealService(
	dealRepo repositories.DealRepositoryInterface,
	documentRepo repositories.DocumentRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) DealServiceInterface {
	return &dealService{
		dealRepo:        dealRepo,
		documentRepo:    documentRepo,
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		metrics:         metrics,
		logger:          logger,
	}
}

// CreateDeal opens a new deal owned by the requesting underwriter
func (s *dealService) CreateDeal(underwriterID uuid.UUID, req *dto.CreateDealRequest) (*models.Deal, error) {
	if _, err := s.userRepo.GetByID(underwriterID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to verify underwriter: %w", err)
	}

	amount, err := decimal.NewFromString(req.RequestedAmount)
	if err != nil || amount.IsNegative() {
		return nil, ErrInvalidAmount
	}

	deal := &models.Deal{
		UnderwriterID:   underwriterID,
		MerchantName:    req.MerchantName,
		Industry:        req.Industry,
		RequestedAmount: amount,
		Status:          models.DealStatusNew,
	}

	if err := s.dealRepo.Create(deal); err != nil {
		return nil, fmt.Errorf("failed to create deal: %w", err)
	}

	s.logger.Info("deal created",
		"deal_id", deal.ID,
		"underwriter_id", underwriterID,
		"merchant", deal.MerchantName,
		"requested_amount", amount.String())
	s.metrics.IncrementCounter("deal.created", nil)

	return deal, nil
}

// GetDeal returns a deal the requestor owns, or any deal for admins
func (s *dealService) GetDeal(requestorID, dealID uuid.UUID, isAdmin bool) (*models.Deal, error) {
	return s.getAndAuthorizeDeal(requestorID, dealID, isAdmin)
}

// ListDeals returns the requestor's deals; admins see every deal
func (s *dealService) ListDeals(requestorID uuid.UUID, isAdmin bool, offset, limit int) ([]models.Deal, int64, error) {
	if isAdmin {
		return s.dealRepo.GetAll(offset, limit)
	}
	return s.dealRepo.GetByUnderwriterID(requestorID, offset, limit)
}

// UpdateDealStatus transitions a deal to a new status
func (s *dealService) UpdateDealStatus(requestorID, dealID uuid.UUID, isAdmin bool, status string) error {
	deal, err := s.getAndAuthorizeDeal(requestorID, dealID, isAdmin)
	if err != nil {
		return err
	}

	if err := s.dealRepo.UpdateStatus(deal.ID, status); err != nil {
		if errors.Is(err, models.ErrInvalidDealStatus) {
			return ErrInvalidStatus
		}
		if errors.Is(err, repositories.ErrDealNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update deal status: %w", err)
	}

	s.logger.Info("deal status updated",
		"deal_id", deal.ID,
		"from", deal.Status,
		"to", status)

	return nil
}

// IngestTransactions stores a parsed statement batch against a deal.
// When a document id is supplied, previous rows from that document are
// replaced so a re-parse never double counts.
func (s *dealService) IngestTransactions(requestorID, dealID uuid.UUID, isAdmin bool, req *dto.IngestTransactionsRequest) (int, error) {
	deal, err := s.getAndAuthorizeDeal(requestorID, dealID, isAdmin)
	if err != nil {
		return 0, err
	}

	var documentID *uuid.UUID
	if req.DocumentID != "" {
		parsed, err := uuid.Parse(req.DocumentID)
		if err != nil {
			return 0, fmt.Errorf("invalid document id: %w", err)
		}
		documentID = &parsed

		if _, err := s.documentRepo.GetByID(parsed); err != nil {
			if errors.Is(err, repositories.ErrDocumentNotFound) {
				return 0, ErrNotFound
			}
			return 0, fmt.Errorf("failed to verify document: %w", err)
		}
	}

	transactions := make([]models.Transaction, 0, len(req.Transactions))
	for i, payload := range req.Transactions {
		txn, err := s.buildTransaction(deal.ID, documentID, payload)
		if err != nil {
			return 0, fmt.Errorf("record %d: %w", i, err)
		}
		transactions = append(transactions, *txn)
	}

	if documentID != nil {
		replaced, err := s.transactionRepo.DeleteByDocumentID(*documentID)
		if err != nil {
			return 0, fmt.Errorf("failed to clear previous parse: %w", err)
		}
		if replaced > 0 {
			s.logger.Info("replaced previous document parse",
				"document_id", *documentID,
				"replaced", replaced)
		}
	}

	if err := s.transactionRepo.CreateBatch(transactions); err != nil {
		return 0, fmt.Errorf("failed to store transactions: %w", err)
	}

	if documentID != nil {
		if err := s.documentRepo.UpdateStatus(*documentID, models.DocumentStatusParsed); err != nil {
			s.logger.Warn("failed to mark document parsed",
				"document_id", *documentID,
				"error", err)
		}
	}

	s.logger.Info("transactions ingested",
		"deal_id", deal.ID,
		"count", len(transactions))
	s.metrics.IncrementCounter("transactions.ingested", nil)

	return len(transactions), nil
}

func (s *dealService) buildTransaction(dealID uuid.UUID, documentID *uuid.UUID, payload dto.TransactionPayload) (*models.Transaction, error) {
	date, err := parseStatementDate(payload.Date)
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(payload.Amount)
	if err != nil || amount.IsNegative() {
		return nil, ErrInvalidAmount
	}

	txn := &models.Transaction{
		DealID:          dealID,
		DocumentID:      documentID,
		Date:            date,
		Description:     payload.Description,
		Amount:          amount,
		TransactionType: payload.TransactionType,
		Category:        payload.Category,
		Subcategory:     payload.Subcategory,
		ParseQuality:    payload.ParseQuality,
	}

	if payload.RunningBalance != "" {
		balance, err := decimal.NewFromString(payload.RunningBalance)
		if err != nil {
			return nil, fmt.Errorf("invalid running balance: %w", err)
		}
		txn.RunningBalance = &balance
	}

	return txn, nil
}

func parseStatementDate(value string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

func (s *dealService) getAndAuthorizeDeal(requestorID, dealID uuid.UUID, isAdmin bool) (*models.Deal, error) {
	deal, err := s.dealRepo.GetByID(dealID)
	if err != nil {
		if errors.Is(err, repositories.ErrDealNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get deal: %w", err)
	}

	if deal.UnderwriterID != requestorID && !isAdmin {
		s.logger.Warn("unauthorized deal access attempt",
			"requestor_id", requestorID,
			"deal_id", dealID,
			"owner_id", deal.UnderwriterID)
		return nil, ErrUnauthorized
	}

	return deal, nil
}
