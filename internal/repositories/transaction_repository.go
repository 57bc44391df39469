package repositories

import (
	"errors"
	"fmt"

	"mca-underwriting/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionRepository handles database operations for normalized transactions
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &TransactionRepository{
		db: db,
	}
}

// CreateBatch inserts a set of transactions in a single database transaction
func (r *TransactionRepository) CreateBatch(transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return errors.New("transactions cannot be empty")
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.CreateInBatches(transactions, 500).Error; err != nil {
			return fmt.Errorf("failed to create transactions: %w", err)
		}
		return nil
	})
}

// GetByDealID retrieves every transaction for a deal ordered by date
func (r *TransactionRepository) GetByDealID(dealID uuid.UUID) ([]models.Transaction, error) {
	var transactions []models.Transaction

	if err := r.db.Where("deal_id = ?", dealID).
		Order("date ASC, created_at ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions by deal ID: %w", err)
	}

	return transactions, nil
}

// GetByDealIDPaged retrieves a page of a deal's transactions ordered by date
func (r *TransactionRepository) GetByDealIDPaged(dealID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	query := r.db.Model(&models.Transaction{}).Where("deal_id = ?", dealID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	if err := query.Order("date ASC, created_at ASC").Offset(offset).Limit(limit).Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}

	return transactions, total, nil
}

// CountByDealID counts the transactions attached to a deal
func (r *TransactionRepository) CountByDealID(dealID uuid.UUID) (int64, error) {
	var count int64

	if err := r.db.Model(&models.Transaction{}).Where("deal_id = ?", dealID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	return count, nil
}

// DeleteByDocumentID removes all transactions extracted from one document,
// used when a statement is re-parsed
func (r *TransactionRepository) DeleteByDocumentID(documentID uuid.UUID) (int64, error) {
	result := r.db.Where("document_id = ?", documentID).Delete(&models.Transaction{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete transactions: %w", result.Error)
	}

	return result.RowsAffected, nil
}
