package repositories

import (
	"mca-underwriting/internal/models"

	"github.com/google/uuid"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	UpdateLastLogin(userID uuid.UUID) error
}

// DealRepositoryInterface defines the contract for deal repository operations
type DealRepositoryInterface interface {
	Create(deal *models.Deal) error
	GetByID(id uuid.UUID) (*models.Deal, error)
	GetByUnderwriterID(underwriterID uuid.UUID, offset, limit int) ([]models.Deal, int64, error)
	GetAll(offset, limit int) ([]models.Deal, int64, error)
	Update(deal *models.Deal) error
	UpdateStatus(dealID uuid.UUID, status string) error
}

// DocumentRepositoryInterface defines the contract for document repository operations
type DocumentRepositoryInterface interface {
	Create(document *models.Document) error
	GetByID(id uuid.UUID) (*models.Document, error)
	GetByDealID(dealID uuid.UUID) ([]models.Document, error)
	UpdateStatus(documentID uuid.UUID, status string) error
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	CreateBatch(transactions []models.Transaction) error
	GetByDealID(dealID uuid.UUID) ([]models.Transaction, error)
	GetByDealIDPaged(dealID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error)
	CountByDealID(dealID uuid.UUID) (int64, error)
	DeleteByDocumentID(documentID uuid.UUID) (int64, error)
}

// DealMetricsRepositoryInterface defines the contract for analysis snapshot operations
type DealMetricsRepositoryInterface interface {
	Upsert(snapshot *models.DealMetrics) error
	GetByDealID(dealID uuid.UUID) (*models.DealMetrics, error)
	ListByVerdict(verdict string, offset, limit int) ([]models.DealMetrics, int64, error)
}
