package repositories

import (
	"errors"
	"fmt"

	"mca-underwriting/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrDocumentNotFound = errors.New("document not found")

// DocumentRepository handles database operations for statement documents
type DocumentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) DocumentRepositoryInterface {
	return &DocumentRepository{
		db: db,
	}
}

// Create creates a new document record
func (r *DocumentRepository) Create(document *models.Document) error {
	if document == nil {
		return errors.New("document cannot be nil")
	}

	if err := r.db.Create(document).Error; err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	return nil
}

// GetByID retrieves a document by its ID
func (r *DocumentRepository) GetByID(id uuid.UUID) (*models.Document, error) {
	document := &models.Document{ID: id}
	if err := r.db.First(document).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document by ID: %w", err)
	}

	return document, nil
}

// GetByDealID retrieves all documents attached to a deal, oldest first
func (r *DocumentRepository) GetByDealID(dealID uuid.UUID) ([]models.Document, error) {
	var documents []models.Document

	if err := r.db.Where("deal_id = ?", dealID).Order("uploaded_at ASC").Find(&documents).Error; err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	return documents, nil
}

// UpdateStatus transitions a document through the parse lifecycle
func (r *DocumentRepository) UpdateStatus(documentID uuid.UUID, status string) error {
	result := r.db.Model(&models.Document{ID: documentID}).Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update document status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrDocumentNotFound
	}

	return nil
}
