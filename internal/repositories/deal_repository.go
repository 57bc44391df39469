package repositories

import (
	"errors"
	"fmt"

	"mca-underwriting/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrDealNotFound = errors.New("deal not found")

// DealRepository handles database operations for deals
type DealRepository struct {
	db *gorm.DB
}

// NewDealRepository creates a new deal repository
func NewDealRepository(db *gorm.DB) DealRepositoryInterface {
	return &DealRepository{
		db: db,
	}
}

// Create creates a new deal in the database
func (r *DealRepository) Create(deal *models.Deal) error {
	if deal == nil {
		return errors.New("deal cannot be nil")
	}

	if err := r.db.Create(deal).Error; err != nil {
		return fmt.Errorf("failed to create deal: %w", err)
	}

	return nil
}

// GetByID retrieves a deal by its ID
func (r *DealRepository) GetByID(id uuid.UUID) (*models.Deal, error) {
	deal := &models.Deal{ID: id}
	if err := r.db.First(deal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDealNotFound
		}
		return nil, fmt.Errorf("failed to get deal by ID: %w", err)
	}

	return deal, nil
}

// GetByUnderwriterID retrieves deals owned by an underwriter, newest first
func (r *DealRepository) GetByUnderwriterID(underwriterID uuid.UUID, offset, limit int) ([]models.Deal, int64, error) {
	var deals []models.Deal
	var total int64

	query := r.db.Model(&models.Deal{}).Where("underwriter_id = ?", underwriterID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count deals: %w", err)
	}

	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&deals).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list deals: %w", err)
	}

	return deals, total, nil
}

// GetAll retrieves all deals with pagination, newest first
func (r *DealRepository) GetAll(offset, limit int) ([]models.Deal, int64, error) {
	var deals []models.Deal
	var total int64

	if err := r.db.Model(&models.Deal{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count deals: %w", err)
	}

	if err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&deals).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list deals: %w", err)
	}

	return deals, total, nil
}

// Update updates a deal in the database
func (r *DealRepository) Update(deal *models.Deal) error {
	if deal == nil {
		return errors.New("deal cannot be nil")
	}

	if err := r.db.Save(deal).Error; err != nil {
		return fmt.Errorf("failed to update deal: %w", err)
	}

	return nil
}

// UpdateStatus transitions a deal to a new status
func (r *DealRepository) UpdateStatus(dealID uuid.UUID, status string) error {
	if !models.IsValidDealStatus(status) {
		return models.ErrInvalidDealStatus
	}

	result := r.db.Model(&models.Deal{ID: dealID}).Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update deal status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrDealNotFound
	}

	return nil
}
