package repositories

import (
	"errors"
	"fmt"

	"mca-underwriting/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrMetricsNotFound = errors.New("deal metrics not found")

// DealMetricsRepository handles database operations for analysis snapshots
type DealMetricsRepository struct {
	db *gorm.DB
}

// NewDealMetricsRepository creates a new deal metrics repository
func NewDealMetricsRepository(db *gorm.DB) DealMetricsRepositoryInterface {
	return &DealMetricsRepository{
		db: db,
	}
}

// Upsert stores the analysis snapshot for a deal, replacing any previous run.
// One snapshot per deal; re-running the analysis overwrites it.
func (r *DealMetricsRepository) Upsert(snapshot *models.DealMetrics) error {
	if snapshot == nil {
		return errors.New("snapshot cannot be nil")
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "deal_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"metrics", "scorecard", "overall_score", "risk_tier", "verdict", "computed_at",
		}),
	}).Create(snapshot).Error
	if err != nil {
		return fmt.Errorf("failed to upsert deal metrics: %w", err)
	}

	return nil
}

// GetByDealID retrieves the latest analysis snapshot for a deal
func (r *DealMetricsRepository) GetByDealID(dealID uuid.UUID) (*models.DealMetrics, error) {
	var snapshot models.DealMetrics

	if err := r.db.Where("deal_id = ?", dealID).First(&snapshot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMetricsNotFound
		}
		return nil, fmt.Errorf("failed to get deal metrics: %w", err)
	}

	return &snapshot, nil
}

// ListByVerdict retrieves snapshots filtered by verdict for dashboard queues
func (r *DealMetricsRepository) ListByVerdict(verdict string, offset, limit int) ([]models.DealMetrics, int64, error) {
	var snapshots []models.DealMetrics
	var total int64

	query := r.db.Model(&models.DealMetrics{}).Where("verdict = ?", verdict)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count deal metrics: %w", err)
	}

	if err := query.Order("computed_at DESC").Offset(offset).Limit(limit).Find(&snapshots).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list deal metrics: %w", err)
	}

	return snapshots, total, nil
}
