package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MetricsDocument stores an AggregatedMetrics value as a jsonb column
type MetricsDocument AggregatedMetrics

// Value implements driver.Valuer for jsonb storage
func (m MetricsDocument) Value() (driver.Value, error) {
	return json.Marshal(m)
}

// Scan implements sql.Scanner for jsonb storage
func (m *MetricsDocument) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			bytes = []byte(s)
		} else {
			return errors.New("unsupported type for MetricsDocument")
		}
	}
	return json.Unmarshal(bytes, m)
}

// ScorecardDocument stores a Scorecard value as a jsonb column
type ScorecardDocument Scorecard

// Value implements driver.Valuer for jsonb storage
func (s ScorecardDocument) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements sql.Scanner for jsonb storage
func (s *ScorecardDocument) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		if str, ok := value.(string); ok {
			bytes = []byte(str)
		} else {
			return errors.New("unsupported type for ScorecardDocument")
		}
	}
	return json.Unmarshal(bytes, s)
}

// DealMetrics is the persisted snapshot of one analysis run. The engine
// output is stored verbatim; the indexed columns exist only for dashboard
// list queries.
type DealMetrics struct {
	ID           uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	DealID       uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex" json:"deal_id"`
	Metrics      MetricsDocument   `gorm:"type:jsonb;not null" json:"metrics"`
	Scorecard    ScorecardDocument `gorm:"type:jsonb;not null" json:"scorecard"`
	OverallScore float64           `gorm:"not null" json:"overall_score"`
	RiskTier     string            `gorm:"type:varchar(1);not null;index" json:"risk_tier"`
	Verdict      string            `gorm:"type:varchar(10);not null;index" json:"verdict"`
	ComputedAt   time.Time         `gorm:"not null" json:"computed_at"`
}

// BeforeCreate hook for DealMetrics
func (m *DealMetrics) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.ComputedAt.IsZero() {
		m.ComputedAt = time.Now()
	}
	if m.DealID == uuid.Nil {
		return errors.New("deal ID is required")
	}
	return nil
}

// TableName returns the table name for DealMetrics
func (m *DealMetrics) TableName() string {
	return "deal_metrics"
}
