package services

import (
	"time"

	"mca-underwriting/internal/dto"
	"mca-underwriting/internal/models"

	"github.com/google/uuid"
)

// AuthServiceInterface defines the contract for authentication operations
type AuthServiceInterface interface {
	Login(req *dto.LoginRequest) (*dto.TokenResponse, error)
	GetProfile(userID uuid.UUID) (*models.User, error)
}

type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}

// DealServiceInterface defines deal lifecycle operations
type DealServiceInterface interface {
	CreateDeal(underwriterID uuid.UUID, req *dto.CreateDealRequest) (*models.Deal, error)
	GetDeal(requestorID, dealID uuid.UUID, isAdmin bool) (*models.Deal, error)
	ListDeals(requestorID uuid.UUID, isAdmin bool, offset, limit int) ([]models.Deal, int64, error)
	UpdateDealStatus(requestorID, dealID uuid.UUID, isAdmin bool, status string) error
	IngestTransactions(requestorID, dealID uuid.UUID, isAdmin bool, req *dto.IngestTransactionsRequest) (int, error)
}

// AnalysisServiceInterface runs the scoring engine over a deal's transactions
type AnalysisServiceInterface interface {
	// AnalyzeDeal loads the deal's transactions, computes metrics and the
	// scorecard, and persists the snapshot. Re-running replaces the snapshot.
	AnalyzeDeal(requestorID, dealID uuid.UUID, isAdmin bool) (*models.AggregatedMetrics, *models.Scorecard, error)

	// GetSnapshot returns the persisted result of the last analysis run
	GetSnapshot(requestorID, dealID uuid.UUID, isAdmin bool) (*models.DealMetrics, error)
}

// ChatContextServiceInterface formats analysis output for the assistant prompt
type ChatContextServiceInterface interface {
	BuildDealContext(deal *models.Deal, snapshot *models.DealMetrics) string
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
