package services

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"mca-underwriting/internal/analysis"
	"mca-underwriting/internal/config"
	"mca-underwriting/internal/models"
	"mca-underwriting/internal/repositories"
	"mca-underwriting/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AnalysisServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockDealRepo        *repository_mocks.MockDealRepositoryInterface
	mockTransactionRepo *repository_mocks.MockTransactionRepositoryInterface
	mockMetricsRepo     *repository_mocks.MockDealMetricsRepositoryInterface
	service             AnalysisServiceInterface

	ownerID uuid.UUID
	deal    *models.Deal
}

func (s *AnalysisServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockDealRepo = repository_mocks.NewMockDealRepositoryInterface(s.ctrl)
	s.mockTransactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.mockMetricsRepo = repository_mocks.NewMockDealMetricsRepositoryInterface(s.ctrl)

	engine := analysis.NewEngine(config.ScoringConfig{
		Weights: config.ScoringWeights{Revenue: 0.25, Expense: 0.25, Debt: 0.25, Risk: 0.25},
		Thresholds: config.RedFlagThresholds{
			MaxNSFCount:       5,
			MaxNegativeDays:   10,
			MaxDebtToRevenue:  0.30,
			MinRevenueTrend:   -0.20,
			MaxOwnerDrawRatio: 0.25,
		},
	})

	s.service = NewAnalysisService(
		engine,
		s.mockDealRepo,
		s.mockTransactionRepo,
		s.mockMetricsRepo,
		noopMetrics{},
		slog.Default(),
	)

	s.ownerID = uuid.New()
	s.deal = &models.Deal{
		ID:            uuid.New(),
		UnderwriterID: s.ownerID,
		MerchantName:  "Blue Harbor Seafood LLC",
		Status:        models.DealStatusInReview,
	}
}

func (s *AnalysisServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAnalysisServiceSuite(t *testing.T) {
	suite.Run(t, new(AnalysisServiceTestSuite))
}

// noopMetrics satisfies MetricsRecorderInterface without touching the
// process-global prometheus registry.
type noopMetrics struct{}

func (noopMetrics) IncrementCounter(string, map[string]string)     {}
func (noopMetrics) RecordProcessingTime(string, time.Duration)     {}
func (noopMetrics) RecordGauge(string, float64, map[string]string) {}

func (s *AnalysisServiceTestSuite) healthyTransactions() []models.Transaction {
	transactions := make([]models.Transaction, 0, 12)
	for month := 0; month < 6; month++ {
		date := time.Date(2025, time.January+time.Month(month), 5, 0, 0, 0, 0, time.UTC)
		transactions = append(transactions,
			models.Transaction{
				ID:              uuid.New(),
				DealID:          s.deal.ID,
				Date:            date,
				Description:     "CARD SETTLEMENT",
				Amount:          decimal.NewFromInt(10000),
				TransactionType: models.TransactionTypeCredit,
				Category:        models.CategoryCardSettlement,
			},
			models.Transaction{
				ID:              uuid.New(),
				DealID:          s.deal.ID,
				Date:            date.AddDate(0, 0, 3),
				Description:     "RENT PAYMENT",
				Amount:          decimal.NewFromInt(2500),
				TransactionType: models.TransactionTypeDebit,
				Category:        models.CategoryRent,
			},
		)
	}
	return transactions
}

func (s *AnalysisServiceTestSuite) TestAnalyzeDeal_Success() {
	s.mockDealRepo.EXPECT().GetByID(s.deal.ID).Return(s.deal, nil)
	s.mockTransactionRepo.EXPECT().GetByDealID(s.deal.ID).Return(s.healthyTransactions(), nil)

	var saved *models.DealMetrics
	s.mockMetricsRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(snapshot *models.DealMetrics) error {
		saved = snapshot
		return nil
	})

	metrics, scorecard, err := s.service.AnalyzeDeal(s.ownerID, s.deal.ID, false)
	s.NoError(err)
	s.Require().NotNil(metrics)
	s.Require().NotNil(scorecard)

	s.Equal(6, metrics.MonthsAnalyzed)
	s.Equal(models.VerdictApprove, scorecard.Verdict)

	s.Require().NotNil(saved)
	s.Equal(s.deal.ID, saved.DealID)
	s.Equal(scorecard.RiskTier, saved.RiskTier)
	s.Equal(scorecard.Verdict, saved.Verdict)
	s.InDelta(scorecard.OverallScore, saved.OverallScore, 0.0001)
}

func (s *AnalysisServiceTestSuite) TestAnalyzeDeal_NoTransactions() {
	s.mockDealRepo.EXPECT().GetByID(s.deal.ID).Return(s.deal, nil)
	s.mockTransactionRepo.EXPECT().GetByDealID(s.deal.ID).Return([]models.Transaction{}, nil)

	_, _, err := s.service.AnalyzeDeal(s.ownerID, s.deal.ID, false)
	s.ErrorIs(err, ErrNoTransactions)
}

func (s *AnalysisServiceTestSuite) TestAnalyzeDeal_InvalidRecord() {
	bad := s.healthyTransactions()
	bad[0].Amount = decimal.NewFromInt(-50)

	s.mockDealRepo.EXPECT().GetByID(s.deal.ID).Return(s.deal, nil)
	s.mockTransactionRepo.EXPECT().GetByDealID(s.deal.ID).Return(bad, nil)

	_, _, err := s.service.AnalyzeDeal(s.ownerID, s.deal.ID, false)
	s.ErrorIs(err, ErrUnscorableTransaction)
}

func (s *AnalysisServiceTestSuite) TestAnalyzeDeal_DealNotFound() {
	dealID := uuid.New()
	s.mockDealRepo.EXPECT().GetByID(dealID).Return(nil, repositories.ErrDealNotFound)

	_, _, err := s.service.AnalyzeDeal(s.ownerID, dealID, false)
	s.ErrorIs(err, ErrNotFound)
}

func (s *AnalysisServiceTestSuite) TestAnalyzeDeal_UnauthorizedRequestor() {
	stranger := uuid.New()
	s.mockDealRepo.EXPECT().GetByID(s.deal.ID).Return(s.deal, nil)

	_, _, err := s.service.AnalyzeDeal(stranger, s.deal.ID, false)
	s.ErrorIs(err, ErrUnauthorized)
}

func (s *AnalysisServiceTestSuite) TestAnalyzeDeal_AdminBypassesOwnership() {
	admin := uuid.New()
	s.mockDealRepo.EXPECT().GetByID(s.deal.ID).Return(s.deal, nil)
	s.mockTransactionRepo.EXPECT().GetByDealID(s.deal.ID).Return(s.healthyTransactions(), nil)
	s.mockMetricsRepo.EXPECT().Upsert(gomock.Any()).Return(nil)

	_, scorecard, err := s.service.AnalyzeDeal(admin, s.deal.ID, true)
	s.NoError(err)
	s.NotNil(scorecard)
}

func (s *AnalysisServiceTestSuite) TestAnalyzeDeal_PersistFailure() {
	s.mockDealRepo.EXPECT().GetByID(s.deal.ID).Return(s.deal, nil)
	s.mockTransactionRepo.EXPECT().GetByDealID(s.deal.ID).Return(s.healthyTransactions(), nil)
	s.mockMetricsRepo.EXPECT().Upsert(gomock.Any()).Return(errors.New("connection reset"))

	_, _, err := s.service.AnalyzeDeal(s.ownerID, s.deal.ID, false)
	s.Error(err)
	s.Contains(err.Error(), "failed to persist snapshot")
}

func (s *AnalysisServiceTestSuite) TestGetSnapshot_Success() {
	snapshot := &models.DealMetrics{
		ID:           uuid.New(),
		DealID:       s.deal.ID,
		OverallScore: 91.25,
		RiskTier:     models.RiskTierA,
		Verdict:      models.VerdictApprove,
	}

	s.mockDealRepo.EXPECT().GetByID(s.deal.ID).Return(s.deal, nil)
	s.mockMetricsRepo.EXPECT().GetByDealID(s.deal.ID).Return(snapshot, nil)

	found, err := s.service.GetSnapshot(s.ownerID, s.deal.ID, false)
	s.NoError(err)
	s.Equal(snapshot.ID, found.ID)
}

func (s *AnalysisServiceTestSuite) TestGetSnapshot_NotComputed() {
	s.mockDealRepo.EXPECT().GetByID(s.deal.ID).Return(s.deal, nil)
	s.mockMetricsRepo.EXPECT().GetByDealID(s.deal.ID).Return(nil, repositories.ErrMetricsNotFound)

	_, err := s.service.GetSnapshot(s.ownerID, s.deal.ID, false)
	s.ErrorIs(err, ErrAnalysisNotComputed)
}
