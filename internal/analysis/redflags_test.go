package analysis

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"mca-underwriting/internal/models"
)

type RedFlagsTestSuite struct {
	suite.Suite
	engine *Engine
}

func TestRedFlagsSuite(t *testing.T) {
	suite.Run(t, new(RedFlagsTestSuite))
}

func (s *RedFlagsTestSuite) SetupTest() {
	s.engine = NewEngine(defaultScoringConfig())
}

// cleanMetrics returns a metric set that triggers no rule
func cleanMetrics() *models.AggregatedMetrics {
	return &models.AggregatedMetrics{
		MonthsAnalyzed: 6,
		Revenue: models.RevenueMetrics{
			TotalRevenue: decimal.NewFromInt(60000),
			RevenueTrend: 0.05,
		},
		Expense: models.ExpenseMetrics{
			OwnerWithdrawals: decimal.NewFromInt(1000),
		},
		Mca: models.McaMetrics{
			DebtToRevenueRatio: 0.10,
			StackingStatus:     models.StackingClean,
		},
		Risk: models.RiskMetrics{
			NSFCount:            2,
			NegativeBalanceDays: 3,
		},
		MonthlyData: make([]models.MonthlyBucket, 6),
	}
}

func (s *RedFlagsTestSuite) TestDetectRedFlags_CleanDealRaisesNone() {
	s.Empty(s.engine.DetectRedFlags(cleanMetrics()))
}

func (s *RedFlagsTestSuite) TestDetectRedFlags_RulesAreIndependent() {
	testCases := []struct {
		name             string
		mutate           func(*models.AggregatedMetrics)
		expectedType     string
		expectedSeverity string
	}{
		{
			"nsf volume",
			func(m *models.AggregatedMetrics) { m.Risk.NSFCount = 6 },
			models.RedFlagNSFVolume, models.SeverityHigh,
		},
		{
			"negative days",
			func(m *models.AggregatedMetrics) { m.Risk.NegativeBalanceDays = 11 },
			models.RedFlagNegativeDays, models.SeverityHigh,
		},
		{
			"debt load",
			func(m *models.AggregatedMetrics) { m.Mca.DebtToRevenueRatio = 0.31 },
			models.RedFlagDebtLoad, models.SeverityHigh,
		},
		{
			"revenue decline",
			func(m *models.AggregatedMetrics) { m.Revenue.RevenueTrend = -0.21 },
			models.RedFlagRevenueDecline, models.SeverityMedium,
		},
		{
			"owner draw",
			func(m *models.AggregatedMetrics) { m.Expense.OwnerWithdrawals = decimal.NewFromInt(16000) },
			models.RedFlagOwnerDraw, models.SeverityMedium,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			metrics := cleanMetrics()
			tc.mutate(metrics)

			flags := s.engine.DetectRedFlags(metrics)
			s.Require().Len(flags, 1, "exactly one rule must trigger")
			s.Equal(tc.expectedType, flags[0].Type)
			s.Equal(tc.expectedSeverity, flags[0].Severity)
			s.NotEmpty(flags[0].Description)
		})
	}
}

func (s *RedFlagsTestSuite) TestDetectRedFlags_BoundariesAreExclusive() {
	metrics := cleanMetrics()
	metrics.Risk.NSFCount = 5
	metrics.Risk.NegativeBalanceDays = 10
	metrics.Mca.DebtToRevenueRatio = 0.30
	metrics.Revenue.RevenueTrend = -0.20
	metrics.Expense.OwnerWithdrawals = decimal.NewFromInt(15000) // exactly 25%

	s.Empty(s.engine.DetectRedFlags(metrics))
}

func (s *RedFlagsTestSuite) TestDetectRedFlags_ConfigurableThresholds() {
	cfg := defaultScoringConfig()
	cfg.Thresholds.MaxNSFCount = 1

	strict := NewEngine(cfg)
	metrics := cleanMetrics() // 2 NSF events

	flags := strict.DetectRedFlags(metrics)
	s.Require().Len(flags, 1)
	s.Equal(models.RedFlagNSFVolume, flags[0].Type)
}

func (s *RedFlagsTestSuite) TestDetectRedFlags_DescriptionNamesOffendingValue() {
	metrics := cleanMetrics()
	metrics.Mca.DebtToRevenueRatio = 0.45

	flags := s.engine.DetectRedFlags(metrics)
	s.Require().Len(flags, 1)
	s.Contains(flags[0].Description, "0.45")
	s.Contains(flags[0].Description, "0.30")
}
