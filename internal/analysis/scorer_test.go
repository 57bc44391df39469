package analysis

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"mca-underwriting/internal/models"
)

type ScorerTestSuite struct {
	suite.Suite
	engine *Engine
}

func TestScorerSuite(t *testing.T) {
	suite.Run(t, new(ScorerTestSuite))
}

func (s *ScorerTestSuite) SetupTest() {
	s.engine = NewEngine(defaultScoringConfig())
}

func (s *ScorerTestSuite) TestRatingFromScore() {
	testCases := []struct {
		score    float64
		expected int
	}{
		{0, 1},
		{1, 1},
		{20, 1},
		{20.1, 2},
		{40, 2},
		{59, 3},
		{60, 3},
		{80, 4},
		{81, 5},
		{100, 5},
	}

	for _, tc := range testCases {
		s.Equal(tc.expected, models.RatingFromScore(tc.score), "score %.1f", tc.score)
	}
}

func (s *ScorerTestSuite) TestScoreSections_MissingMonthlySeries() {
	_, err := s.engine.scoreSections(nil)
	s.ErrorIs(err, ErrIncompleteMetrics)

	_, err = s.engine.scoreSections(&models.AggregatedMetrics{MonthsAnalyzed: 3})
	s.ErrorIs(err, ErrIncompleteMetrics)
}

func (s *ScorerTestSuite) TestScoreRevenue() {
	testCases := []struct {
		name        string
		trend       float64
		consistency float64
		expected    float64
	}{
		{"strong growth, perfectly steady", 0.20, 1.0, 100},
		{"flat and steady", 0, 1.0, 90},
		{"mild decline", -0.08, 0.8, 70},
		{"steep decline, volatile", -0.50, 0.2, 10},
		{"zero-revenue neutral defaults", 0, 0, 40},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			score := scoreRevenue(models.RevenueMetrics{
				RevenueTrend:       tc.trend,
				RevenueConsistency: tc.consistency,
			})
			s.InDelta(tc.expected, score, 0.0001)
		})
	}
}

func (s *ScorerTestSuite) TestScoreDebt() {
	clean := scoreDebt(models.McaMetrics{DebtToRevenueRatio: 0, StackingStatus: models.StackingClean})
	s.InDelta(100, clean, 0.0001)

	stacked := scoreDebt(models.McaMetrics{DebtToRevenueRatio: 0.25, StackingStatus: models.StackingStacked})
	s.InDelta(45, stacked, 0.0001)

	heavy := scoreDebt(models.McaMetrics{DebtToRevenueRatio: 0.60, StackingStatus: models.StackingHeavy})
	s.InDelta(0, heavy, 0.0001)
}

func (s *ScorerTestSuite) TestScoreRisk() {
	pristine := scoreRisk(models.RiskMetrics{NSFCount: 0, NegativeBalanceDays: 0})
	s.InDelta(100, pristine, 0.0001)

	stressed := scoreRisk(models.RiskMetrics{NSFCount: 4, NegativeBalanceDays: 8})
	s.InDelta(50, stressed, 0.0001)

	severe := scoreRisk(models.RiskMetrics{NSFCount: 15, NegativeBalanceDays: 30})
	s.InDelta(0, severe, 0.0001)
}
