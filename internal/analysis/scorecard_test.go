package analysis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"mca-underwriting/internal/config"
	"mca-underwriting/internal/models"
)

type ScorecardTestSuite struct {
	suite.Suite
	engine *Engine
}

func TestScorecardSuite(t *testing.T) {
	suite.Run(t, new(ScorecardTestSuite))
}

func (s *ScorecardTestSuite) SetupTest() {
	s.engine = NewEngine(defaultScoringConfig())
}

func (s *ScorecardTestSuite) TestTierFromScore_Boundaries() {
	testCases := []struct {
		score    float64
		expected string
	}{
		{100, models.RiskTierA},
		{80.0, models.RiskTierA},
		{79.999, models.RiskTierB},
		{65.0, models.RiskTierB},
		{64.999, models.RiskTierC},
		{50.0, models.RiskTierC},
		{49.999, models.RiskTierD},
		{0, models.RiskTierD},
	}

	for _, tc := range testCases {
		s.Equal(tc.expected, models.TierFromScore(tc.score), "score %.3f", tc.score)
	}
}

func (s *ScorecardTestSuite) TestOverallScore_IsWeightedCombination() {
	transactions := steadyBusiness(6, 10000)
	transactions = append(transactions,
		debit("2025-02-10", 199, models.CategoryMcaPayment, "FORWARD FUNDING ACH 00021"),
		debit("2025-02-17", 199, models.CategoryMcaPayment, "FORWARD FUNDING ACH 00022"),
	)

	metrics, err := s.engine.ComputeMetrics(transactions)
	s.Require().NoError(err)

	// Reweighing one section to 100% reduces the overall score to
	// exactly that section's score.
	for name, weights := range map[string]config.ScoringWeights{
		"revenue": {Revenue: 1},
		"expense": {Expense: 1},
		"debt":    {Debt: 1},
		"risk":    {Risk: 1},
	} {
		s.Run(name, func() {
			engine := NewEngine(config.ScoringConfig{
				Weights:    weights,
				Thresholds: defaultScoringConfig().Thresholds,
			})

			scorecard, err := engine.ComposeScorecard(metrics)
			s.Require().NoError(err)

			var sectionScore float64
			switch name {
			case "revenue":
				sectionScore = scorecard.RevenueQuality.Score
			case "expense":
				sectionScore = scorecard.ExpenseQuality.Score
			case "debt":
				sectionScore = scorecard.ExistingDebtImpact.Score
			case "risk":
				sectionScore = scorecard.CashflowCharges.Score
			}
			s.InDelta(sectionScore, scorecard.OverallScore, 0.0001)
		})
	}
}

func (s *ScorecardTestSuite) TestComposeScorecard_IncompleteMetricsFailWhole() {
	_, err := s.engine.ComposeScorecard(&models.AggregatedMetrics{MonthsAnalyzed: 2})
	s.ErrorIs(err, ErrIncompleteMetrics)
}

// Six months of steady revenue with no debt or NSF activity is the
// reference healthy merchant: tier A, APPROVE, no flags.
func (s *ScorecardTestSuite) TestScenario_HealthySteadyMerchant() {
	metrics, scorecard, err := s.engine.Analyze(steadyBusiness(6, 10000))
	s.Require().NoError(err)

	s.Equal(models.StackingClean, metrics.Mca.StackingStatus)
	s.Equal(models.RiskTierA, scorecard.RiskTier)
	s.Equal(models.VerdictApprove, scorecard.Verdict)
	s.Empty(scorecard.RedFlags)
	s.Equal(6, scorecard.MonthsAnalyzed)
	s.Equal(scorecard.MonthsAnalyzed, len(metrics.MonthlyData))
	s.Contains(scorecard.Recommendation, "APPROVE")
	s.Contains(scorecard.Recommendation, "No red flags")
}

// Heavy NSF activity plus a 45% debt load must raise both HIGH flags and
// force a DECLINE regardless of tier.
func (s *ScorecardTestSuite) TestScenario_StressedMerchantDeclines() {
	transactions := steadyBusiness(4, 6000)
	for i := 0; i < 7; i++ {
		day := date("2025-02-03").AddDate(0, 0, i*3).Format("2006-01-02")
		transactions = append(transactions, debit(day, 35, models.CategoryNSFFee, "NSF RETURN FEE"))
	}
	// 4 months * 6000 = 24000 base revenue (+140*... fees are debits);
	// 10,800 of MCA debits puts the debt ratio at 0.45.
	for i := 0; i < 27; i++ {
		day := date("2025-01-06").AddDate(0, 0, i*4).Format("2006-01-02")
		transactions = append(transactions, debit(day, 400, models.CategoryMcaPayment, "EVEREST ADVANCE DAILY 0099"))
	}

	metrics, scorecard, err := s.engine.Analyze(transactions)
	s.Require().NoError(err)

	s.InDelta(0.45, metrics.Mca.DebtToRevenueRatio, 0.0001)

	flagTypes := make(map[string]string)
	for _, flag := range scorecard.RedFlags {
		flagTypes[flag.Type] = flag.Severity
	}
	s.Equal(models.SeverityHigh, flagTypes[models.RedFlagNSFVolume])
	s.Equal(models.SeverityHigh, flagTypes[models.RedFlagDebtLoad])
	s.Equal(models.VerdictDecline, scorecard.Verdict)
}

// Two full pipeline runs over the same transaction set must produce
// byte-identical output; the engine carries no clock and no hidden state.
func (s *ScorecardTestSuite) TestAnalyze_Deterministic() {
	transactions := steadyBusiness(6, 10000)
	transactions = append(transactions,
		debit("2025-04-08", 250, models.CategoryMcaPayment, "FORWARD FUNDING ACH 00019"),
	)

	firstMetrics, firstCard, err := s.engine.Analyze(transactions)
	s.Require().NoError(err)
	secondMetrics, secondCard, err := s.engine.Analyze(transactions)
	s.Require().NoError(err)

	firstMetricsJSON, err := json.Marshal(firstMetrics)
	s.Require().NoError(err)
	secondMetricsJSON, err := json.Marshal(secondMetrics)
	s.Require().NoError(err)
	s.Equal(firstMetricsJSON, secondMetricsJSON)

	firstCardJSON, err := json.Marshal(firstCard)
	s.Require().NoError(err)
	secondCardJSON, err := json.Marshal(secondCard)
	s.Require().NoError(err)
	s.Equal(firstCardJSON, secondCardJSON)
}

func (s *ScorecardTestSuite) TestVerdictFor() {
	high := models.RedFlag{Severity: models.SeverityHigh}
	medium := models.RedFlag{Severity: models.SeverityMedium}

	testCases := []struct {
		name     string
		tier     string
		flags    []models.RedFlag
		expected string
	}{
		{"tier A clean", models.RiskTierA, nil, models.VerdictApprove},
		{"tier B clean", models.RiskTierB, nil, models.VerdictApprove},
		{"tier B medium flag", models.RiskTierB, []models.RedFlag{medium}, models.VerdictApprove},
		{"tier A one high flag", models.RiskTierA, []models.RedFlag{high}, models.VerdictCaution},
		{"tier C clean", models.RiskTierC, nil, models.VerdictCaution},
		{"tier D", models.RiskTierD, nil, models.VerdictDecline},
		{"two high flags", models.RiskTierA, []models.RedFlag{high, high}, models.VerdictDecline},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, verdictFor(tc.tier, tc.flags))
		})
	}
}

func (s *ScorecardTestSuite) TestRecommendation_CitesTopFlag() {
	metrics, err := s.engine.ComputeMetrics(steadyBusiness(6, 10000))
	s.Require().NoError(err)
	metrics.Risk.NSFCount = 9
	metrics.Revenue.RevenueTrend = -0.30

	scorecard, err := s.engine.ComposeScorecard(metrics)
	s.Require().NoError(err)

	// The HIGH flag outranks the MEDIUM decline flag
	s.Contains(scorecard.Recommendation, "NSF events")
}
