package analysis

import (
	"fmt"

	"mca-underwriting/internal/models"
)

// sectionScores holds the four 0-100 section scores
type sectionScores struct {
	revenue float64
	expense float64
	debt    float64
	risk    float64
}

// scoreSections maps each metric group to its section score. A nil metric
// set or an empty monthly series means a section cannot be computed, which
// fails the whole scorecard.
func (e *Engine) scoreSections(m *models.AggregatedMetrics) (sectionScores, error) {
	if m == nil || m.MonthsAnalyzed == 0 || len(m.MonthlyData) == 0 {
		return sectionScores{}, fmt.Errorf("%w: monthly series is missing", ErrIncompleteMetrics)
	}

	return sectionScores{
		revenue: scoreRevenue(m.Revenue),
		expense: scoreExpense(m.Expense, m.Revenue),
		debt:    scoreDebt(m.Mca),
		risk:    scoreRisk(m.Risk),
	}, nil
}

// scoreRevenue splits 100 points between trend (50) and consistency (50).
// A flat trend is the neutral 40-point band; growth earns the remainder and
// decline burns it down.
func scoreRevenue(m models.RevenueMetrics) float64 {
	var trendComponent float64
	switch trend := m.RevenueTrend; {
	case trend >= 0.15:
		trendComponent = 50
	case trend >= 0.05:
		trendComponent = 45
	case trend >= 0:
		trendComponent = 40
	case trend >= -0.10:
		trendComponent = 30
	case trend >= -0.20:
		trendComponent = 20
	case trend >= -0.35:
		trendComponent = 10
	default:
		trendComponent = 0
	}

	consistencyComponent := m.RevenueConsistency * 50

	return trendComponent + consistencyComponent
}

// scoreExpense splits 100 points between the expense-to-revenue ratio (70)
// and owner withdrawals relative to revenue (30).
func scoreExpense(m models.ExpenseMetrics, revenue models.RevenueMetrics) float64 {
	var ratioComponent float64
	switch ratio := m.ExpenseToRevenueRatio; {
	case ratio <= 0.50:
		ratioComponent = 70
	case ratio <= 0.70:
		ratioComponent = 60
	case ratio <= 0.85:
		ratioComponent = 45
	case ratio <= 0.95:
		ratioComponent = 30
	case ratio <= 1.0:
		ratioComponent = 15
	default:
		ratioComponent = 0
	}

	drawRatio := safeRatio(m.OwnerWithdrawals, revenue.TotalRevenue)
	var drawComponent float64
	switch {
	case drawRatio <= 0.05:
		drawComponent = 30
	case drawRatio <= 0.10:
		drawComponent = 25
	case drawRatio <= 0.15:
		drawComponent = 20
	case drawRatio <= 0.25:
		drawComponent = 10
	default:
		drawComponent = 0
	}

	return ratioComponent + drawComponent
}

// scoreDebt splits 100 points between the debt-to-revenue ratio (60) and
// stacking severity (40).
func scoreDebt(m models.McaMetrics) float64 {
	var ratioComponent float64
	switch ratio := m.DebtToRevenueRatio; {
	case ratio == 0:
		ratioComponent = 60
	case ratio <= 0.10:
		ratioComponent = 50
	case ratio <= 0.20:
		ratioComponent = 40
	case ratio <= 0.30:
		ratioComponent = 25
	case ratio <= 0.50:
		ratioComponent = 10
	default:
		ratioComponent = 0
	}

	var stackingComponent float64
	switch m.StackingStatus {
	case models.StackingClean:
		stackingComponent = 40
	case models.StackingStacked:
		stackingComponent = 20
	default:
		stackingComponent = 0
	}

	return ratioComponent + stackingComponent
}

// scoreRisk splits 100 points between NSF volume (50) and negative-balance
// days (50). A statement without running balances reports zero negative
// days, which is the neutral best case for that component.
func scoreRisk(m models.RiskMetrics) float64 {
	var nsfComponent float64
	switch {
	case m.NSFCount == 0:
		nsfComponent = 50
	case m.NSFCount <= 2:
		nsfComponent = 40
	case m.NSFCount <= 5:
		nsfComponent = 25
	case m.NSFCount <= 10:
		nsfComponent = 10
	default:
		nsfComponent = 0
	}

	var negativeDaysComponent float64
	switch {
	case m.NegativeBalanceDays == 0:
		negativeDaysComponent = 50
	case m.NegativeBalanceDays <= 3:
		negativeDaysComponent = 40
	case m.NegativeBalanceDays <= 10:
		negativeDaysComponent = 25
	case m.NegativeBalanceDays <= 20:
		negativeDaysComponent = 10
	default:
		negativeDaysComponent = 0
	}

	return nsfComponent + negativeDaysComponent
}
