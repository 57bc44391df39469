package analysis

import (
	"fmt"

	"mca-underwriting/internal/models"
)

// DetectRedFlags evaluates the fixed rule set against the aggregated
// metrics. Every rule is evaluated independently; a deal can trigger any
// subset. Thresholds come from the engine's injected configuration.
func (e *Engine) DetectRedFlags(m *models.AggregatedMetrics) []models.RedFlag {
	t := e.thresholds
	flags := make([]models.RedFlag, 0, 5)

	if m.Risk.NSFCount > t.MaxNSFCount {
		flags = append(flags, models.RedFlag{
			Type:     models.RedFlagNSFVolume,
			Severity: models.SeverityHigh,
			Description: fmt.Sprintf("%d NSF events in the period exceeds the limit of %d",
				m.Risk.NSFCount, t.MaxNSFCount),
		})
	}

	if m.Risk.NegativeBalanceDays > t.MaxNegativeDays {
		flags = append(flags, models.RedFlag{
			Type:     models.RedFlagNegativeDays,
			Severity: models.SeverityHigh,
			Description: fmt.Sprintf("%d negative-balance days exceeds the limit of %d",
				m.Risk.NegativeBalanceDays, t.MaxNegativeDays),
		})
	}

	if m.Mca.DebtToRevenueRatio > t.MaxDebtToRevenue {
		flags = append(flags, models.RedFlag{
			Type:     models.RedFlagDebtLoad,
			Severity: models.SeverityHigh,
			Description: fmt.Sprintf("debt-to-revenue ratio of %.2f exceeds the limit of %.2f",
				m.Mca.DebtToRevenueRatio, t.MaxDebtToRevenue),
		})
	}

	if m.Revenue.RevenueTrend < t.MinRevenueTrend {
		flags = append(flags, models.RedFlag{
			Type:     models.RedFlagRevenueDecline,
			Severity: models.SeverityMedium,
			Description: fmt.Sprintf("revenue trend of %.1f%% is below the limit of %.1f%%",
				m.Revenue.RevenueTrend*100, t.MinRevenueTrend*100),
		})
	}

	drawRatio := safeRatio(m.Expense.OwnerWithdrawals, m.Revenue.TotalRevenue)
	if drawRatio > t.MaxOwnerDrawRatio {
		flags = append(flags, models.RedFlag{
			Type:     models.RedFlagOwnerDraw,
			Severity: models.SeverityMedium,
			Description: fmt.Sprintf("owner withdrawals are %.1f%% of revenue, above the limit of %.1f%%",
				drawRatio*100, t.MaxOwnerDrawRatio*100),
		})
	}

	return flags
}
