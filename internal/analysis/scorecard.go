package analysis

import (
	"fmt"

	"mca-underwriting/internal/models"
)

// ComposeScorecard combines the section scores into the overall score, risk
// tier, and funding verdict, and assembles the final scorecard. The overall
// score is the weighted average of the four sections with the engine's
// configured weight vector.
func (e *Engine) ComposeScorecard(m *models.AggregatedMetrics) (*models.Scorecard, error) {
	scores, err := e.scoreSections(m)
	if err != nil {
		return nil, err
	}

	flags := e.DetectRedFlags(m)

	overall := scores.revenue*e.weights.Revenue +
		scores.expense*e.weights.Expense +
		scores.debt*e.weights.Debt +
		scores.risk*e.weights.Risk

	tier := models.TierFromScore(overall)
	verdict := verdictFor(tier, flags)

	scorecard := &models.Scorecard{
		PeriodStart:    m.PeriodStart,
		PeriodEnd:      m.PeriodEnd,
		MonthsAnalyzed: m.MonthsAnalyzed,
		RevenueQuality: models.RevenueQualitySection{
			Section: models.Section{
				Score:     scores.revenue,
				Rating:    models.RatingFromScore(scores.revenue),
				Narrative: revenueNarrative(m.Revenue),
			},
			Metrics: m.Revenue,
		},
		ExpenseQuality: models.ExpenseQualitySection{
			Section: models.Section{
				Score:     scores.expense,
				Rating:    models.RatingFromScore(scores.expense),
				Narrative: expenseNarrative(m.Expense),
			},
			Metrics: m.Expense,
		},
		ExistingDebtImpact: models.ExistingDebtImpactSection{
			Section: models.Section{
				Score:     scores.debt,
				Rating:    models.RatingFromScore(scores.debt),
				Narrative: debtNarrative(m.Mca),
			},
			Metrics: m.Mca,
		},
		CashflowCharges: models.CashflowChargesSection{
			Section: models.Section{
				Score:     scores.risk,
				Rating:    models.RatingFromScore(scores.risk),
				Narrative: riskNarrative(m.Risk),
			},
			Metrics: m.Risk,
		},
		RedFlags:       flags,
		OverallScore:   overall,
		OverallRating:  models.RatingFromScore(overall),
		RiskTier:       tier,
		Verdict:        verdict,
		Recommendation: recommendation(tier, verdict, flags),
	}

	return scorecard, nil
}

// verdictFor maps tier and red flags to the funding verdict. APPROVE needs
// tier A or B with no HIGH flag; tier D or two HIGH flags is a DECLINE;
// everything else is CAUTION.
func verdictFor(tier string, flags []models.RedFlag) string {
	highCount := 0
	for _, flag := range flags {
		if flag.Severity == models.SeverityHigh {
			highCount++
		}
	}

	if tier == models.RiskTierD || highCount >= 2 {
		return models.VerdictDecline
	}
	if (tier == models.RiskTierA || tier == models.RiskTierB) && highCount == 0 {
		return models.VerdictApprove
	}
	return models.VerdictCaution
}

// recommendation builds the one-sentence summary citing tier, verdict, and
// the top contributing red flag. HIGH flags outrank MEDIUM; ties keep rule
// evaluation order.
func recommendation(tier, verdict string, flags []models.RedFlag) string {
	base := fmt.Sprintf("Risk tier %s, recommendation %s.", tier, verdict)

	top := topFlag(flags)
	if top == nil {
		return base + " No red flags were raised for this period."
	}
	return fmt.Sprintf("%s Primary concern: %s.", base, top.Description)
}

func topFlag(flags []models.RedFlag) *models.RedFlag {
	for i := range flags {
		if flags[i].Severity == models.SeverityHigh {
			return &flags[i]
		}
	}
	if len(flags) > 0 {
		return &flags[0]
	}
	return nil
}

func revenueNarrative(m models.RevenueMetrics) string {
	return fmt.Sprintf("Average monthly revenue of $%s with a %.1f%% trend and %.0f%% consistency.",
		m.AverageMonthlyRevenue.StringFixed(2), m.RevenueTrend*100, m.RevenueConsistency*100)
}

func expenseNarrative(m models.ExpenseMetrics) string {
	return fmt.Sprintf("Expenses run at %.0f%% of revenue with $%s in owner withdrawals.",
		m.ExpenseToRevenueRatio*100, m.OwnerWithdrawals.StringFixed(2))
}

func debtNarrative(m models.McaMetrics) string {
	return fmt.Sprintf("%d active advance(s), %s position, estimated daily obligation of $%s.",
		m.ActiveMcaCount, m.StackingStatus, m.DailyMcaObligation.StringFixed(2))
}

func riskNarrative(m models.RiskMetrics) string {
	return fmt.Sprintf("%d NSF event(s) and %d negative-balance day(s) in the period.",
		m.NSFCount, m.NegativeBalanceDays)
}
