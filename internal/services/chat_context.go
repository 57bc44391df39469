package services

import (
	"fmt"
	"strings"

	"mca-underwriting/internal/models"
)

type chatContextService struct{}

// NewChatContextService creates the formatter that turns analysis output
// into the assistant's prompt context
func NewChatContextService() ChatContextServiceInterface {
	return &chatContextService{}
}

// BuildDealContext renders a deal's latest analysis as plain text for the
// assistant prompt. Numbers are pre-formatted so the assistant never does
// arithmetic on raw values.
func (s *chatContextService) BuildDealContext(deal *models.Deal, snapshot *models.DealMetrics) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Deal: %s", deal.MerchantName)
	if deal.Industry != "" {
		fmt.Fprintf(&b, " (%s)", deal.Industry)
	}
	fmt.Fprintf(&b, "\nRequested amount: $%s\n", deal.RequestedAmount.StringFixed(2))
	fmt.Fprintf(&b, "Deal status: %s\n", deal.Status)

	if snapshot == nil {
		b.WriteString("\nNo analysis has been run for this deal yet. Bank statement data must be ingested and analyzed before underwriting metrics are available.\n")
		return b.String()
	}

	m := snapshot.Metrics
	sc := snapshot.Scorecard

	fmt.Fprintf(&b, "\nAnalysis period: %s to %s (%d months)\n",
		m.PeriodStart.Format("2006-01-02"), m.PeriodEnd.Format("2006-01-02"), m.MonthsAnalyzed)
	fmt.Fprintf(&b, "Overall score: %.1f/100, rating %d/5, risk tier %s, verdict %s\n",
		sc.OverallScore, sc.OverallRating, sc.RiskTier, sc.Verdict)
	fmt.Fprintf(&b, "Recommendation: %s\n", sc.Recommendation)

	b.WriteString("\nSection scores:\n")
	fmt.Fprintf(&b, "- Revenue quality: %.1f (rating %d). %s\n",
		sc.RevenueQuality.Score, sc.RevenueQuality.Rating, sc.RevenueQuality.Narrative)
	fmt.Fprintf(&b, "- Expense quality: %.1f (rating %d). %s\n",
		sc.ExpenseQuality.Score, sc.ExpenseQuality.Rating, sc.ExpenseQuality.Narrative)
	fmt.Fprintf(&b, "- Existing debt impact: %.1f (rating %d). %s\n",
		sc.ExistingDebtImpact.Score, sc.ExistingDebtImpact.Rating, sc.ExistingDebtImpact.Narrative)
	fmt.Fprintf(&b, "- Cashflow charges: %.1f (rating %d). %s\n",
		sc.CashflowCharges.Score, sc.CashflowCharges.Rating, sc.CashflowCharges.Narrative)

	b.WriteString("\nKey metrics:\n")
	fmt.Fprintf(&b, "- Total revenue: $%s, monthly average $%s\n",
		m.Revenue.TotalRevenue.StringFixed(2), m.Revenue.AverageMonthlyRevenue.StringFixed(2))
	fmt.Fprintf(&b, "- Revenue trend: %+.1f%%, consistency %.2f\n",
		m.Revenue.RevenueTrend*100, m.Revenue.RevenueConsistency)
	fmt.Fprintf(&b, "- Total expenses: $%s (%.0f%% of revenue), owner withdrawals $%s\n",
		m.Expense.TotalExpenses.StringFixed(2), m.Expense.ExpenseToRevenueRatio*100,
		m.Expense.OwnerWithdrawals.StringFixed(2))
	fmt.Fprintf(&b, "- Existing MCA positions: %d (%s), daily obligation $%s, debt-to-revenue %.0f%%\n",
		m.Mca.ActiveMcaCount, m.Mca.StackingStatus, m.Mca.DailyMcaObligation.StringFixed(2),
		m.Mca.DebtToRevenueRatio*100)
	fmt.Fprintf(&b, "- NSF events: %d, negative balance days: %d\n",
		m.Risk.NSFCount, m.Risk.NegativeBalanceDays)
	if m.Risk.LowestBalance != nil {
		fmt.Fprintf(&b, "- Lowest observed balance: $%s\n", m.Risk.LowestBalance.StringFixed(2))
	}

	if len(sc.RedFlags) > 0 {
		b.WriteString("\nRed flags:\n")
		for _, flag := range sc.RedFlags {
			fmt.Fprintf(&b, "- [%s] %s\n", flag.Severity, flag.Description)
		}
	} else {
		b.WriteString("\nNo red flags were raised for this deal.\n")
	}

	if len(m.Mca.McaPayments) > 0 {
		b.WriteString("\nInferred MCA repayment patterns:\n")
		for _, p := range m.Mca.McaPayments {
			fmt.Fprintf(&b, "- %s: %d payments totaling $%s, every %d day(s), est. $%s/day\n",
				p.Lender, p.PaymentCount, p.TotalPaid.StringFixed(2), p.FrequencyDays,
				p.EstimatedDaily.StringFixed(2))
		}
	}

	return b.String()
}
