package models

import (
	"math"
	"time"
)

// Risk tiers over the overall score
const (
	RiskTierA = "A"
	RiskTierB = "B"
	RiskTierC = "C"
	RiskTierD = "D"
)

// Funding verdicts. The verdict is the engine's recommendation, distinct
// from the underwriter's final decision.
const (
	VerdictApprove = "APPROVE"
	VerdictCaution = "CAUTION"
	VerdictDecline = "DECLINE"
)

// Red-flag severities
const (
	SeverityHigh   = "HIGH"
	SeverityMedium = "MEDIUM"
)

// Red-flag rule types
const (
	RedFlagNSFVolume      = "NSF_VOLUME"
	RedFlagNegativeDays   = "NEGATIVE_DAYS"
	RedFlagDebtLoad       = "DEBT_LOAD"
	RedFlagRevenueDecline = "REVENUE_DECLINE"
	RedFlagOwnerDraw      = "OWNER_DRAW"
)

// RedFlag is one triggered underwriting rule with the offending value named
// in the description
type RedFlag struct {
	Type        string `json:"type"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

// Section is one scored slice of the scorecard
type Section struct {
	Score     float64 `json:"score"`
	Rating    int     `json:"rating"`
	Narrative string  `json:"narrative"`
}

// RevenueQualitySection pairs the revenue score with its metric group
type RevenueQualitySection struct {
	Section
	Metrics RevenueMetrics `json:"metrics"`
}

// ExpenseQualitySection pairs the expense score with its metric group
type ExpenseQualitySection struct {
	Section
	Metrics ExpenseMetrics `json:"metrics"`
}

// ExistingDebtImpactSection pairs the debt score with its metric group
type ExistingDebtImpactSection struct {
	Section
	Metrics McaMetrics `json:"metrics"`
}

// CashflowChargesSection pairs the risk score with its metric group
type CashflowChargesSection struct {
	Section
	Metrics RiskMetrics `json:"metrics"`
}

// Scorecard is the composed underwriting result for one deal. All four
// sections are always present; a failed section computation fails the whole
// scorecard upstream.
type Scorecard struct {
	PeriodStart        time.Time                 `json:"period_start"`
	PeriodEnd          time.Time                 `json:"period_end"`
	MonthsAnalyzed     int                       `json:"months_analyzed"`
	RevenueQuality     RevenueQualitySection     `json:"revenue_quality"`
	ExpenseQuality     ExpenseQualitySection     `json:"expense_quality"`
	ExistingDebtImpact ExistingDebtImpactSection `json:"existing_debt_impact"`
	CashflowCharges    CashflowChargesSection    `json:"cashflow_charges"`
	RedFlags           []RedFlag                 `json:"red_flags"`
	OverallScore       float64                   `json:"overall_score"`
	OverallRating      int                       `json:"overall_rating"`
	RiskTier           string                    `json:"risk_tier"`
	Verdict            string                    `json:"verdict"`
	Recommendation     string                    `json:"recommendation"`
}

// HighSeverityFlagCount counts HIGH severity red flags
func (sc *Scorecard) HighSeverityFlagCount() int {
	count := 0
	for _, flag := range sc.RedFlags {
		if flag.Severity == SeverityHigh {
			count++
		}
	}
	return count
}

// RatingFromScore maps a 0-100 score to a 1-5 star rating. A score of 0
// still rates 1 star and 100 rates 5.
func RatingFromScore(score float64) int {
	rating := int(math.Ceil(score / 20))
	if rating < 1 {
		return 1
	}
	if rating > 5 {
		return 5
	}
	return rating
}

// TierFromScore maps an overall score to a risk tier. Boundaries are
// inclusive at the lower bound: exactly 80 is tier A.
func TierFromScore(score float64) string {
	switch {
	case score >= 80:
		return RiskTierA
	case score >= 65:
		return RiskTierB
	case score >= 50:
		return RiskTierC
	default:
		return RiskTierD
	}
}
