package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stacking severity over concurrent MCA obligations
const (
	StackingClean   = "clean"   // at most one active advance
	StackingStacked = "stacked" // 2-3 concurrent advances
	StackingHeavy   = "heavy"   // 4 or more concurrent advances
)

// MonthlyBucket aggregates one calendar month of the analysis period.
// Months without transactions still appear with zero values so the monthly
// series has no gaps.
type MonthlyBucket struct {
	Month        string          `json:"month"`
	Revenue      decimal.Decimal `json:"revenue"`
	Expenses     decimal.Decimal `json:"expenses"`
	NetCashFlow  decimal.Decimal `json:"net_cash_flow"`
	McaPayments  decimal.Decimal `json:"mca_payments"`
	NSFCount     int             `json:"nsf_count"`
	NegativeDays int             `json:"negative_days"`
}

// RevenueMetrics summarizes the inflow side of the statement period
type RevenueMetrics struct {
	TotalRevenue          decimal.Decimal            `json:"total_revenue"`
	AverageMonthlyRevenue decimal.Decimal            `json:"average_monthly_revenue"`
	RevenueTrend          float64                    `json:"revenue_trend"`
	RevenueConsistency    float64                    `json:"revenue_consistency"`
	RevenueByMonth        map[string]decimal.Decimal `json:"revenue_by_month"`
	RevenueByCategory     map[string]decimal.Decimal `json:"revenue_by_category"`
}

// ExpenseMetrics summarizes the outflow side of the statement period
type ExpenseMetrics struct {
	TotalExpenses         decimal.Decimal            `json:"total_expenses"`
	ExpenseToRevenueRatio float64                    `json:"expense_to_revenue_ratio"`
	OwnerWithdrawals      decimal.Decimal            `json:"owner_withdrawals"`
	ExpensesByCategory    map[string]decimal.Decimal `json:"expenses_by_category"`
}

// McaPayment describes the repayment pattern of one inferred funder
type McaPayment struct {
	Lender         string          `json:"lender"`
	TotalPaid      decimal.Decimal `json:"total_paid"`
	PaymentCount   int             `json:"payment_count"`
	AveragePayment decimal.Decimal `json:"average_payment"`
	FrequencyDays  int             `json:"frequency_days"`
	EstimatedDaily decimal.Decimal `json:"estimated_daily"`
}

// McaMetrics summarizes existing merchant-cash-advance obligations inferred
// from repayment patterns
type McaMetrics struct {
	ActiveMcaCount     int             `json:"active_mca_count"`
	DailyMcaObligation decimal.Decimal `json:"daily_mca_obligation"`
	DebtToRevenueRatio float64         `json:"debt_to_revenue_ratio"`
	StackingStatus     string          `json:"stacking_status"`
	McaPayments        []McaPayment    `json:"mca_payments"`
}

// RiskMetrics summarizes balance-stress signals for the period
type RiskMetrics struct {
	NSFCount            int              `json:"nsf_count"`
	NegativeBalanceDays int              `json:"negative_balance_days"`
	LowestBalance       *decimal.Decimal `json:"lowest_balance,omitempty"`
	RedFlagCount        int              `json:"red_flag_count"`
	RedFlags            []string         `json:"red_flags"`
}

// AggregatedMetrics is the full metric set computed from a deal's
// transactions. It is plain serializable data: report rendering, CSV export,
// the chat-context assembler, and the persistence snapshot all consume it
// as-is.
type AggregatedMetrics struct {
	PeriodStart    time.Time       `json:"period_start"`
	PeriodEnd      time.Time       `json:"period_end"`
	MonthsAnalyzed int             `json:"months_analyzed"`
	Revenue        RevenueMetrics  `json:"revenue"`
	Expense        ExpenseMetrics  `json:"expense"`
	Mca            McaMetrics      `json:"mca"`
	Risk           RiskMetrics     `json:"risk"`
	MonthlyData    []MonthlyBucket `json:"monthly_data"`
}
