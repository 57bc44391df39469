package analysis

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"mca-underwriting/internal/config"
	"mca-underwriting/internal/models"
)

// defaultScoringConfig mirrors the production defaults: equal weights and
// the documented red-flag thresholds.
func defaultScoringConfig() config.ScoringConfig {
	return config.ScoringConfig{
		Weights: config.ScoringWeights{Revenue: 0.25, Expense: 0.25, Debt: 0.25, Risk: 0.25},
		Thresholds: config.RedFlagThresholds{
			MaxNSFCount:       5,
			MaxNegativeDays:   10,
			MaxDebtToRevenue:  0.30,
			MinRevenueTrend:   -0.20,
			MaxOwnerDrawRatio: 0.25,
		},
	}
}

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func credit(day string, amount float64, category, description string) models.Transaction {
	return buildTxn(day, amount, models.TransactionTypeCredit, category, description)
}

func debit(day string, amount float64, category, description string) models.Transaction {
	return buildTxn(day, amount, models.TransactionTypeDebit, category, description)
}

func buildTxn(day string, amount float64, txnType, category, description string) models.Transaction {
	return models.Transaction{
		ID:              uuid.New(),
		DealID:          uuid.New(),
		Date:            date(day),
		Description:     description,
		Amount:          decimal.NewFromFloat(amount),
		TransactionType: txnType,
		Category:        category,
		ParseQuality:    models.ParseQualityHigh,
	}
}

func withBalance(txn models.Transaction, balance float64) models.Transaction {
	value := decimal.NewFromFloat(balance)
	txn.RunningBalance = &value
	return txn
}

func withParseQuality(txn models.Transaction, quality string) models.Transaction {
	txn.ParseQuality = quality
	return txn
}

// steadyBusiness builds the healthy reference merchant: monthsCount months
// of level revenue with modest rent and payroll, no MCA or NSF activity.
func steadyBusiness(monthsCount int, monthlyRevenue float64) []models.Transaction {
	transactions := make([]models.Transaction, 0, monthsCount*3)
	start := date("2025-01-05")

	for i := 0; i < monthsCount; i++ {
		month := start.AddDate(0, i, 0)
		day := month.Format("2006-01-02")
		transactions = append(transactions,
			credit(day, monthlyRevenue, models.CategorySalesRevenue, "Card settlement batch"),
			debit(day, monthlyRevenue*0.20, models.CategoryRent, "Monthly rent"),
			debit(day, monthlyRevenue*0.25, models.CategoryPayroll, "Payroll run"),
		)
	}

	return transactions
}
