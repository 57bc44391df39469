package analysis

import (
	"time"

	"github.com/shopspring/decimal"

	"mca-underwriting/internal/models"
)

const monthLabelLayout = "2006-01"

// bucketizeMonthly partitions transactions into one bucket per calendar
// month of the period. Empty months are zero-filled, guaranteeing
// len(buckets) == period.Months so trend and consistency computations run
// over a fixed-length series.
func bucketizeMonthly(sorted []models.Transaction, period Period) []models.MonthlyBucket {
	buckets := make([]models.MonthlyBucket, 0, period.Months)
	index := make(map[string]int, period.Months)

	cursor := time.Date(period.Start.Year(), period.Start.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < period.Months; i++ {
		label := cursor.Format(monthLabelLayout)
		index[label] = i
		buckets = append(buckets, models.MonthlyBucket{
			Month:       label,
			Revenue:     decimal.Zero,
			Expenses:    decimal.Zero,
			NetCashFlow: decimal.Zero,
			McaPayments: decimal.Zero,
		})
		cursor = cursor.AddDate(0, 1, 0)
	}

	// Distinct negative-balance dates per month, so several overdrawn
	// transactions on one day count as a single negative day.
	negativeDates := make(map[string]map[string]bool)

	for i := range sorted {
		txn := &sorted[i]
		label := txn.Date.Format(monthLabelLayout)
		idx, ok := index[label]
		if !ok {
			continue
		}
		bucket := &buckets[idx]

		if txn.IsCredit() {
			bucket.Revenue = bucket.Revenue.Add(txn.Amount)
		} else {
			bucket.Expenses = bucket.Expenses.Add(txn.Amount)
		}

		if isMcaPayment(txn) {
			bucket.McaPayments = bucket.McaPayments.Add(txn.Amount)
		}

		if isNSFEvent(txn) {
			bucket.NSFCount++
		}

		if txn.RunningBalance != nil && txn.RunningBalance.IsNegative() {
			day := txn.Date.Format("2006-01-02")
			if negativeDates[label] == nil {
				negativeDates[label] = make(map[string]bool)
			}
			negativeDates[label][day] = true
		}
	}

	for label, days := range negativeDates {
		buckets[index[label]].NegativeDays = len(days)
	}

	for i := range buckets {
		buckets[i].NetCashFlow = buckets[i].Revenue.Sub(buckets[i].Expenses)
	}

	return buckets
}
