package analysis

import (
	"fmt"
	"sort"
	"time"

	"mca-underwriting/internal/models"
)

// Period is the resolved analysis window: min/max transaction date and the
// inclusive calendar-month span.
type Period struct {
	Start  time.Time
	End    time.Time
	Months int
}

// Normalize validates the raw transaction set, resolves the analysis
// period, and returns a copy sorted ascending by date. The sort is stable,
// so same-day transactions keep their original input order. The input slice
// itself is never reordered.
func Normalize(transactions []models.Transaction) ([]models.Transaction, Period, error) {
	if len(transactions) == 0 {
		return nil, Period{}, ErrEmptyInput
	}

	for i := range transactions {
		if err := validateForAnalysis(&transactions[i]); err != nil {
			return nil, Period{}, fmt.Errorf("%w: record %d (%s): %v", ErrInvalidTransaction, i, transactions[i].ID, err)
		}
	}

	sorted := make([]models.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	start := sorted[0].Date
	end := sorted[len(sorted)-1].Date

	return sorted, Period{
		Start:  start,
		End:    end,
		Months: monthSpan(start, end),
	}, nil
}

// validateForAnalysis checks the fields the engine actually computes over.
// Storage-level concerns (deal linkage, description length) stay with the
// model's own Validate.
func validateForAnalysis(t *models.Transaction) error {
	if t.Date.IsZero() {
		return models.ErrMissingDate
	}
	if !models.IsValidTransactionType(t.TransactionType) {
		return models.ErrInvalidTransactionType
	}
	if t.Amount.IsNegative() {
		return models.ErrInvalidAmount
	}
	return nil
}

// monthSpan returns the inclusive calendar-month span between two dates,
// minimum 1.
func monthSpan(start, end time.Time) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month()) + 1
	if months < 1 {
		return 1
	}
	return months
}
