package analysis

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"mca-underwriting/internal/models"
)

// Description keywords for the MCA fallback. The fallback only applies when
// the upstream category is missing or unassigned; it never overrides a
// confident non-MCA category.
var mcaKeywords = []string{
	"mca",
	"merchant cash",
	"cash advance",
	"advance funding",
	"daily ach debit",
	"capital funding",
	"rcvbl purch",
}

// NSF keywords apply regardless of category confidence: a returned-item fee
// described in the memo line is a balance-stress signal even when the
// categorizer tagged it elsewhere.
var nsfKeywords = []string{
	"nsf",
	"overdraft",
	"insufficient",
	"returned item",
}

// trailingRefPattern strips trailing transaction ids and dates from a
// repayment description so recurring debits from one funder normalize to a
// single grouping key.
var trailingRefPattern = regexp.MustCompile(`(?:[\s#:*-]+[\d/]+)+$`)

// categoryAggregates is the intermediate per-category view of one
// transaction set.
type categoryAggregates struct {
	totalRevenue       decimal.Decimal
	totalExpenses      decimal.Decimal
	ownerWithdrawals   decimal.Decimal
	revenueByCategory  map[string]decimal.Decimal
	expensesByCategory map[string]decimal.Decimal
	nsfCount           int
	negativeDays       int
	lowestBalance      *decimal.Decimal
	// lenders clusters MCA repayment debits by normalized description.
	// Clustering is exact equality on the normalized key; near-duplicate
	// funder names may over- or under-count distinct lenders. No fuzzy
	// threshold is defined upstream, so none is applied here.
	lenders map[string][]models.Transaction
}

// aggregate sums the transaction set by category and side, classifies MCA
// and NSF activity, and clusters MCA repayments by lender. Credits with
// labels outside the inflow vocabulary land in other_income, debits in
// other_expense; nothing is dropped.
func aggregate(sorted []models.Transaction) categoryAggregates {
	agg := categoryAggregates{
		totalRevenue:       decimal.Zero,
		totalExpenses:      decimal.Zero,
		ownerWithdrawals:   decimal.Zero,
		revenueByCategory:  make(map[string]decimal.Decimal),
		expensesByCategory: make(map[string]decimal.Decimal),
		lenders:            make(map[string][]models.Transaction),
	}

	negativeDates := make(map[string]bool)

	for i := range sorted {
		txn := &sorted[i]

		if txn.IsCredit() {
			key := models.NormalizeInflowCategory(txn.Category)
			agg.revenueByCategory[key] = agg.revenueByCategory[key].Add(txn.Amount)
			agg.totalRevenue = agg.totalRevenue.Add(txn.Amount)
		} else {
			key := models.NormalizeOutflowCategory(txn.Category)
			agg.expensesByCategory[key] = agg.expensesByCategory[key].Add(txn.Amount)
			agg.totalExpenses = agg.totalExpenses.Add(txn.Amount)

			if key == models.CategoryOwnerWithdrawal {
				agg.ownerWithdrawals = agg.ownerWithdrawals.Add(txn.Amount)
			}
		}

		if isMcaPayment(txn) {
			key := normalizeLenderKey(txn.Description)
			agg.lenders[key] = append(agg.lenders[key], *txn)
		}

		if isNSFEvent(txn) {
			agg.nsfCount++
		}

		if txn.RunningBalance != nil {
			if txn.RunningBalance.IsNegative() {
				negativeDates[txn.Date.Format("2006-01-02")] = true
			}
			if agg.lowestBalance == nil || txn.RunningBalance.LessThan(*agg.lowestBalance) {
				balance := *txn.RunningBalance
				agg.lowestBalance = &balance
			}
		}
	}

	agg.negativeDays = len(negativeDates)

	return agg
}

// isMcaPayment reports whether a debit repays an existing advance. An
// explicit mca_payment label counts whatever its parse quality; the
// keyword fallback covers missing or unassigned categories and never
// overrides a confident non-MCA label. mca_funding credits are the
// advance arriving, not an obligation, so they stay out of lender
// clustering and the debt metrics (they still sum into revenue under
// their own category).
func isMcaPayment(t *models.Transaction) bool {
	if !t.IsDebit() {
		return false
	}
	if t.Category == models.CategoryMcaPayment {
		return true
	}
	if t.HasConfidentCategory() {
		return false
	}
	return matchesAnyKeyword(t.Description, mcaKeywords)
}

// isNSFEvent reports an NSF or overdraft charge, by category or by memo
// line.
func isNSFEvent(t *models.Transaction) bool {
	if t.Category == models.CategoryNSFFee || t.Category == models.CategoryOverdraftFee {
		return true
	}
	return matchesAnyKeyword(t.Description, nsfKeywords)
}

func matchesAnyKeyword(description string, keywords []string) bool {
	normalized := strings.ToLower(description)
	for _, keyword := range keywords {
		if strings.Contains(normalized, keyword) {
			return true
		}
	}
	return false
}

// normalizeLenderKey produces the stable grouping key for one funder:
// lowercase, trailing ids and dates stripped, whitespace collapsed.
func normalizeLenderKey(description string) string {
	key := strings.ToLower(strings.TrimSpace(description))
	key = trailingRefPattern.ReplaceAllString(key, "")
	return strings.Join(strings.Fields(key), " ")
}
