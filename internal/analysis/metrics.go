package analysis

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"mca-underwriting/internal/models"
)

// Cadence bounds in days. A lender with a single observed payment gets the
// monthly default, the conservative choice for the implied daily
// obligation.
const (
	minCadenceDays     = 1
	maxCadenceDays     = 30
	defaultCadenceDays = 30

	// Trend needs at least this many months; shorter histories report 0
	// to avoid division noise.
	minTrendMonths = 3
)

// ComputeMetrics turns a deal's raw transaction set into the four metric
// groups plus the monthly series. It is deterministic: the same input
// always produces the same output.
func (e *Engine) ComputeMetrics(transactions []models.Transaction) (*models.AggregatedMetrics, error) {
	sorted, period, err := Normalize(transactions)
	if err != nil {
		return nil, err
	}

	buckets := bucketizeMonthly(sorted, period)
	agg := aggregate(sorted)

	mcaPayments := lenderPayments(agg.lenders)
	totalMcaPaid := decimal.Zero
	dailyObligation := decimal.Zero
	for _, payment := range mcaPayments {
		totalMcaPaid = totalMcaPaid.Add(payment.TotalPaid)
		dailyObligation = dailyObligation.Add(payment.EstimatedDaily)
	}

	metrics := &models.AggregatedMetrics{
		PeriodStart:    period.Start,
		PeriodEnd:      period.End,
		MonthsAnalyzed: period.Months,
		Revenue: models.RevenueMetrics{
			TotalRevenue:          agg.totalRevenue,
			AverageMonthlyRevenue: agg.totalRevenue.Div(decimal.NewFromInt(int64(period.Months))),
			RevenueTrend:          revenueTrend(buckets),
			RevenueConsistency:    revenueConsistency(buckets),
			RevenueByMonth:        revenueByMonth(buckets),
			RevenueByCategory:     agg.revenueByCategory,
		},
		Expense: models.ExpenseMetrics{
			TotalExpenses:         agg.totalExpenses,
			ExpenseToRevenueRatio: safeRatio(agg.totalExpenses, agg.totalRevenue),
			OwnerWithdrawals:      agg.ownerWithdrawals,
			ExpensesByCategory:    agg.expensesByCategory,
		},
		Mca: models.McaMetrics{
			ActiveMcaCount:     len(mcaPayments),
			DailyMcaObligation: dailyObligation,
			DebtToRevenueRatio: safeRatio(totalMcaPaid, agg.totalRevenue),
			StackingStatus:     stackingStatus(len(mcaPayments)),
			McaPayments:        mcaPayments,
		},
		Risk: models.RiskMetrics{
			NSFCount:            agg.nsfCount,
			NegativeBalanceDays: agg.negativeDays,
			LowestBalance:       agg.lowestBalance,
			RedFlags:            []string{},
		},
		MonthlyData: buckets,
	}

	// The risk group carries the triggered rule descriptions so the
	// persisted metrics snapshot is self-contained.
	flags := e.DetectRedFlags(metrics)
	metrics.Risk.RedFlagCount = len(flags)
	for _, flag := range flags {
		metrics.Risk.RedFlags = append(metrics.Risk.RedFlags, flag.Description)
	}

	return metrics, nil
}

// revenueTrend is the relative change between the average of the first
// third of months and the average of the last third. Below 3 months the
// trend is 0.
func revenueTrend(buckets []models.MonthlyBucket) float64 {
	n := len(buckets)
	if n < minTrendMonths {
		return 0
	}

	window := n / 3
	firstAvg := averageRevenue(buckets[:window])
	lastAvg := averageRevenue(buckets[n-window:])

	if firstAvg == 0 {
		return 0
	}
	return (lastAvg - firstAvg) / firstAvg
}

// revenueConsistency is 1 - (stddev / mean) over monthly revenue, clamped
// to [0,1]. A zero mean reports 0.
func revenueConsistency(buckets []models.MonthlyBucket) float64 {
	mean := averageRevenue(buckets)
	if mean == 0 {
		return 0
	}

	variance := 0.0
	for _, bucket := range buckets {
		diff := bucket.Revenue.InexactFloat64() - mean
		variance += diff * diff
	}
	variance /= float64(len(buckets))

	consistency := 1 - math.Sqrt(variance)/mean
	if consistency < 0 {
		return 0
	}
	if consistency > 1 {
		return 1
	}
	return consistency
}

func averageRevenue(buckets []models.MonthlyBucket) float64 {
	if len(buckets) == 0 {
		return 0
	}
	sum := 0.0
	for _, bucket := range buckets {
		sum += bucket.Revenue.InexactFloat64()
	}
	return sum / float64(len(buckets))
}

func revenueByMonth(buckets []models.MonthlyBucket) map[string]decimal.Decimal {
	byMonth := make(map[string]decimal.Decimal, len(buckets))
	for _, bucket := range buckets {
		byMonth[bucket.Month] = bucket.Revenue
	}
	return byMonth
}

// lenderPayments summarizes each lender cluster: payment cadence is the
// median gap in days between consecutive repayment dates, and the implied
// daily obligation is the average payment divided by the cadence.
func lenderPayments(lenders map[string][]models.Transaction) []models.McaPayment {
	payments := make([]models.McaPayment, 0, len(lenders))

	for lender, txns := range lenders {
		totalPaid := decimal.Zero
		for i := range txns {
			totalPaid = totalPaid.Add(txns[i].Amount)
		}
		count := len(txns)
		averagePayment := totalPaid.Div(decimal.NewFromInt(int64(count)))
		frequency := paymentCadenceDays(txns)

		payments = append(payments, models.McaPayment{
			Lender:         lender,
			TotalPaid:      totalPaid,
			PaymentCount:   count,
			AveragePayment: averagePayment,
			FrequencyDays:  frequency,
			EstimatedDaily: averagePayment.Div(decimal.NewFromInt(int64(frequency))),
		})
	}

	sort.Slice(payments, func(i, j int) bool {
		return payments[i].Lender < payments[j].Lender
	})

	return payments
}

// paymentCadenceDays infers the repayment cadence from the median gap
// between a lender's payment dates, clamped to [1,30] days.
func paymentCadenceDays(txns []models.Transaction) int {
	if len(txns) < 2 {
		return defaultCadenceDays
	}

	dates := make([]time.Time, len(txns))
	for i := range txns {
		dates[i] = txns[i].Date
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	gaps := make([]int, 0, len(dates)-1)
	for i := 1; i < len(dates); i++ {
		gap := int(dates[i].Sub(dates[i-1]).Hours() / 24)
		gaps = append(gaps, gap)
	}
	sort.Ints(gaps)

	median := gaps[len(gaps)/2]
	if len(gaps)%2 == 0 {
		median = (gaps[len(gaps)/2-1] + gaps[len(gaps)/2]) / 2
	}

	if median < minCadenceDays {
		return minCadenceDays
	}
	if median > maxCadenceDays {
		return maxCadenceDays
	}
	return median
}

// stackingStatus buckets the concurrent advance count
func stackingStatus(activeMcaCount int) string {
	switch {
	case activeMcaCount <= 1:
		return models.StackingClean
	case activeMcaCount <= 3:
		return models.StackingStacked
	default:
		return models.StackingHeavy
	}
}

// safeRatio divides two decimal magnitudes as a float ratio. A zero
// denominator reports 0 when the numerator is also zero and a capped 1
// otherwise, so a merchant with obligations but no observed revenue still
// surfaces the worst-case signal instead of dividing by zero.
func safeRatio(numerator, denominator decimal.Decimal) float64 {
	if denominator.IsZero() {
		if numerator.IsZero() {
			return 0
		}
		return 1
	}
	ratio, _ := numerator.Div(denominator).Float64()
	return ratio
}
