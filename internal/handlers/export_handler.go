package handlers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	apierrors "mca-underwriting/internal/errors"
	"mca-underwriting/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ExportHandler serves scorecard downloads
type ExportHandler struct {
	analysisService services.AnalysisServiceInterface
	dealService     services.DealServiceInterface
}

// NewExportHandler creates a new export handler
func NewExportHandler(
	analysisService services.AnalysisServiceInterface,
	dealService services.DealServiceInterface,
) *ExportHandler {
	return &ExportHandler{
		analysisService: analysisService,
		dealService:     dealService,
	}
}

// ExportScorecardCSV streams the latest scorecard as a CSV download
// @Summary Export scorecard as CSV
// @Description Download the deal's most recent scorecard in CSV form
// @Tags Analysis
// @Security BearerAuth
// @Produce text/csv
// @Param dealId path string true "Deal ID (UUID)"
// @Success 200 {string} string "CSV scorecard"
// @Failure 404 {object} errors.ErrorResponse "ANALYSIS_004 - No analysis has been run"
// @Router /deals/{dealId}/scorecard.csv [get]
func (h *ExportHandler) ExportScorecardCSV(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	dealID, err := uuid.Parse(c.Param("dealId"))
	if err != nil {
		return SendError(c, apierrors.DealInvalidID)
	}

	isAdmin := getIsAdminFromContext(c)
	deal, err := h.dealService.GetDeal(userID, dealID, isAdmin)
	if err != nil {
		return h.mapExportError(c, err)
	}

	snapshot, err := h.analysisService.GetSnapshot(userID, dealID, isAdmin)
	if err != nil {
		return h.mapExportError(c, err)
	}

	m := snapshot.Metrics
	sc := snapshot.Scorecard

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"field", "value"},
		{"merchant_name", deal.MerchantName},
		{"deal_id", deal.ID.String()},
		{"period_start", m.PeriodStart.Format("2006-01-02")},
		{"period_end", m.PeriodEnd.Format("2006-01-02")},
		{"months_analyzed", strconv.Itoa(m.MonthsAnalyzed)},
		{"overall_score", strconv.FormatFloat(sc.OverallScore, 'f', 1, 64)},
		{"overall_rating", strconv.Itoa(sc.OverallRating)},
		{"risk_tier", sc.RiskTier},
		{"verdict", sc.Verdict},
		{"recommendation", sc.Recommendation},
		{"revenue_quality_score", strconv.FormatFloat(sc.RevenueQuality.Score, 'f', 1, 64)},
		{"expense_quality_score", strconv.FormatFloat(sc.ExpenseQuality.Score, 'f', 1, 64)},
		{"existing_debt_impact_score", strconv.FormatFloat(sc.ExistingDebtImpact.Score, 'f', 1, 64)},
		{"cashflow_charges_score", strconv.FormatFloat(sc.CashflowCharges.Score, 'f', 1, 64)},
		{"total_revenue", m.Revenue.TotalRevenue.StringFixed(2)},
		{"average_monthly_revenue", m.Revenue.AverageMonthlyRevenue.StringFixed(2)},
		{"revenue_trend", strconv.FormatFloat(m.Revenue.RevenueTrend, 'f', 4, 64)},
		{"total_expenses", m.Expense.TotalExpenses.StringFixed(2)},
		{"expense_to_revenue_ratio", strconv.FormatFloat(m.Expense.ExpenseToRevenueRatio, 'f', 4, 64)},
		{"active_mca_count", strconv.Itoa(m.Mca.ActiveMcaCount)},
		{"daily_mca_obligation", m.Mca.DailyMcaObligation.StringFixed(2)},
		{"debt_to_revenue_ratio", strconv.FormatFloat(m.Mca.DebtToRevenueRatio, 'f', 4, 64)},
		{"stacking_status", m.Mca.StackingStatus},
		{"nsf_count", strconv.Itoa(m.Risk.NSFCount)},
		{"negative_balance_days", strconv.Itoa(m.Risk.NegativeBalanceDays)},
	}

	for i, flag := range sc.RedFlags {
		rows = append(rows, []string{
			fmt.Sprintf("red_flag_%d", i+1),
			fmt.Sprintf("%s|%s|%s", flag.Type, flag.Severity, flag.Description),
		})
	}

	if err := w.WriteAll(rows); err != nil {
		return SendSystemError(c, err)
	}

	filename := fmt.Sprintf("scorecard-%s.csv", deal.ID)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}

func (h *ExportHandler) mapExportError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return SendError(c, apierrors.DealNotFound)
	case errors.Is(err, services.ErrUnauthorized):
		return SendError(c, apierrors.AuthInsufficientPermission)
	case errors.Is(err, services.ErrAnalysisNotComputed):
		return SendError(c, apierrors.AnalysisNotComputed)
	default:
		return SendSystemError(c, err)
	}
}
