package handlers

import (
	"errors"
	"net/http"

	"mca-underwriting/internal/dto"
	apierrors "mca-underwriting/internal/errors"
	"mca-underwriting/internal/models"
	"mca-underwriting/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AnalysisHandler handles scorecard computation and retrieval
type AnalysisHandler struct {
	analysisService services.AnalysisServiceInterface
	dealService     services.DealServiceInterface
	chatContext     services.ChatContextServiceInterface
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(
	analysisService services.AnalysisServiceInterface,
	dealService services.DealServiceInterface,
	chatContext services.ChatContextServiceInterface,
) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
		dealService:     dealService,
		chatContext:     chatContext,
	}
}

// AnalyzeDeal runs the scoring engine over a deal's ingested transactions
// @Summary Run deal analysis
// @Description Compute aggregated metrics and the underwriting scorecard for a deal. The result replaces any previous analysis snapshot.
// @Tags Analysis
// @Security BearerAuth
// @Produce json
// @Param dealId path string true "Deal ID (UUID)"
// @Success 200 {object} dto.AnalysisResponse "Computed metrics and scorecard"
// @Failure 404 {object} errors.ErrorResponse "DEAL_001 - Deal not found"
// @Failure 422 {object} errors.ErrorResponse "ANALYSIS_001 - No transactions ingested for this deal"
// @Failure 422 {object} errors.ErrorResponse "ANALYSIS_002 - A transaction record is malformed"
// @Router /deals/{dealId}/analysis [post]
func (h *AnalysisHandler) AnalyzeDeal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	dealID, err := uuid.Parse(c.Param("dealId"))
	if err != nil {
		return SendError(c, apierrors.DealInvalidID)
	}

	metrics, scorecard, err := h.analysisService.AnalyzeDeal(userID, dealID, getIsAdminFromContext(c))
	if err != nil {
		return h.mapAnalysisError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AnalysisResponse{
		DealID:    dealID,
		Metrics:   metrics,
		Scorecard: scorecard,
	})
}

// GetScorecard returns the latest persisted scorecard for a deal
// @Summary Get deal scorecard
// @Description Retrieve the most recent analysis snapshot for a deal
// @Tags Analysis
// @Security BearerAuth
// @Produce json
// @Param dealId path string true "Deal ID (UUID)"
// @Success 200 {object} models.DealMetrics "Latest analysis snapshot"
// @Failure 404 {object} errors.ErrorResponse "ANALYSIS_004 - No analysis has been run"
// @Router /deals/{dealId}/scorecard [get]
func (h *AnalysisHandler) GetScorecard(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	dealID, err := uuid.Parse(c.Param("dealId"))
	if err != nil {
		return SendError(c, apierrors.DealInvalidID)
	}

	snapshot, err := h.analysisService.GetSnapshot(userID, dealID, getIsAdminFromContext(c))
	if err != nil {
		return h.mapAnalysisError(c, err)
	}

	return c.JSON(http.StatusOK, snapshot)
}

// GetDealContext renders the deal's analysis as assistant prompt context
// @Summary Get deal chat context
// @Description Render the deal's latest analysis as plain text for the underwriting assistant prompt
// @Tags Analysis
// @Security BearerAuth
// @Produce plain
// @Param dealId path string true "Deal ID (UUID)"
// @Success 200 {string} string "Prompt context"
// @Failure 404 {object} errors.ErrorResponse "DEAL_001 - Deal not found"
// @Router /deals/{dealId}/context [get]
func (h *AnalysisHandler) GetDealContext(c echo.Context) error {
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
		return h.mapAnalysisError(c, err)
	}

	// A deal without an analysis run still gets context, just without metrics
	var snapshot *models.DealMetrics
	snapshot, err = h.analysisService.GetSnapshot(userID, dealID, isAdmin)
	if err != nil && !errors.Is(err, services.ErrAnalysisNotComputed) {
		return h.mapAnalysisError(c, err)
	}

	return c.String(http.StatusOK, h.chatContext.BuildDealContext(deal, snapshot))
}

// mapAnalysisError translates analysis service sentinels into API error responses
func (h *AnalysisHandler) mapAnalysisError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return SendError(c, apierrors.DealNotFound)
	case errors.Is(err, services.ErrUnauthorized):
		return SendError(c, apierrors.AuthInsufficientPermission)
	case errors.Is(err, services.ErrNoTransactions):
		return SendError(c, apierrors.AnalysisNoTransactions)
	case errors.Is(err, services.ErrUnscorableTransaction):
		return SendError(c, apierrors.AnalysisInvalidRecord, apierrors.WithDetails(err.Error()))
	case errors.Is(err, services.ErrAnalysisNotComputed):
		return SendError(c, apierrors.AnalysisNotComputed)
	default:
		return SendSystemError(c, err)
	}
}
