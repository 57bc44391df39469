package handlers

import (
	"errors"
	"net/http"

	"mca-underwriting/internal/dto"
	apierrors "mca-underwriting/internal/errors"
	"mca-underwriting/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DealHandler handles deal-related HTTP requests
type DealHandler struct {
	dealService services.DealServiceInterface
}

// NewDealHandler creates a new deal handler
func NewDealHandler(dealService services.DealServiceInterface) *DealHandler {
	return &DealHandler{
		dealService: dealService,
	}
}

// CreateDeal opens a new deal for the authenticated underwriter
// @Summary Create a new deal
// @Description Open a merchant cash advance deal owned by the authenticated underwriter
// @Tags Deals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateDealRequest true "Deal details"
// @Success 201 {object} dto.CreateDealResponse "Deal created successfully"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /deals [post]
func (h *DealHandler) CreateDeal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.CreateDealRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	deal, err := h.dealService.CreateDeal(userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAmount) {
			return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid requested amount"))
		}
		if errors.Is(err, services.ErrNotFound) {
			return SendError(c, apierrors.AuthInsufficientPermission)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.CreateDealResponse{
		Deal:    deal,
		Message: "Deal created successfully",
	})
}

// GetDeal retrieves a specific deal by ID
// @Summary Get deal by ID
// @Description Retrieve a deal owned by the authenticated underwriter; admins may read any deal
// @Tags Deals
// @Security BearerAuth
// @Produce json
// @Param dealId path string true "Deal ID (UUID)"
// @Success 200 {object} models.Deal "Deal details"
// @Failure 400 {object} errors.ErrorResponse "DEAL_002 - Invalid deal ID format"
// @Failure 403 {object} errors.ErrorResponse "AUTH_005 - Deal belongs to another underwriter"
// @Failure 404 {object} errors.ErrorResponse "DEAL_001 - Deal not found"
// @Router /deals/{dealId} [get]
func (h *DealHandler) GetDeal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	dealID, err := uuid.Parse(c.Param("dealId"))
	if err != nil {
		return SendError(c, apierrors.DealInvalidID)
	}

	deal, err := h.dealService.GetDeal(userID, dealID, getIsAdminFromContext(c))
	if err != nil {
		return h.mapDealError(c, err)
	}

	return c.JSON(http.StatusOK, deal)
}

// ListDeals returns the authenticated underwriter's deals
// @Summary List deals
// @Description Retrieve the authenticated underwriter's deals with pagination; admins see all deals
// @Tags Deals
// @Security BearerAuth
// @Produce json
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} dto.DealListResponse "Paginated deal list"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Router /deals [get]
func (h *DealHandler) ListDeals(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	offset := getIntParam(c, "offset", 0)
	limit := getIntParam(c, "limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	deals, total, err := h.dealService.ListDeals(userID, getIsAdminFromContext(c), offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.DealListResponse{
		Deals:  deals,
		Total:  total,
		Offset: offset,
		Limit:  limit,
	})
}

// UpdateDealStatus transitions a deal to a new status
// @Summary Update deal status
// @Description Transition a deal between underwriting statuses
// @Tags Deals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param dealId path string true "Deal ID (UUID)"
// @Param request body dto.UpdateDealStatusRequest true "Target status"
// @Success 200 {object} dto.MessageResponse "Status updated"
// @Failure 400 {object} errors.ErrorResponse "DEAL_002 - Invalid deal ID format"
// @Failure 404 {object} errors.ErrorResponse "DEAL_001 - Deal not found"
// @Failure 422 {object} errors.ErrorResponse "DEAL_003 - Invalid status transition"
// @Router /deals/{dealId}/status [patch]
func (h *DealHandler) UpdateDealStatus(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	dealID, err := uuid.Parse(c.Param("dealId"))
	if err != nil {
		return SendError(c, apierrors.DealInvalidID)
	}

	var req dto.UpdateDealStatusRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, apierrors.DealInvalidStatus, apierrors.WithDetails(err.Error()))
	}

	if err := h.dealService.UpdateDealStatus(userID, dealID, getIsAdminFromContext(c), req.Status); err != nil {
		return h.mapDealError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Deal status updated"})
}

// IngestTransactions stores a parsed statement batch against a deal
// @Summary Ingest parsed transactions
// @Description Store a batch of parsed bank-statement transactions for a deal. A re-parse of the same document replaces its previous rows.
// @Tags Deals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param dealId path string true "Deal ID (UUID)"
// @Param request body dto.IngestTransactionsRequest true "Parsed transaction batch"
// @Success 201 {object} dto.IngestTransactionsResponse "Transactions stored"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 404 {object} errors.ErrorResponse "DEAL_001 - Deal or document not found"
// @Router /deals/{dealId}/transactions [post]
func (h *DealHandler) IngestTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	dealID, err := uuid.Parse(c.Param("dealId"))
	if err != nil {
		return SendError(c, apierrors.DealInvalidID)
	}

	var req dto.IngestTransactionsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	stored, err := h.dealService.IngestTransactions(userID, dealID, getIsAdminFromContext(c), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAmount) || errors.Is(err, services.ErrInvalidDate) {
			return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails(err.Error()))
		}
		return h.mapDealError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.IngestTransactionsResponse{
		Stored:  stored,
		Message: "Transactions ingested",
	})
}

// mapDealError translates deal service sentinels into API error responses
func (h *DealHandler) mapDealError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return SendError(c, apierrors.DealNotFound)
	case errors.Is(err, services.ErrUnauthorized):
		return SendError(c, apierrors.AuthInsufficientPermission)
	case errors.Is(err, services.ErrInvalidStatus):
		return SendError(c, apierrors.DealInvalidStatus)
	default:
		return SendSystemError(c, err)
	}
}
