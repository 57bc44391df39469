package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mca-underwriting/internal/dto"
	"mca-underwriting/internal/models"
	"mca-underwriting/internal/services"
	"mca-underwriting/internal/services/service_mocks"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// DealHandlerSuite defines the test suite for DealHandler
type DealHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockDealServiceInterface
	handler     *DealHandler
	echo        *echo.Echo
	testUserID  uuid.UUID
}

func (s *DealHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockDealServiceInterface(s.ctrl)
	s.handler = NewDealHandler(s.mockService)

	s.echo = echo.New()
	s.echo.Validator = &CustomValidator{validator: validator.New()}

	s.testUserID = uuid.New()
}

func (s *DealHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestDealHandlerSuite(t *testing.T) {
	suite.Run(t, new(DealHandlerSuite))
}

// createContextWithAuth builds a request context carrying an authenticated user
func (s *DealHandlerSuite) createContextWithAuth(method, path string, body interface{}, userID uuid.UUID, isAdmin bool) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	c.Set("user_id", userID)
	c.Set("is_admin", isAdmin)

	return c, rec
}

func (s *DealHandlerSuite) TestCreateDeal_Success() {
	reqBody := dto.CreateDealRequest{
		MerchantName:    "Sunset Auto Repair",
		Industry:        "auto_services",
		RequestedAmount: "75000.00",
	}

	expected := &models.Deal{
		ID:              uuid.New(),
		UnderwriterID:   s.testUserID,
		MerchantName:    "Sunset Auto Repair",
		RequestedAmount: decimal.RequireFromString("75000.00"),
		Status:          models.DealStatusNew,
	}

	s.mockService.EXPECT().
		CreateDeal(s.testUserID, gomock.Any()).
		Return(expected, nil)

	c, rec := s.createContextWithAuth(http.MethodPost, "/api/v1/deals", reqBody, s.testUserID, false)

	s.NoError(s.handler.CreateDeal(c))
	s.Equal(http.StatusCreated, rec.Code)

	var resp dto.CreateDealResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(expected.ID, resp.Deal.ID)
}

func (s *DealHandlerSuite) TestCreateDeal_MissingMerchantName() {
	reqBody := dto.CreateDealRequest{
		RequestedAmount: "75000.00",
	}

	c, rec := s.createContextWithAuth(http.MethodPost, "/api/v1/deals", reqBody, s.testUserID, false)

	s.NoError(s.handler.CreateDeal(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_001")
}

func (s *DealHandlerSuite) TestCreateDeal_InvalidAmount() {
	reqBody := dto.CreateDealRequest{
		MerchantName:    "Sunset Auto Repair",
		RequestedAmount: "not-a-number",
	}

	s.mockService.EXPECT().
		CreateDeal(s.testUserID, gomock.Any()).
		Return(nil, services.ErrInvalidAmount)

	c, rec := s.createContextWithAuth(http.MethodPost, "/api/v1/deals", reqBody, s.testUserID, false)

	s.NoError(s.handler.CreateDeal(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_003")
}

func (s *DealHandlerSuite) TestCreateDeal_Unauthenticated() {
	c, rec := s.createContextWithAuth(http.MethodPost, "/api/v1/deals", dto.CreateDealRequest{}, s.testUserID, false)
	c.Set("user_id", nil)

	s.NoError(s.handler.CreateDeal(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_002")
}

func (s *DealHandlerSuite) TestGetDeal_Success() {
	dealID := uuid.New()
	expected := &models.Deal{ID: dealID, UnderwriterID: s.testUserID, MerchantName: "Blue Harbor Seafood LLC"}

	s.mockService.EXPECT().
		GetDeal(s.testUserID, dealID, false).
		Return(expected, nil)

	c, rec := s.createContextWithAuth(http.MethodGet, "/api/v1/deals/"+dealID.String(), nil, s.testUserID, false)
	c.SetParamNames("dealId")
	c.SetParamValues(dealID.String())

	s.NoError(s.handler.GetDeal(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Blue Harbor Seafood LLC")
}

func (s *DealHandlerSuite) TestGetDeal_BadID() {
	c, rec := s.createContextWithAuth(http.MethodGet, "/api/v1/deals/banana", nil, s.testUserID, false)
	c.SetParamNames("dealId")
	c.SetParamValues("banana")

	s.NoError(s.handler.GetDeal(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "DEAL_002")
}

func (s *DealHandlerSuite) TestGetDeal_NotFound() {
	dealID := uuid.New()
	s.mockService.EXPECT().
		GetDeal(s.testUserID, dealID, false).
		Return(nil, services.ErrNotFound)

	c, rec := s.createContextWithAuth(http.MethodGet, "/api/v1/deals/"+dealID.String(), nil, s.testUserID, false)
	c.SetParamNames("dealId")
	c.SetParamValues(dealID.String())

	s.NoError(s.handler.GetDeal(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "DEAL_001")
}

func (s *DealHandlerSuite) TestGetDeal_Forbidden() {
	dealID := uuid.New()
	s.mockService.EXPECT().
		GetDeal(s.testUserID, dealID, false).
		Return(nil, services.ErrUnauthorized)

	c, rec := s.createContextWithAuth(http.MethodGet, "/api/v1/deals/"+dealID.String(), nil, s.testUserID, false)
	c.SetParamNames("dealId")
	c.SetParamValues(dealID.String())

	s.NoError(s.handler.GetDeal(c))
	s.Equal(http.StatusForbidden, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_005")
}

func (s *DealHandlerSuite) TestListDeals_DefaultsPagination() {
	s.mockService.EXPECT().
		ListDeals(s.testUserID, false, 0, 20).
		Return([]models.Deal{}, int64(0), nil)

	c, rec := s.createContextWithAuth(http.MethodGet, "/api/v1/deals", nil, s.testUserID, false)

	s.NoError(s.handler.ListDeals(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.DealListResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(20, resp.Limit)
}

func (s *DealHandlerSuite) TestListDeals_AdminPassesFlag() {
	s.mockService.EXPECT().
		ListDeals(s.testUserID, true, 0, 50).
		Return([]models.Deal{{ID: uuid.New()}}, int64(1), nil)

	c, rec := s.createContextWithAuth(http.MethodGet, "/api/v1/deals?limit=50", nil, s.testUserID, true)

	s.NoError(s.handler.ListDeals(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *DealHandlerSuite) TestUpdateDealStatus_Success() {
	dealID := uuid.New()
	reqBody := dto.UpdateDealStatusRequest{Status: models.DealStatusApproved}

	s.mockService.EXPECT().
		UpdateDealStatus(s.testUserID, dealID, false, models.DealStatusApproved).
		Return(nil)

	c, rec := s.createContextWithAuth(http.MethodPatch, "/api/v1/deals/"+dealID.String()+"/status", reqBody, s.testUserID, false)
	c.SetParamNames("dealId")
	c.SetParamValues(dealID.String())

	s.NoError(s.handler.UpdateDealStatus(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *DealHandlerSuite) TestUpdateDealStatus_RejectsUnknownStatus() {
	dealID := uuid.New()
	reqBody := dto.UpdateDealStatusRequest{Status: "funded"}

	c, rec := s.createContextWithAuth(http.MethodPatch, "/api/v1/deals/"+dealID.String()+"/status", reqBody, s.testUserID, false)
	c.SetParamNames("dealId")
	c.SetParamValues(dealID.String())

	s.NoError(s.handler.UpdateDealStatus(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Contains(rec.Body.String(), "DEAL_003")
}

func (s *DealHandlerSuite) TestIngestTransactions_Success() {
	dealID := uuid.New()
	reqBody := dto.IngestTransactionsRequest{
		Transactions: []dto.TransactionPayload{
			{
				Date:            "2025-03-01",
				Description:     "CARD SETTLEMENT",
				Amount:          "1850.25",
				TransactionType: "credit",
			},
		},
	}

	s.mockService.EXPECT().
		IngestTransactions(s.testUserID, dealID, false, gomock.Any()).
		Return(1, nil)

	c, rec := s.createContextWithAuth(http.MethodPost, "/api/v1/deals/"+dealID.String()+"/transactions", reqBody, s.testUserID, false)
	c.SetParamNames("dealId")
	c.SetParamValues(dealID.String())

	s.NoError(s.handler.IngestTransactions(c))
	s.Equal(http.StatusCreated, rec.Code)

	var resp dto.IngestTransactionsResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(1, resp.Stored)
}

func (s *DealHandlerSuite) TestIngestTransactions_EmptyBatch() {
	dealID := uuid.New()
	reqBody := dto.IngestTransactionsRequest{Transactions: []dto.TransactionPayload{}}

	c, rec := s.createContextWithAuth(http.MethodPost, "/api/v1/deals/"+dealID.String()+"/transactions", reqBody, s.testUserID, false)
	c.SetParamNames("dealId")
	c.SetParamValues(dealID.String())

	s.NoError(s.handler.IngestTransactions(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_001")
}
