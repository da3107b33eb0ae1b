package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"finease-server/internal/dto"
	"finease-server/internal/errors"
	"finease-server/internal/models"
	"finease-server/internal/repositories"
	"finease-server/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionHandlerTestSuite struct {
	suite.Suite
	echo        *echo.Echo
	ctrl        *gomock.Controller
	mockService *service_mocks.MockTransactionServiceInterface
	handler     *TransactionHandler
	ownerEmail  string
	ownerName   string
}

func TestTransactionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}

func (s *TransactionHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockTransactionServiceInterface(s.ctrl)
	s.handler = NewTransactionHandler(s.mockService)
	s.ownerEmail = gofakeit.Email()
	s.ownerName = gofakeit.Name()
}

func (s *TransactionHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TransactionHandlerTestSuite) newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(OwnerEmailContextKey, s.ownerEmail)
	c.Set(OwnerNameContextKey, s.ownerName)
	return c, rec
}

func (s *TransactionHandlerTestSuite) decodeError(rec *httptest.ResponseRecorder) *ErrorResponse {
	var errResp ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &errResp))
	return &errResp
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction() {
	body := `{"type":"Expense","category":"Food","amount":"42.50","date":"2024-03-15","description":"groceries"}`
	c, rec := s.newContext(http.MethodPost, "/api/v1/transactions", body)

	created := &models.Transaction{
		ID:         uuid.New(),
		Type:       models.TransactionTypeExpense,
		Category:   "Food",
		Amount:     "42.50",
		Date:       "2024-03-15",
		OwnerEmail: s.ownerEmail,
	}
	s.mockService.EXPECT().
		Create(gomock.Any(), s.ownerEmail, s.ownerName).
		Return(created, nil)

	s.NoError(s.handler.CreateTransaction(c))
	s.Equal(http.StatusCreated, rec.Code)

	var resp dto.CreateTransactionResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(created.ID, resp.Transaction.ID)
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_NegativeAmountRejected() {
	body := `{"type":"Expense","category":"Food","amount":"-10","date":"2024-03-15"}`
	c, rec := s.newContext(http.MethodPost, "/api/v1/transactions", body)

	s.NoError(s.handler.CreateTransaction(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(errors.ValidationGeneral), s.decodeError(rec).Error.Code)
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_UnrecognizedTypeRejected() {
	body := `{"type":"Transfer","category":"Food","amount":"10","date":"2024-03-15"}`
	c, rec := s.newContext(http.MethodPost, "/api/v1/transactions", body)

	s.NoError(s.handler.CreateTransaction(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_MalformedDateRejected() {
	body := `{"type":"Expense","category":"Food","amount":"10","date":"15/03/2024"}`
	c, rec := s.newContext(http.MethodPost, "/api/v1/transactions", body)

	s.NoError(s.handler.CreateTransaction(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_NoIdentity() {
	body := `{"type":"Expense","category":"Food","amount":"10","date":"2024-03-15"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.CreateTransaction(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(errors.AuthMissingToken), s.decodeError(rec).Error.Code)
}

func (s *TransactionHandlerTestSuite) TestListTransactions() {
	stored := []models.Transaction{
		{ID: uuid.New(), Category: "Food", OwnerEmail: s.ownerEmail},
		{ID: uuid.New(), Category: "Salary", OwnerEmail: s.ownerEmail},
	}
	s.mockService.EXPECT().List(s.ownerEmail).Return(stored, int64(2), nil)

	c, rec := s.newContext(http.MethodGet, "/api/v1/transactions", "")

	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.TransactionListResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(int64(2), resp.Total)
	s.Len(resp.Transactions, 2)
}

func (s *TransactionHandlerTestSuite) TestGetTransaction_IncludesCategoryTotal() {
	id := uuid.New()
	stored := &models.Transaction{ID: id, Category: "Food", OwnerEmail: s.ownerEmail}
	s.mockService.EXPECT().
		GetByID(id, s.ownerEmail).
		Return(stored, decimal.RequireFromString("123.4"), nil)

	c, rec := s.newContext(http.MethodGet, "/api/v1/transactions/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.GetTransaction(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.TransactionDetailResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("123.40", resp.CategoryTotal)
	s.Equal(id, resp.Transaction.ID)
}

func (s *TransactionHandlerTestSuite) TestGetTransaction_InvalidID() {
	c, rec := s.newContext(http.MethodGet, "/api/v1/transactions/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	s.NoError(s.handler.GetTransaction(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(errors.TransactionInvalidID), s.decodeError(rec).Error.Code)
}

func (s *TransactionHandlerTestSuite) TestGetTransaction_NotFound() {
	id := uuid.New()
	s.mockService.EXPECT().
		GetByID(id, s.ownerEmail).
		Return(nil, decimal.Zero, repositories.ErrTransactionNotFound)

	c, rec := s.newContext(http.MethodGet, "/api/v1/transactions/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.GetTransaction(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(string(errors.TransactionNotFound), s.decodeError(rec).Error.Code)
}

func (s *TransactionHandlerTestSuite) TestDeleteTransaction() {
	id := uuid.New()
	s.mockService.EXPECT().Delete(id, s.ownerEmail).Return(nil)

	c, rec := s.newContext(http.MethodDelete, "/api/v1/transactions/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.DeleteTransaction(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *TransactionHandlerTestSuite) TestDeleteTransaction_NotFound() {
	id := uuid.New()
	s.mockService.EXPECT().Delete(id, s.ownerEmail).Return(repositories.ErrTransactionNotFound)

	c, rec := s.newContext(http.MethodDelete, "/api/v1/transactions/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.DeleteTransaction(c))
	s.Equal(http.StatusNotFound, rec.Code)
}
