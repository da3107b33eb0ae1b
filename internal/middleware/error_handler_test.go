package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apierrors "finease-server/internal/errors"
	"finease-server/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type ErrorHandlerTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.HTTPErrorHandler = CustomHTTPErrorHandler
}

func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) handle(err error, traceID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	if traceID != "" {
		c.Set(TraceIDContextKey, traceID)
	}

	CustomHTTPErrorHandler(err, c)
	return rec
}

func (s *ErrorHandlerTestSuite) decode(rec *httptest.ResponseRecorder) apierrors.ErrorResponse {
	var resp apierrors.ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func (s *ErrorHandlerTestSuite) TestEchoHTTPErrorKeepsStatusAndMessage() {
	rec := s.handle(echo.NewHTTPError(http.StatusNotFound, "no such route"), "trace-eh-1")

	s.Equal(http.StatusNotFound, rec.Code)
	resp := s.decode(rec)
	s.Equal("TRANSACTION_001", resp.Error.Code)
	s.Equal("no such route", resp.Error.Message)
	s.Equal("trace-eh-1", resp.Error.TraceID)
}

func (s *ErrorHandlerTestSuite) TestStatusToCodeMapping() {
	testCases := []struct {
		status       int
		expectedCode string
	}{
		{http.StatusBadRequest, "VALIDATION_001"},
		{http.StatusUnauthorized, "AUTH_001"},
		{http.StatusForbidden, "AUTH_004"},
		{http.StatusNotFound, "TRANSACTION_001"},
		{http.StatusMethodNotAllowed, "VALIDATION_001"},
		{http.StatusTooManyRequests, "SYSTEM_004"},
		{http.StatusInternalServerError, "SYSTEM_001"},
		{http.StatusServiceUnavailable, "SYSTEM_003"},
		{999, "SYSTEM_001"},
	}

	for _, tc := range testCases {
		s.Run(http.StatusText(tc.status), func() {
			rec := s.handle(echo.NewHTTPError(tc.status), "trace-eh-2")

			s.Equal(tc.status, rec.Code)
			s.Equal(tc.expectedCode, s.decode(rec).Error.Code)
		})
	}
}

func (s *ErrorHandlerTestSuite) TestValidatorErrorsBecomeFieldDetails() {
	// A bind that bypasses the handlers' own validation path still ends up
	// here as validator.ValidationErrors
	type payload struct {
		Category string `json:"category" validate:"required"`
		Amount   string `json:"amount" validate:"required,transaction_amount"`
	}

	err := validation.GetValidator().GetValidate().Struct(payload{Amount: "-10"})
	s.Error(err)

	rec := s.handle(err, "trace-eh-3")

	s.Equal(http.StatusBadRequest, rec.Code)
	resp := s.decode(rec)
	s.Equal("VALIDATION_001", resp.Error.Code)
	s.NotEmpty(resp.Error.Details)
	s.Contains(rec.Body.String(), "category")
	s.Contains(rec.Body.String(), "amount")
}

func (s *ErrorHandlerTestSuite) TestUnknownErrorsAreWrappedAsSystemError() {
	rec := s.handle(errors.New("pq: connection reset"), "trace-eh-4")

	s.Equal(http.StatusInternalServerError, rec.Code)
	resp := s.decode(rec)
	s.Equal("SYSTEM_001", resp.Error.Code)
	s.NotContains(resp.Error.Message, "pq:", "internal detail must not leak")
}

func (s *ErrorHandlerTestSuite) TestMissingTraceIDFallsBackToUnknown() {
	rec := s.handle(errors.New("boom"), "")

	s.Equal("unknown", s.decode(rec).Error.TraceID)
}

func (s *ErrorHandlerTestSuite) TestCommittedResponseIsLeftAlone() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	CustomHTTPErrorHandler(errors.New("late error"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "ok")
}

func (s *ErrorHandlerTestSuite) TestResponseIsJSON() {
	rec := s.handle(errors.New("boom"), "trace-eh-5")

	s.Contains(rec.Header().Get("Content-Type"), "application/json")
}
