package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"finease-server/internal/errors"
	"finease-server/internal/handlers"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type PanicRecoveryTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *PanicRecoveryTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

func (s *PanicRecoveryTestSuite) recoverFrom(panicWith interface{}, setup func(echo.Context)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/overview", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	if setup != nil {
		setup(c)
	}

	handler := PanicRecovery()(func(c echo.Context) error {
		panic(panicWith)
	})

	s.NotPanics(func() {
		_ = handler(c)
	})
	return rec
}

func (s *PanicRecoveryTestSuite) TestPanicBecomesSystemError() {
	rec := s.recoverFrom("report engine blew up", func(c echo.Context) {
		c.Set(TraceIDContextKey, "trace-panic-1")
	})

	s.Equal(http.StatusInternalServerError, rec.Code)

	var errorResponse errors.ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResponse))
	s.Equal("SYSTEM_001", errorResponse.Error.Code)
	s.Equal("trace-panic-1", errorResponse.Error.TraceID)
}

func (s *PanicRecoveryTestSuite) TestPanicWithoutTraceID() {
	rec := s.recoverFrom("early panic", nil)

	var errorResponse errors.ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResponse))
	s.Equal("SYSTEM_001", errorResponse.Error.Code)
	s.Equal("unknown", errorResponse.Error.TraceID)
}

func (s *PanicRecoveryTestSuite) TestPanicWithAuthenticatedOwner() {
	// Owner context set by auth must not change the response envelope,
	// it is only logged
	rec := s.recoverFrom("post-auth panic", func(c echo.Context) {
		c.Set(TraceIDContextKey, "trace-panic-2")
		c.Set(handlers.OwnerEmailContextKey, "ada@example.com")
	})

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "ada@example.com")
}

func (s *PanicRecoveryTestSuite) TestNonStringPanicValues() {
	for _, panicWith := range []interface{}{42, struct{ msg string }{"boom"}, nil} {
		rec := s.recoverFrom(panicWith, func(c echo.Context) {
			c.Set(TraceIDContextKey, "trace-panic-3")
		})

		s.Equal(http.StatusInternalServerError, rec.Code)
		s.Contains(rec.Body.String(), "SYSTEM_001")
	}
}

func (s *PanicRecoveryTestSuite) TestNormalRequestsPassThrough() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := PanicRecovery()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})

	s.NoError(handler(c))
	s.Equal(http.StatusOK, rec.Code)
}
