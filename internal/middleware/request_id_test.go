package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type RequestIDTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *RequestIDTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestRequestIDTestSuite(t *testing.T) {
	suite.Run(t, new(RequestIDTestSuite))
}

// run sends one request through the middleware and returns the trace ID the
// handler observed plus the recorder for header assertions.
func (s *RequestIDTestSuite) run(inboundHeader string) (string, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	if inboundHeader != "" {
		req.Header.Set(TraceIDHeader, inboundHeader)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	var observed string
	handler := RequestID()(func(c echo.Context) error {
		observed = GetTraceID(c)
		return c.NoContent(http.StatusOK)
	})

	s.NoError(handler(c))
	return observed, rec
}

func (s *RequestIDTestSuite) TestGeneratesUUIDWhenHeaderAbsent() {
	observed, rec := s.run("")

	s.NotEmpty(observed)
	_, err := uuid.Parse(observed)
	s.NoError(err, "generated trace ID should be a UUID")
	s.Equal(observed, rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestReusesWellFormedInboundTraceID() {
	inbound := uuid.New().String()

	observed, rec := s.run(inbound)

	s.Equal(inbound, observed)
	s.Equal(inbound, rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestReplacesMalformedInboundTraceID() {
	for _, inbound := range []string{"not-a-uuid", "<script>alert(1)</script>", "12345"} {
		observed, rec := s.run(inbound)

		s.NotEqual(inbound, observed, "malformed inbound ID %q should not be propagated", inbound)
		_, err := uuid.Parse(observed)
		s.NoError(err)
		s.Equal(observed, rec.Header().Get(TraceIDHeader))
	}
}

func (s *RequestIDTestSuite) TestContextAndHeaderAgree() {
	observed, rec := s.run("")

	s.Equal(observed, rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestGetTraceIDWithoutMiddleware() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.Empty(GetTraceID(c))
}
