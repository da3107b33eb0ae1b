package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"finease-server/internal/errors"
	"finease-server/internal/handlers"

	"github.com/labstack/echo/v4"
)

// PanicRecovery converts a panicking handler into a SYSTEM_001 response.
// The stack trace and the authenticated owner (when the request got past
// auth) are logged server-side; the client only sees the generic envelope
// with the trace ID.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					respondToPanic(c, r)
				}
			}()

			return next(c)
		}
	}
}

func respondToPanic(c echo.Context, recovered interface{}) {
	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	attrs := []any{
		"trace_id", traceID,
		"panic", fmt.Sprintf("%v", recovered),
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"stack_trace", string(debug.Stack()),
	}
	if owner, ok := c.Get(handlers.OwnerEmailContextKey).(string); ok && owner != "" {
		attrs = append(attrs, "owner_email", owner)
	}
	slog.Error("Panic recovered", attrs...)

	errorResponse := errors.NewErrorResponse(errors.SystemInternalError, traceID)
	if err := c.JSON(http.StatusInternalServerError, errorResponse); err != nil {
		slog.Error("Failed to send panic recovery response",
			"trace_id", traceID,
			"error", err.Error(),
		)
	}
}
