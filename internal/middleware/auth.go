package middleware

import (
	"finease-server/internal/errors"
	"finease-server/internal/handlers"
	"finease-server/internal/services"

	"github.com/labstack/echo/v4"
)

// RequireAuth creates a middleware that requires a valid identity token and
// places the verified email and display name into the request context. The
// email is the owner key every downstream operation is scoped by.
func RequireAuth(tokenService services.TokenServiceInterface, metrics services.MetricsRecorderInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				recordAuthEvent(metrics, "missing_token")
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				recordAuthEvent(metrics, "malformed_header")
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateToken(token)
			if err != nil {
				if err == services.ErrExpiredToken {
					recordAuthEvent(metrics, "expired_token")
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				recordAuthEvent(metrics, "invalid_token")
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			recordAuthEvent(metrics, "authenticated")

			c.Set(handlers.OwnerEmailContextKey, claims.Email)
			c.Set(handlers.OwnerNameContextKey, claims.Name)

			return next(c)
		}
	}
}

func recordAuthEvent(metrics services.MetricsRecorderInterface, eventType string) {
	if metrics == nil {
		return
	}
	metrics.IncrementCounter("authentication_event", map[string]string{"event_type": eventType})
}
