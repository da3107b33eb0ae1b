package handlers

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when the identity context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// Context keys populated by the auth middleware
const (
	OwnerEmailContextKey = "owner_email"
	OwnerNameContextKey  = "owner_name"
)

// getOwnerEmailFromContext extracts the verified owner email from context.
// Returns ErrUnauthorized if the email is missing, which means the route was
// wired without the auth middleware.
func getOwnerEmailFromContext(c echo.Context) (string, error) {
	email, ok := c.Get(OwnerEmailContextKey).(string)
	if !ok || email == "" {
		return "", ErrUnauthorized
	}
	return email, nil
}

// getOwnerNameFromContext extracts the display name from context.
// An empty name is tolerated; it is a display convenience only.
func getOwnerNameFromContext(c echo.Context) string {
	name, ok := c.Get(OwnerNameContextKey).(string)
	if !ok {
		return ""
	}
	return name
}
