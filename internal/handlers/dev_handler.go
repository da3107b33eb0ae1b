package handlers

import (
	"net/http"

	"finease-server/internal/config"
	"finease-server/internal/dto"
	"finease-server/internal/errors"
	"finease-server/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	cfg                *config.Config
	tokenService       services.TokenServiceInterface
	transactionService services.TransactionServiceInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	cfg *config.Config,
	tokenService services.TokenServiceInterface,
	transactionService services.TransactionServiceInterface,
) *DevHandler {
	return &DevHandler{
		cfg:                cfg,
		tokenService:       tokenService,
		transactionService: transactionService,
	}
}

// MintToken mints an identity token for local testing
//
// Method: POST /api/v1/dev/token
// Environment: Development only
//
// The minted token is signed with the locally generated keypair and carries
// the email and name claims the auth middleware expects.
func (h *DevHandler) MintToken(c echo.Context) error {
	if !h.cfg.IsDevelopment() {
		return SendError(c, errors.SystemNotAvailableInEnv)
	}

	var req dto.DevTokenRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendValidationError(c, validationFieldErrors(err))
	}

	token, expiresAt, err := h.tokenService.GenerateToken(req.Email, req.Name)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.DevTokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt.Unix(),
	})
}

// GenerateTestData seeds fake transactions for the authenticated owner
//
// Method: POST /api/v1/dev/generate-test-data
// Authentication: Required
// Environment: Development only
//
// Body parameters:
//   - count: Number of transactions to generate (default: 60, max: 1000)
//   - months: Months of history to spread them over (default: 12, max: 60)
func (h *DevHandler) GenerateTestData(c echo.Context) error {
	if !h.cfg.IsDevelopment() {
		return SendError(c, errors.SystemNotAvailableInEnv)
	}

	ownerEmail, err := getOwnerEmailFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	ownerName := getOwnerNameFromContext(c)

	var req dto.GenerateTestDataRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendValidationError(c, validationFieldErrors(err))
	}

	created, err := h.transactionService.SeedTestData(ownerEmail, ownerName, req.Count, req.Months)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.GenerateTestDataResponse{
		Created: created,
		Message: "Test data generated successfully",
	})
}
