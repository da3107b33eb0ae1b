package handlers

import (
	"net/http"

	"finease-server/internal/dto"
	"finease-server/internal/errors"
	"finease-server/internal/repositories"
	"finease-server/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TransactionHandler handles transaction record HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// CreateTransaction records a new transaction for the authenticated owner
// @Summary Record a transaction
// @Description Store an income or expense entry; owner identity comes from the verified token
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction payload"
// @Success 201 {object} dto.CreateTransactionResponse "Transaction recorded"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_* - Invalid payload"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	ownerEmail, err := getOwnerEmailFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	ownerName := getOwnerNameFromContext(c)

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendValidationError(c, validationFieldErrors(err))
	}

	transaction, err := h.transactionService.Create(&req, ownerEmail, ownerName)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.CreateTransactionResponse{
		Transaction: transaction,
		Message:     "Transaction recorded successfully",
	})
}

// ListTransactions returns the caller's transaction collection, newest first
// @Summary List transactions
// @Description Retrieve all of the caller's transactions
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.TransactionListResponse "Transaction collection"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	ownerEmail, err := getOwnerEmailFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactions, total, err := h.transactionService.List(ownerEmail)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionListResponse{
		Transactions: transactions,
		Total:        total,
	})
}

// GetTransaction returns a single record with its lifetime category total
// @Summary Get transaction by ID
// @Description Retrieve one transaction plus the lifetime total spent in its category
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} dto.TransactionDetailResponse "Transaction detail"
// @Failure 400 {object} errors.ErrorResponse "TRANSACTION_002 - Invalid transaction ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	ownerEmail, err := getOwnerEmailFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.TransactionInvalidID)
	}

	transaction, categoryTotal, err := h.transactionService.GetByID(id, ownerEmail)
	if err != nil {
		if err == repositories.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionDetailResponse{
		Transaction:   transaction,
		CategoryTotal: categoryTotal.StringFixed(2),
	})
}

// DeleteTransaction removes one of the caller's records
// @Summary Delete transaction
// @Description Remove one of the caller's transactions
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} dto.MessageResponse "Transaction deleted"
// @Failure 400 {object} errors.ErrorResponse "TRANSACTION_002 - Invalid transaction ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	ownerEmail, err := getOwnerEmailFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.TransactionInvalidID)
	}

	if err := h.transactionService.Delete(id, ownerEmail); err != nil {
		if err == repositories.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Transaction deleted successfully",
	})
}
