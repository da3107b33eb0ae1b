package dto

import (
	"finease-server/internal/models"
)

// Transaction Request DTOs

// CreateTransactionRequest represents the request payload for recording a
// transaction. Owner identity is never part of the payload; it comes from the
// verified token claims.
type CreateTransactionRequest struct {
	Type        string `json:"type" validate:"required,transaction_type"`
	Category    string `json:"category" validate:"required,min=1,max=100"`
	Amount      string `json:"amount" validate:"required,transaction_amount"`
	Date        string `json:"date" validate:"required,calendar_date"`
	Description string `json:"description" validate:"max=500"`
}

// ToModel builds the storage record for the authenticated owner.
func (r *CreateTransactionRequest) ToModel(ownerEmail, ownerName string) *models.Transaction {
	return &models.Transaction{
		Type:        r.Type,
		Category:    r.Category,
		Amount:      r.Amount,
		Date:        r.Date,
		Description: r.Description,
		OwnerEmail:  ownerEmail,
		OwnerName:   ownerName,
	}
}

// Transaction Response DTOs

// CreateTransactionResponse represents the response after recording a transaction
type CreateTransactionResponse struct {
	Transaction *models.Transaction `json:"transaction"`
	Message     string              `json:"message"`
}

// TransactionListResponse represents the caller's full transaction collection
type TransactionListResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Total        int64                `json:"total"`
}

// TransactionDetailResponse represents a single record plus the lifetime
// total spent in its category, the figure shown alongside the detail view.
type TransactionDetailResponse struct {
	Transaction   *models.Transaction `json:"transaction"`
	CategoryTotal string              `json:"category_total"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}

// Dev-only DTOs

// DevTokenRequest represents the request payload for minting a local identity token
type DevTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,min=1,max=255"`
}

// DevTokenResponse carries the minted token
type DevTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresAt   int64  `json:"expires_at"`
}

// GenerateTestDataRequest represents the request payload for seeding fake records
type GenerateTestDataRequest struct {
	Count  int `json:"count" validate:"omitempty,min=1,max=1000"`
	Months int `json:"months" validate:"omitempty,min=1,max=60"`
}

// GenerateTestDataResponse reports how many records were seeded
type GenerateTestDataResponse struct {
	Created int    `json:"created"`
	Message string `json:"message"`
}
