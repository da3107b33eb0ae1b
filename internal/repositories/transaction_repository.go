package repositories

import (
	"errors"
	"fmt"

	"finease-server/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// GetByOwnerEmail retrieves all transactions for an owner, newest first.
// The full per-owner collection is the engine's input snapshot, so there is
// no pagination here; per-user volumes stay small enough to recompute
// reports from scratch on every call.
func (r *transactionRepository) GetByOwnerEmail(ownerEmail string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("owner_email = ?", ownerEmail).
		Order("created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions for owner: %w", err)
	}
	return transactions, nil
}

// GetByOwnerAndCategory retrieves an owner's transactions in one category
func (r *transactionRepository) GetByOwnerAndCategory(ownerEmail, category string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("owner_email = ? AND category = ?", ownerEmail, category).
		Order("created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions for category: %w", err)
	}
	return transactions, nil
}

// Delete removes a transaction by ID
func (r *transactionRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Transaction{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// CountByOwner returns the number of stored transactions for an owner
func (r *transactionRepository) CountByOwner(ownerEmail string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Transaction{}).
		Where("owner_email = ?", ownerEmail).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}
