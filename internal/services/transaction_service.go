package services

import (
	"errors"
	"fmt"
	"log/slog"

	"finease-server/internal/dto"
	"finease-server/internal/models"
	"finease-server/internal/reports"
	"finease-server/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultSeedCount  = 60
	defaultSeedMonths = 12
)

type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	generator       TransactionGeneratorInterface
	metrics         MetricsRecorderInterface
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	generator TransactionGeneratorInterface,
	metrics MetricsRecorderInterface,
) TransactionServiceInterface {
	return &transactionService{
		transactionRepo: transactionRepo,
		generator:       generator,
		metrics:         metrics,
	}
}

// Create records a transaction for the authenticated owner. Identity fields
// come from the verified claims, never from the payload.
func (s *transactionService) Create(req *dto.CreateTransactionRequest, ownerEmail, ownerName string) (*models.Transaction, error) {
	transaction := req.ToModel(ownerEmail, ownerName)

	if err := s.transactionRepo.Create(transaction); err != nil {
		slog.Error("failed to record transaction",
			"owner_email", ownerEmail,
			"category", req.Category,
			"error", err)
		return nil, err
	}

	s.metrics.IncrementCounter("transaction.recorded", map[string]string{"type": transaction.Type})

	slog.Info("transaction recorded",
		"transaction_id", transaction.ID,
		"owner_email", ownerEmail,
		"type", transaction.Type,
		"category", transaction.Category)

	return transaction, nil
}

// List returns the owner's full collection, newest first. The total comes
// from a repository count rather than the slice length so it stays correct
// if listing ever becomes paginated.
func (s *transactionService) List(ownerEmail string) ([]models.Transaction, int64, error) {
	transactions, err := s.transactionRepo.GetByOwnerEmail(ownerEmail)
	if err != nil {
		slog.Error("failed to list transactions",
			"owner_email", ownerEmail,
			"error", err)
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}

	total, err := s.transactionRepo.CountByOwner(ownerEmail)
	if err != nil {
		slog.Error("failed to count transactions",
			"owner_email", ownerEmail,
			"error", err)
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	return transactions, total, nil
}

// GetByID returns a single record together with the lifetime total spent in
// its category. Records belonging to other owners are reported as not found
// so existence is never revealed across owners.
func (s *transactionService) GetByID(id uuid.UUID, ownerEmail string) (*models.Transaction, decimal.Decimal, error) {
	transaction, err := s.transactionRepo.GetByID(id)
	if err != nil {
		if !errors.Is(err, repositories.ErrTransactionNotFound) {
			slog.Error("failed to get transaction",
				"transaction_id", id,
				"error", err)
		}
		return nil, decimal.Zero, err
	}

	if transaction.OwnerEmail != ownerEmail {
		slog.Warn("cross-owner transaction access attempt",
			"transaction_id", id,
			"owner_email", ownerEmail)
		return nil, decimal.Zero, repositories.ErrTransactionNotFound
	}

	total, err := s.categoryTotal(ownerEmail, transaction.Category)
	if err != nil {
		return nil, decimal.Zero, err
	}

	return transaction, total, nil
}

// Delete removes one of the owner's records
func (s *transactionService) Delete(id uuid.UUID, ownerEmail string) error {
	transaction, err := s.transactionRepo.GetByID(id)
	if err != nil {
		return err
	}

	if transaction.OwnerEmail != ownerEmail {
		slog.Warn("cross-owner transaction delete attempt",
			"transaction_id", id,
			"owner_email", ownerEmail)
		return repositories.ErrTransactionNotFound
	}

	if err := s.transactionRepo.Delete(id); err != nil {
		slog.Error("failed to delete transaction",
			"transaction_id", id,
			"error", err)
		return err
	}

	s.metrics.IncrementCounter("transaction.deleted", nil)

	slog.Info("transaction deleted",
		"transaction_id", id,
		"owner_email", ownerEmail)

	return nil
}

// SeedTestData generates and stores fake records for the owner
func (s *transactionService) SeedTestData(ownerEmail, ownerName string, count, months int) (int, error) {
	if count <= 0 {
		count = defaultSeedCount
	}
	if months <= 0 {
		months = defaultSeedMonths
	}

	generated := s.generator.GenerateTransactions(ownerEmail, ownerName, count, months)

	created := 0
	for _, transaction := range generated {
		if err := s.transactionRepo.Create(transaction); err != nil {
			slog.Error("failed to store generated transaction",
				"owner_email", ownerEmail,
				"error", err)
			return created, fmt.Errorf("failed to store generated transaction: %w", err)
		}
		created++
	}

	slog.Info("test data generated",
		"owner_email", ownerEmail,
		"created", created)

	return created, nil
}

func (s *transactionService) categoryTotal(ownerEmail, category string) (decimal.Decimal, error) {
	transactions, err := s.transactionRepo.GetByOwnerAndCategory(ownerEmail, category)
	if err != nil {
		slog.Error("failed to fetch category records",
			"owner_email", ownerEmail,
			"category", category,
			"error", err)
		return decimal.Zero, fmt.Errorf("failed to fetch category records: %w", err)
	}

	records := reports.NormalizeAll(transactions)
	return reports.CategoryTotal(records, ownerEmail, category), nil
}
