package services

import (
	"time"

	"finease-server/internal/dto"
	"finease-server/internal/models"
	"finease-server/internal/reports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionServiceInterface defines transaction record operations. Every
// operation is scoped to the owner email extracted from the verified token;
// there is no cross-owner access path.
type TransactionServiceInterface interface {
	Create(req *dto.CreateTransactionRequest, ownerEmail, ownerName string) (*models.Transaction, error)
	List(ownerEmail string) ([]models.Transaction, int64, error)
	GetByID(id uuid.UUID, ownerEmail string) (*models.Transaction, decimal.Decimal, error)
	Delete(id uuid.UUID, ownerEmail string) error
	SeedTestData(ownerEmail, ownerName string, count, months int) (int, error)
}

// ReportServiceInterface fetches an owner's records and runs them through the
// reporting engine. A storage failure is surfaced as an error; an empty
// collection is a legitimate zero-valued report.
type ReportServiceInterface interface {
	Overview(ownerEmail string) (reports.Summary, error)
	MonthlyExpenses(ownerEmail string) ([]reports.MonthBucket, error)
	FilteredReport(ownerEmail string, filters reports.Filters) (*FilteredReport, error)
	CategoryTotal(ownerEmail, category string) (decimal.Decimal, error)
}

// FilteredReport bundles the records matching a filter set with the derived
// views of that filtered subset only.
type FilteredReport struct {
	Transactions []models.Transaction
	Breakdown    []reports.CategoryTotalItem
	Summary      reports.Summary
}

type TokenServiceInterface interface {
	GenerateToken(email, name string) (string, time.Time, error)
	ValidateToken(tokenString string) (*models.IdentityClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// TransactionGeneratorInterface generates realistic transaction data for testing
type TransactionGeneratorInterface interface {
	GenerateTransactions(ownerEmail, ownerName string, count, months int) []*models.Transaction
	GenerateTransactionType() string
	GenerateCategory(transactionType string) string
	GenerateAmount(category string) string
	GenerateDate(monthsBack int) string
	GenerateDescription(category string) string
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
