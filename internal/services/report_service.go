package services

import (
	"fmt"
	"log/slog"
	"time"

	"finease-server/internal/models"
	"finease-server/internal/reports"
	"finease-server/internal/repositories"

	"github.com/shopspring/decimal"
)

type reportService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
}

// NewReportService creates a new report service
func NewReportService(
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
) ReportServiceInterface {
	return &reportService{
		transactionRepo: transactionRepo,
		metrics:         metrics,
	}
}

// Overview computes the dashboard summary over the owner's full collection
func (s *reportService) Overview(ownerEmail string) (reports.Summary, error) {
	start := time.Now()

	records, err := s.fetchRecords(ownerEmail, "overview")
	if err != nil {
		return reports.Summary{}, err
	}

	summary := reports.Aggregate(records)
	s.recordAnomalies(summary)
	s.finishReport("overview", start, len(records))

	slog.Info("overview report generated",
		"owner_email", ownerEmail,
		"transaction_count", summary.TransactionCount,
		"balance", summary.Balance.String())

	return summary, nil
}

// MonthlyExpenses computes the fixed twelve-bucket expense series
func (s *reportService) MonthlyExpenses(ownerEmail string) ([]reports.MonthBucket, error) {
	start := time.Now()

	records, err := s.fetchRecords(ownerEmail, "monthly_expenses")
	if err != nil {
		return nil, err
	}

	buckets := reports.BucketExpensesByMonth(records)
	s.finishReport("monthly_expenses", start, len(records))

	return buckets, nil
}

// FilteredReport narrows the owner's collection by the given criteria and
// derives the breakdown and summary from the filtered subset only.
func (s *reportService) FilteredReport(ownerEmail string, filters reports.Filters) (*FilteredReport, error) {
	start := time.Now()

	transactions, err := s.fetchTransactions(ownerEmail, "filtered")
	if err != nil {
		return nil, err
	}

	keptTransactions, keptRecords := filterPairs(transactions, filters)

	report := &FilteredReport{
		Transactions: keptTransactions,
		Breakdown:    reports.ExpensesByCategory(keptRecords),
		Summary:      reports.Aggregate(keptRecords),
	}

	s.finishReport("filtered", start, len(transactions))

	slog.Info("filtered report generated",
		"owner_email", ownerEmail,
		"matched", len(keptRecords),
		"of", len(transactions))

	return report, nil
}

// CategoryTotal computes the lifetime sum for one of the owner's categories
func (s *reportService) CategoryTotal(ownerEmail, category string) (decimal.Decimal, error) {
	transactions, err := s.transactionRepo.GetByOwnerAndCategory(ownerEmail, category)
	if err != nil {
		slog.Error("failed to fetch records for category total",
			"owner_email", ownerEmail,
			"category", category,
			"error", err)
		s.metrics.IncrementCounter("report.generated", map[string]string{"report": "category_total", "status": "failed"})
		return decimal.Zero, fmt.Errorf("failed to fetch records for category total: %w", err)
	}

	records := reports.NormalizeAll(transactions)
	total := reports.CategoryTotal(records, ownerEmail, category)

	s.metrics.IncrementCounter("report.generated", map[string]string{"report": "category_total", "status": "success"})

	return total, nil
}

func (s *reportService) fetchTransactions(ownerEmail, report string) ([]models.Transaction, error) {
	transactions, err := s.transactionRepo.GetByOwnerEmail(ownerEmail)
	if err != nil {
		slog.Error("failed to fetch records for report",
			"owner_email", ownerEmail,
			"report", report,
			"error", err)
		s.metrics.IncrementCounter("report.generated", map[string]string{"report": report, "status": "failed"})
		return nil, fmt.Errorf("failed to fetch records for report: %w", err)
	}
	return transactions, nil
}

func (s *reportService) fetchRecords(ownerEmail, report string) ([]reports.Record, error) {
	transactions, err := s.fetchTransactions(ownerEmail, report)
	if err != nil {
		return nil, err
	}
	return reports.NormalizeAll(transactions), nil
}

func (s *reportService) finishReport(report string, start time.Time, batchSize int) {
	s.metrics.IncrementCounter("report.generated", map[string]string{"report": report, "status": "success"})
	s.metrics.RecordProcessingTime("report.generation", time.Since(start))
	s.metrics.RecordGauge("report.batch_size", float64(batchSize), nil)
}

func (s *reportService) recordAnomalies(summary reports.Summary) {
	anomalies := map[string]int{
		"unclassified":   summary.UnclassifiedCount,
		"invalid_amount": summary.InvalidAmountCount,
		"invalid_date":   summary.InvalidDateCount,
	}
	for kind, count := range anomalies {
		for i := 0; i < count; i++ {
			s.metrics.IncrementCounter("report.anomaly", map[string]string{"kind": kind})
		}
	}
}

// filterPairs applies the compiled predicates while keeping the stored rows
// and their normalized records aligned, so the response can carry the
// original documents alongside engine-derived figures.
func filterPairs(transactions []models.Transaction, filters reports.Filters) ([]models.Transaction, []reports.Record) {
	records := reports.NormalizeAll(transactions)
	predicates := filters.Predicates()

	if len(predicates) == 0 {
		return transactions, records
	}

	keptTransactions := make([]models.Transaction, 0, len(transactions))
	keptRecords := make([]reports.Record, 0, len(records))

	for i, record := range records {
		matched := true
		for _, predicate := range predicates {
			if !predicate(record) {
				matched = false
				break
			}
		}
		if matched {
			keptTransactions = append(keptTransactions, transactions[i])
			keptRecords = append(keptRecords, record)
		}
	}

	return keptTransactions, keptRecords
}
