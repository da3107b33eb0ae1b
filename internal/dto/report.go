package dto

import (
	"finease-server/internal/models"
	"finease-server/internal/reports"
)

// Report Response DTOs. The engine keeps full decimal precision; the
// conversion helpers here round monetary and percentage figures to two
// decimal places for the wire.

// OverviewResponse represents the dashboard summary figures
type OverviewResponse struct {
	TotalIncome  string `json:"total_income"`
	TotalExpense string `json:"total_expense"`
	Balance      string `json:"balance"`

	TransactionCount int `json:"transaction_count"`
	IncomeCount      int `json:"income_count"`
	ExpenseCount     int `json:"expense_count"`

	SavingsRate  string `json:"savings_rate"`
	ExpenseRatio string `json:"expense_ratio"`

	UnclassifiedCount  int `json:"unclassified_count"`
	InvalidAmountCount int `json:"invalid_amount_count"`
	InvalidDateCount   int `json:"invalid_date_count"`
}

// NewOverviewResponse converts a computed summary into its wire shape
func NewOverviewResponse(s reports.Summary) OverviewResponse {
	return OverviewResponse{
		TotalIncome:        s.TotalIncome.StringFixed(2),
		TotalExpense:       s.TotalExpense.StringFixed(2),
		Balance:            s.Balance.StringFixed(2),
		TransactionCount:   s.TransactionCount,
		IncomeCount:        s.IncomeCount,
		ExpenseCount:       s.ExpenseCount,
		SavingsRate:        s.SavingsRate.StringFixed(2),
		ExpenseRatio:       s.ExpenseRatio.StringFixed(2),
		UnclassifiedCount:  s.UnclassifiedCount,
		InvalidAmountCount: s.InvalidAmountCount,
		InvalidDateCount:   s.InvalidDateCount,
	}
}

// MonthBucketItem represents one bar of the monthly expense chart
type MonthBucketItem struct {
	Month int    `json:"month"`
	Label string `json:"label"`
	Total string `json:"total"`
}

// MonthlyExpensesResponse represents the fixed twelve-bucket series
type MonthlyExpensesResponse struct {
	Months []MonthBucketItem `json:"months"`
}

// NewMonthlyExpensesResponse converts engine buckets into their wire shape
func NewMonthlyExpensesResponse(buckets []reports.MonthBucket) MonthlyExpensesResponse {
	items := make([]MonthBucketItem, 0, len(buckets))
	for _, b := range buckets {
		items = append(items, MonthBucketItem{
			Month: int(b.Month),
			Label: b.Label,
			Total: b.Total.StringFixed(2),
		})
	}
	return MonthlyExpensesResponse{Months: items}
}

// CategoryBreakdownItem represents one slice of the expense pie chart
type CategoryBreakdownItem struct {
	Category string `json:"category"`
	Total    string `json:"total"`
}

// NewCategoryBreakdown converts per-category totals into their wire shape
func NewCategoryBreakdown(items []reports.CategoryTotalItem) []CategoryBreakdownItem {
	out := make([]CategoryBreakdownItem, 0, len(items))
	for _, item := range items {
		out = append(out, CategoryBreakdownItem{
			Category: item.Category,
			Total:    item.Total.StringFixed(2),
		})
	}
	return out
}

// AppliedFilters echoes back the dimensions a filtered report was narrowed by
type AppliedFilters struct {
	Month    *int   `json:"month,omitempty"`
	Category string `json:"category,omitempty"`
}

// FilteredReportResponse represents a filtered record view: the matching
// records, their per-category expense breakdown, and the summary of the
// filtered set only.
type FilteredReportResponse struct {
	Transactions []models.Transaction    `json:"transactions"`
	Breakdown    []CategoryBreakdownItem `json:"breakdown"`
	Summary      OverviewResponse        `json:"summary"`
	Filters      AppliedFilters          `json:"filters"`
}

// CategoryTotalResponse represents the lifetime total for one category
type CategoryTotalResponse struct {
	Category string `json:"category"`
	Total    string `json:"total"`
}

// HealthResponse represents the liveness probe result
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Version  string `json:"version,omitempty"`
}
