package reports

import (
	"testing"

	"finease-server/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestAggregate_IncomeAndExpense(t *testing.T) {
	records := NormalizeAll([]models.Transaction{
		tx("Income", "Salary", "1000", "2024-01-15"),
		tx("Expense", "Food", "300", "2024-01-20"),
	})

	s := Aggregate(records)

	assert.Equal(t, "1000", s.TotalIncome.String())
	assert.Equal(t, "300", s.TotalExpense.String())
	assert.Equal(t, "700", s.Balance.String())
	assert.Equal(t, 2, s.TransactionCount)
	assert.Equal(t, 1, s.IncomeCount)
	assert.Equal(t, 1, s.ExpenseCount)
	assert.Equal(t, "70", s.SavingsRate.String())
	assert.Equal(t, "30", s.ExpenseRatio.String())
}

func TestAggregate_EmptyCollection(t *testing.T) {
	s := Aggregate(nil)

	assert.True(t, s.TotalIncome.IsZero())
	assert.True(t, s.TotalExpense.IsZero())
	assert.True(t, s.Balance.IsZero())
	assert.Zero(t, s.TransactionCount)
	// No income is a valid zero state, not a division fault.
	assert.True(t, s.SavingsRate.IsZero())
	assert.True(t, s.ExpenseRatio.IsZero())
}

func TestAggregate_ExpensesWithoutIncome(t *testing.T) {
	s := Aggregate(NormalizeAll([]models.Transaction{
		tx("Expense", "Food", "120", "2024-04-01"),
		tx("Expense", "Home", "80", "2024-04-02"),
	}))

	assert.Equal(t, "200", s.TotalExpense.String())
	assert.Equal(t, "-200", s.Balance.String())
	assert.True(t, s.SavingsRate.IsZero())
	assert.True(t, s.ExpenseRatio.IsZero())
}

func TestAggregate_MalformedAmountCountedButSumsUntouched(t *testing.T) {
	s := Aggregate(NormalizeAll([]models.Transaction{
		tx("Income", "Salary", "500", "2024-01-01"),
		tx("Expense", "Food", "abc", "2024-01-02"),
	}))

	assert.Equal(t, 2, s.TransactionCount)
	assert.Equal(t, 1, s.ExpenseCount)
	assert.Equal(t, 1, s.InvalidAmountCount)
	assert.True(t, s.TotalExpense.IsZero())
	assert.Equal(t, "500", s.Balance.String())
}

func TestAggregate_UnclassifiedExcludedFromBothSums(t *testing.T) {
	s := Aggregate(NormalizeAll([]models.Transaction{
		tx("Income", "Salary", "100", "2024-01-01"),
		tx("refund", "Food", "40", "2024-01-02"),
		tx("", "Food", "60", "2024-01-03"),
	}))

	assert.Equal(t, 3, s.TransactionCount)
	assert.Equal(t, 2, s.UnclassifiedCount)
	assert.Equal(t, "100", s.TotalIncome.String())
	assert.True(t, s.TotalExpense.IsZero())
	assert.Equal(t, "100", s.Balance.String())
}

func TestAggregate_BalanceIdentityHolds(t *testing.T) {
	collections := [][]models.Transaction{
		nil,
		{tx("Income", "Salary", "1234.56", "2024-01-01")},
		{
			tx("Income", "Salary", "1000", "2024-01-01"),
			tx("Expense", "Food", "333.33", "2024-02-01"),
			tx("Expense", "Home", "666.67", "2024-03-01"),
			tx("mystery", "Food", "999", "2024-04-01"),
			tx("Expense", "Food", "abc", "bad-date"),
		},
	}

	for _, collection := range collections {
		s := Aggregate(NormalizeAll(collection))
		assert.True(t, s.Balance.Equal(s.TotalIncome.Sub(s.TotalExpense)),
			"balance must equal income minus expense exactly")
	}
}

func TestAggregate_FractionalRatesKeepPrecision(t *testing.T) {
	s := Aggregate(NormalizeAll([]models.Transaction{
		tx("Income", "Salary", "3", "2024-01-01"),
		tx("Expense", "Food", "1", "2024-01-02"),
	}))

	// Presentation rounds to 2dp; the engine keeps full precision.
	assert.Equal(t, "66.67", s.SavingsRate.Round(2).String())
	assert.Equal(t, "33.33", s.ExpenseRatio.Round(2).String())
	assert.False(t, s.SavingsRate.Equal(s.SavingsRate.Round(2)))
}
