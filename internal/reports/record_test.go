package reports

import (
	"testing"
	"time"

	"finease-server/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tx builds a stored transaction for engine tests. Amount and date are raw
// strings on purpose: malformed values are part of the contract under test.
func tx(txType, category, amount, date string) models.Transaction {
	return models.Transaction{
		ID:         uuid.New(),
		Type:       txType,
		Category:   category,
		Amount:     amount,
		Date:       date,
		OwnerEmail: "user@example.com",
		OwnerName:  "Test User",
		CreatedAt:  time.Now(),
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		rawType string
		want    Type
	}{
		{"canonical income", "Income", TypeIncome},
		{"canonical expense", "Expense", TypeExpense},
		{"lowercase income", "income", TypeIncome},
		{"uppercase expense", "EXPENSE", TypeExpense},
		{"mixed case", "eXpEnSe", TypeExpense},
		{"surrounding whitespace", "  income  ", TypeIncome},
		{"empty", "", TypeUnclassified},
		{"unknown", "transfer", TypeUnclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.rawType))
		})
	}
}

func TestNormalize_ValidRecord(t *testing.T) {
	stored := tx("income", "Salary", "1000.50", "2024-01-15")

	r := Normalize(stored)

	assert.Equal(t, stored.ID, r.ID)
	assert.Equal(t, TypeIncome, r.Type)
	assert.Equal(t, "Salary", r.Category)
	assert.True(t, r.AmountOK)
	assert.Equal(t, "1000.5", r.Amount.String())
	assert.True(t, r.DateOK)
	assert.Equal(t, time.January, r.Date.Month())
	assert.Equal(t, 2024, r.Date.Year())
	assert.Equal(t, stored.OwnerEmail, r.OwnerEmail)
	assert.Equal(t, stored.OwnerName, r.OwnerName)
}

func TestNormalize_MalformedAmountCoercedToZero(t *testing.T) {
	r := Normalize(tx("Expense", "Food", "abc", "2024-03-01"))

	assert.False(t, r.AmountOK)
	assert.True(t, r.Amount.IsZero())
	// The record itself survives.
	assert.Equal(t, TypeExpense, r.Type)
	assert.True(t, r.DateOK)
}

func TestNormalize_NegativeAmountCoercedToZero(t *testing.T) {
	// Negative amounts are rejected at creation; a stored one can only be
	// legacy dirt, and sums must stay non-negative per record.
	r := Normalize(tx("Expense", "Food", "-50", "2024-03-01"))

	assert.False(t, r.AmountOK)
	assert.True(t, r.Amount.IsZero())
}

func TestNormalize_MalformedDateFlagged(t *testing.T) {
	tests := []struct {
		name string
		date string
	}{
		{"empty", ""},
		{"garbage", "not-a-date"},
		{"wrong layout", "15/01/2024"},
		{"impossible day", "2024-02-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Normalize(tx("Income", "Salary", "10", tt.date))
			assert.False(t, r.DateOK)
			// Amount is unaffected by the date failing.
			assert.True(t, r.AmountOK)
		})
	}
}

func TestNormalizeAll_PreservesOrderAndLength(t *testing.T) {
	batch := []models.Transaction{
		tx("Income", "Salary", "1", "2024-01-01"),
		tx("bogus", "Food", "abc", "nope"),
		tx("Expense", "Food", "2", "2024-02-01"),
	}

	records := NormalizeAll(batch)

	require.Len(t, records, 3)
	assert.Equal(t, batch[0].ID, records[0].ID)
	assert.Equal(t, batch[1].ID, records[1].ID)
	assert.Equal(t, batch[2].ID, records[2].ID)
	assert.Equal(t, TypeUnclassified, records[1].Type)
}
