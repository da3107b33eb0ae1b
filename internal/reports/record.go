// Package reports implements the transaction aggregation and reporting
// engine. Every operation is a pure function over a caller-supplied record
// slice: the package holds no state between calls, performs no I/O, and
// never mutates its input, so concurrent use needs no locking.
package reports

import (
	"strings"
	"time"

	"finease-server/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Type is the closed classification of a record. It is produced once at
// normalization time; downstream aggregation never re-parses raw strings.
type Type string

const (
	TypeIncome       Type = "Income"
	TypeExpense      Type = "Expense"
	TypeUnclassified Type = "Unclassified"
)

// Classify maps a raw type string to the closed enumeration,
// case-insensitively. Unrecognized or missing types classify as
// Unclassified rather than failing: such records still count toward totals
// but contribute to neither income nor expense sums.
func Classify(rawType string) Type {
	switch strings.ToLower(strings.TrimSpace(rawType)) {
	case "income":
		return TypeIncome
	case "expense":
		return TypeExpense
	default:
		return TypeUnclassified
	}
}

// Record is the normalized form of a stored transaction the engine
// aggregates over. AmountOK and DateOK record whether the raw values
// parsed; a false flag never drops the record, it only excludes it from
// the computations that need the value.
type Record struct {
	ID          uuid.UUID
	Type        Type
	Category    string
	Amount      decimal.Decimal
	AmountOK    bool
	Date        time.Time
	DateOK      bool
	Description string
	OwnerEmail  string
	OwnerName   string
	CreatedAt   time.Time
}

// Normalize converts a stored transaction into an engine record.
//
// An amount that fails to parse, or parses negative, is coerced to zero and
// flagged, so it is excluded from every sum without being dropped from the
// collection. A date that fails to parse is flagged and excluded from
// month bucketing and month filtering only.
func Normalize(t models.Transaction) Record {
	r := Record{
		ID:          t.ID,
		Type:        Classify(t.Type),
		Category:    t.Category,
		Description: t.Description,
		OwnerEmail:  t.OwnerEmail,
		OwnerName:   t.OwnerName,
		CreatedAt:   t.CreatedAt,
	}

	if amount, err := decimal.NewFromString(strings.TrimSpace(t.Amount)); err == nil && !amount.IsNegative() {
		r.Amount = amount
		r.AmountOK = true
	} else {
		r.Amount = decimal.Zero
	}

	if date, err := time.Parse(models.DateLayout, t.Date); err == nil {
		r.Date = date
		r.DateOK = true
	}

	return r
}

// NormalizeAll normalizes a stored batch in order.
func NormalizeAll(transactions []models.Transaction) []Record {
	records := make([]Record, 0, len(transactions))
	for _, t := range transactions {
		records = append(records, Normalize(t))
	}
	return records
}
