package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome  = "Income"
	TransactionTypeExpense = "Expense"

	// DateLayout is the calendar-date format records are ingested with.
	DateLayout = "2006-01-02"
)

var (
	ErrUnrecognizedType = errors.New("transaction type must be Income or Expense")
	ErrMissingCategory  = errors.New("transaction category is required")
	ErrInvalidAmount    = errors.New("transaction amount must be a valid number")
	ErrNegativeAmount   = errors.New("transaction amount must not be negative")
	ErrInvalidDate      = errors.New("transaction date must be a valid calendar date (YYYY-MM-DD)")
	ErrMissingOwner     = errors.New("transaction owner email is required")
)

// Transaction is a single income or expense entry as stored.
//
// Amount and Date hold the raw strings supplied at ingestion. Rows created
// through the API are validated first, but imported legacy rows may carry
// values that no longer parse; the reporting engine tolerates those instead
// of dropping the row (see internal/reports).
type Transaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Type        string    `gorm:"type:varchar(20);not null" json:"type"`
	Category    string    `gorm:"type:varchar(100);not null;index" json:"category"`
	Amount      string    `gorm:"type:varchar(32);not null" json:"amount"`
	Date        string    `gorm:"type:varchar(32);not null" json:"date"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	OwnerEmail  string    `gorm:"type:varchar(255);not null;index" json:"user_email"`
	OwnerName   string    `gorm:"type:varchar(255)" json:"user_name"`
	CreatedAt   time.Time `gorm:"not null;index" json:"created_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}

	if canonical, ok := NormalizeTransactionType(t.Type); ok {
		t.Type = canonical
	}

	return t.Validate()
}

// Validate enforces the creation-time rules. Records failing these rules are
// rejected before they ever enter the collection; the lenient parse-or-flag
// path in internal/reports only applies to rows already stored.
func (t *Transaction) Validate() error {
	if _, ok := NormalizeTransactionType(t.Type); !ok {
		return ErrUnrecognizedType
	}

	if strings.TrimSpace(t.Category) == "" {
		return ErrMissingCategory
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(t.Amount))
	if err != nil {
		return ErrInvalidAmount
	}
	if amount.IsNegative() {
		return ErrNegativeAmount
	}

	if _, err := time.Parse(DateLayout, t.Date); err != nil {
		return ErrInvalidDate
	}

	if t.OwnerEmail == "" {
		return ErrMissingOwner
	}

	return nil
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// NormalizeTransactionType matches a raw type string case-insensitively and
// returns its canonical casing. The boolean is false for anything that is
// neither income nor expense.
func NormalizeTransactionType(raw string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "income":
		return TransactionTypeIncome, true
	case "expense":
		return TransactionTypeExpense, true
	default:
		return "", false
	}
}

// IsValidTransactionType checks if the transaction type is recognized
func IsValidTransactionType(raw string) bool {
	_, ok := NormalizeTransactionType(raw)
	return ok
}

// ExpenseCategories is the category vocabulary the frontend offers for
// expense entries. The column itself is an unconstrained string; these are
// defaults, not an allow-list.
var ExpenseCategories = []string{
	"Home", "Food", "Transportation", "Health", "Personal", "Education",
	"Technology", "Entertainment", "Family", "Others",
}

// IncomeCategories is the default category vocabulary for income entries.
var IncomeCategories = []string{"Salary", "Pocket Money", "Business", "Tutoring"}
