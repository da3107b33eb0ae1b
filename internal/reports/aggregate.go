package reports

import "github.com/shopspring/decimal"

var oneHundred = decimal.NewFromInt(100)

// Summary holds the scalar figures derived from a record set. Monetary and
// percentage fields keep full precision; presentation code rounds to two
// decimal places when rendering.
type Summary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal

	TransactionCount int
	IncomeCount      int
	ExpenseCount     int

	// SavingsRate and ExpenseRatio are percentages of total income.
	// Both are zero when there is no income: an income-free collection is a
	// valid state, not a division fault.
	SavingsRate  decimal.Decimal
	ExpenseRatio decimal.Decimal

	// Anomaly counts make the engine's lenient exclusions inspectable.
	// Unclassified records are counted in TransactionCount but in neither
	// income nor expense sums; invalid amounts are summed as zero; invalid
	// dates are excluded from month bucketing only.
	UnclassifiedCount  int
	InvalidAmountCount int
	InvalidDateCount   int
}

// Aggregate computes the summary figures for a record set in a single pass.
// It is deterministic for a given input and leaves the input untouched.
func Aggregate(records []Record) Summary {
	s := Summary{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		Balance:      decimal.Zero,
		SavingsRate:  decimal.Zero,
		ExpenseRatio: decimal.Zero,
	}

	for _, r := range records {
		s.TransactionCount++

		if !r.AmountOK {
			s.InvalidAmountCount++
		}
		if !r.DateOK {
			s.InvalidDateCount++
		}

		switch r.Type {
		case TypeIncome:
			s.IncomeCount++
			s.TotalIncome = s.TotalIncome.Add(r.Amount)
		case TypeExpense:
			s.ExpenseCount++
			s.TotalExpense = s.TotalExpense.Add(r.Amount)
		default:
			s.UnclassifiedCount++
		}
	}

	s.Balance = s.TotalIncome.Sub(s.TotalExpense)

	if s.TotalIncome.IsPositive() {
		s.SavingsRate = s.Balance.Div(s.TotalIncome).Mul(oneHundred)
		s.ExpenseRatio = s.TotalExpense.Div(s.TotalIncome).Mul(oneHundred)
	}

	return s
}
