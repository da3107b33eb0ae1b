package reports

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthsPerYear is the fixed length of every month-bucket series.
const MonthsPerYear = 12

// MonthBucket is one aggregation slot of a calendar-month series.
type MonthBucket struct {
	Month time.Month
	Label string
	Total decimal.Decimal
}

// BucketExpensesByMonth groups expense amounts into calendar-month buckets.
//
// The result always has exactly 12 buckets in Jan..Dec order; months without
// data report zero. Amounts from different years land in the same bucket:
// the series is an all-time by-month view, not a per-year one. Records
// without a parseable date are silently omitted here (they remain visible
// through Summary.InvalidDateCount).
func BucketExpensesByMonth(records []Record) []MonthBucket {
	buckets := make([]MonthBucket, MonthsPerYear)
	for i := range buckets {
		month := time.Month(i + 1)
		buckets[i] = MonthBucket{
			Month: month,
			Label: month.String()[:3],
			Total: decimal.Zero,
		}
	}

	for _, r := range records {
		if r.Type != TypeExpense || !r.DateOK {
			continue
		}
		idx := int(r.Date.Month()) - 1
		buckets[idx].Total = buckets[idx].Total.Add(r.Amount)
	}

	return buckets
}
