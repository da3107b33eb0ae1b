package reports

import "github.com/shopspring/decimal"

// CategoryTotalItem is one slice of a per-category expense breakdown.
type CategoryTotalItem struct {
	Category string
	Total    decimal.Decimal
}

// ExpensesByCategory sums expense amounts per category, in first-seen
// order, for pie-chart style breakdowns. Income and unclassified records
// are ignored.
func ExpensesByCategory(records []Record) []CategoryTotalItem {
	index := make(map[string]int)
	var breakdown []CategoryTotalItem

	for _, r := range records {
		if r.Type != TypeExpense {
			continue
		}

		i, seen := index[r.Category]
		if !seen {
			i = len(breakdown)
			index[r.Category] = i
			breakdown = append(breakdown, CategoryTotalItem{Category: r.Category, Total: decimal.Zero})
		}
		breakdown[i].Total = breakdown[i].Total.Add(r.Amount)
	}

	return breakdown
}

// CategoryTotal computes the lifetime sum for one owner/category pair across
// the whole record set, independent of any active report filters. A pair
// with no matching records yields zero, not an error.
func CategoryTotal(records []Record, ownerEmail, category string) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		if r.OwnerEmail == ownerEmail && r.Category == category {
			total = total.Add(r.Amount)
		}
	}
	return total
}
