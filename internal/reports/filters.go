package reports

import "time"

// Predicate decides whether a record passes a filter dimension. Filters
// compose polymorphically: a new dimension is a new Predicate, with no
// change to existing ones.
type Predicate func(Record) bool

// ByMonth passes records whose date falls in the given calendar month,
// regardless of year. Records without a parseable date never match a month
// filter.
func ByMonth(month time.Month) Predicate {
	return func(r Record) bool {
		return r.DateOK && r.Date.Month() == month
	}
}

// ByCategory passes records whose category matches exactly
// (case-sensitive).
func ByCategory(category string) Predicate {
	return func(r Record) bool {
		return r.Category == category
	}
}

// ByType passes records of the given classification.
func ByType(t Type) Predicate {
	return func(r Record) bool {
		return r.Type == t
	}
}

// ByOwner passes records belonging to the given owner email.
func ByOwner(email string) Predicate {
	return func(r Record) bool {
		return r.OwnerEmail == email
	}
}

// Apply returns the records that satisfy every predicate (AND semantics).
// With no predicates the input is returned unchanged. The input slice is
// never mutated.
func Apply(records []Record, predicates ...Predicate) []Record {
	if len(predicates) == 0 {
		return records
	}

	filtered := make([]Record, 0, len(records))
	for _, r := range records {
		if matchesAll(r, predicates) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func matchesAll(r Record, predicates []Predicate) bool {
	for _, p := range predicates {
		if !p(r) {
			return false
		}
	}
	return true
}

// Filters is the wire-level filter configuration for ad-hoc reports.
// Month uses the 0-11 index the frontend sends. Each criterion is
// independently optional; absence means no constraint on that dimension.
type Filters struct {
	Month    *int
	Category string
}

// Predicates compiles the configured criteria into a predicate list for
// Apply.
func (f Filters) Predicates() []Predicate {
	var predicates []Predicate

	if f.Month != nil {
		predicates = append(predicates, ByMonth(time.Month(*f.Month+1)))
	}
	if f.Category != "" {
		predicates = append(predicates, ByCategory(f.Category))
	}

	return predicates
}

// IsZero reports whether no criteria are set.
func (f Filters) IsZero() bool {
	return f.Month == nil && f.Category == ""
}
