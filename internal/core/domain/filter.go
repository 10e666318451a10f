package domain

import "time"

// ExpenseFilter narrows a ledger listing. Zero values mean "no constraint";
// every supplied field is intersected with the others (AND semantics) and the
// query is always additionally scoped to the owning user.
type ExpenseFilter struct {
	Type     ExpenseType // Empty or invalid values are dropped before reaching the store
	Category string      // Exact match
	DateFrom *time.Time  // Inclusive lower bound on Date
	DateTo   *time.Time  // Inclusive upper bound on Date
}
