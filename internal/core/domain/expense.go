package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseType indicates whether a ledger entry is money coming in or going out.
type ExpenseType string

const (
	Income  ExpenseType = "Income"
	Expense ExpenseType = "Expense"
)

// IsValid reports whether the type is one of the two accepted values.
func (t ExpenseType) IsValid() bool {
	return t == Income || t == Expense
}

// MaxTitleLength and MaxCategoryLength bound the free-form string fields.
const (
	MaxTitleLength    = 100
	MaxCategoryLength = 50
)

// ExpenseEntry represents a single income or expense transaction in a user's ledger.
type ExpenseEntry struct {
	ExpenseID string          `json:"expenseID"` // Primary key (UUID), assigned on creation
	UserID    string          `json:"userID"`    // Owning user, set once, never mutated
	Title     string          `json:"title"`     // Non-empty, trimmed, at most MaxTitleLength
	Amount    decimal.Decimal `json:"amount"`    // Strictly positive
	Type      ExpenseType     `json:"type"`      // Income or Expense
	Category  string          `json:"category"`  // Non-empty, trimmed, free-form, at most MaxCategoryLength
	Date      time.Time       `json:"date"`      // When the transaction occurred
	AuditFields
}
