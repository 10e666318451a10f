package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseType mirrors domain.ExpenseType at the storage layer.
type ExpenseType string

const (
	TypeIncome  ExpenseType = "Income"
	TypeExpense ExpenseType = "Expense"
)

// Expense maps one row of the expenses table.
type Expense struct {
	ExpenseID string
	UserID    string
	Title     string
	Amount    decimal.Decimal
	Type      ExpenseType
	Category  string
	Date      time.Time
	AuditFields
}
