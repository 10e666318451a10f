package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trackmyspend/expense_tracker_app/internal/core/domain"
)

func TestExpenseType_IsValid(t *testing.T) {
	tests := []struct {
		name string
		typ  domain.ExpenseType
		want bool
	}{
		{name: "income", typ: domain.Income, want: true},
		{name: "expense", typ: domain.Expense, want: true},
		{name: "empty", typ: domain.ExpenseType(""), want: false},
		{name: "lowercase income", typ: domain.ExpenseType("income"), want: false},
		{name: "lowercase expense", typ: domain.ExpenseType("expense"), want: false},
		{name: "unrelated value", typ: domain.ExpenseType("Transfer"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.IsValid())
		})
	}
}
