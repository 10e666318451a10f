package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/trackmyspend/expense_tracker_app/internal/core/domain"
	"github.com/trackmyspend/expense_tracker_app/internal/dto"
)

func TestListExpensesParams_ToExpenseFilter(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		params dto.ListExpensesParams
		want   domain.ExpenseFilter
	}{
		{
			name:   "no filters",
			params: dto.ListExpensesParams{},
			want:   domain.ExpenseFilter{},
		},
		{
			name:   "valid type passes through",
			params: dto.ListExpensesParams{Type: "Income"},
			want:   domain.ExpenseFilter{Type: domain.Income},
		},
		{
			name:   "unrecognized type is dropped, not rejected",
			params: dto.ListExpensesParams{Type: "Transfer", Category: "Food"},
			want:   domain.ExpenseFilter{Category: "Food"},
		},
		{
			name:   "lowercase type is dropped",
			params: dto.ListExpensesParams{Type: "income"},
			want:   domain.ExpenseFilter{},
		},
		{
			name:   "all filters combined",
			params: dto.ListExpensesParams{Type: "Expense", Category: "Food", StartDate: &start, EndDate: &end},
			want:   domain.ExpenseFilter{Type: domain.Expense, Category: "Food", DateFrom: &start, DateTo: &end},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.params.ToExpenseFilter())
		})
	}
}
