package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthKeyFor(t *testing.T) {
	assert.Equal(t, "2025-03", MonthKeyFor(time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-12", MonthKeyFor(time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)))
	assert.Equal(t, "2026-01", MonthKeyFor(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestAccountValidate(t *testing.T) {
	valid := Account{Name: "Main", Type: Checking}
	require.NoError(t, valid.Validate())

	assert.ErrorIs(t, Account{Name: "", Type: Checking}.Validate(), ErrEmptyName)
	assert.ErrorIs(t, Account{Name: "   ", Type: Credit}.Validate(), ErrEmptyName)
	assert.ErrorIs(t, Account{Name: "Main", Type: "savings"}.Validate(), ErrInvalidAccountType)
}

func TestBudgetCategoryValidate(t *testing.T) {
	require.NoError(t, BudgetCategory{Name: "Groceries"}.Validate())
	assert.ErrorIs(t, BudgetCategory{Name: " "}.Validate(), ErrEmptyName)
}

func TestTransactionValidate(t *testing.T) {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	valid := Transaction{Amount: Money{Cents: 100}, Type: Expense, AccountID: "a1", Date: date}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name string
		tx   Transaction
		want error
	}{
		{"zero amount", Transaction{Type: Expense, AccountID: "a1", Date: date}, ErrInvalidAmount},
		{"negative amount", Transaction{Amount: Money{Cents: -1}, Type: Expense, AccountID: "a1", Date: date}, ErrInvalidAmount},
		{"bad type", Transaction{Amount: Money{Cents: 100}, Type: "transfer", AccountID: "a1", Date: date}, ErrInvalidType},
		{"no account", Transaction{Amount: Money{Cents: 100}, Type: Income, Date: date}, ErrMissingAccount},
		{"zero date", Transaction{Amount: Money{Cents: 100}, Type: Income, AccountID: "a1"}, ErrZeroDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.tx.Validate(), tt.want)
		})
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		require.NotEmpty(t, id)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
