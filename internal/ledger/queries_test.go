package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhar7/IncomeTracker/internal/core"
	"github.com/dhar7/IncomeTracker/internal/snapshot"
)

func TestBalanceForAccountIsolated(t *testing.T) {
	s := New(snapshot.Data{})
	a := s.AddAccount("Main", core.Checking)
	b := s.AddAccount("Second", core.Checking)

	s.Add(income(a.ID, 10000, day(1)))
	s.Add(expense(a.ID, 2500, day(2)))
	s.Add(income(b.ID, 777, day(3)))

	assert.Equal(t, int64(7500), s.BalanceForAccount(a.ID).Cents)
	assert.Equal(t, int64(777), s.BalanceForAccount(b.ID).Cents)
	assert.Zero(t, s.BalanceForAccount("ghost").Cents)
}

func TestTotalForAccountType(t *testing.T) {
	s := New(snapshot.Data{})
	a := s.AddAccount("Main", core.Checking)
	b := s.AddAccount("Second", core.Checking)
	v := s.AddAccount("Visa", core.Credit)

	s.Add(income(a.ID, 1000, day(1)))
	s.Add(income(b.ID, 500, day(1)))
	s.Add(expense(v.ID, 300, day(1)))

	assert.Equal(t, int64(1500), s.TotalForAccountType(core.Checking).Cents)
	assert.Equal(t, int64(-300), s.TotalForAccountType(core.Credit).Cents)
}

func TestDueAmountFlooredAtZero(t *testing.T) {
	s := New(snapshot.Data{})
	v := s.AddAccount("Visa", core.Credit)

	s.Add(expense(v.ID, 5000, day(1)))
	assert.Equal(t, int64(5000), s.DueAmountForCreditAccount(v.ID).Cents)

	s.Add(income(v.ID, 3000, day(2)))
	assert.Equal(t, int64(2000), s.DueAmountForCreditAccount(v.ID).Cents)

	// over-payment floors at zero instead of going negative
	s.Add(income(v.ID, 9000, day(3)))
	assert.Zero(t, s.DueAmountForCreditAccount(v.ID).Cents)
}

func TestTotalOweBalance(t *testing.T) {
	s := New(snapshot.Data{})
	v1 := s.AddAccount("Visa", core.Credit)
	v2 := s.AddAccount("Amex", core.Credit)
	v3 := s.AddAccount("Master", core.Credit)

	s.Add(expense(v1.ID, 1000, day(1)))
	s.Add(expense(v2.ID, 2000, day(1)))
	// v3 overpaid: its floor contributes zero rather than reducing the total
	s.Add(expense(v3.ID, 100, day(1)))
	s.Add(income(v3.ID, 900, day(2)))

	assert.Equal(t, int64(3000), s.TotalOweBalance().Cents)
}

func TestSpentForCategoryMonth(t *testing.T) {
	s := New(snapshot.Data{})
	a := s.AddAccount("Main", core.Checking)
	c := s.AddCategory("Groceries")

	tx1 := expense(a.ID, 1500, day(5))
	tx1.CategoryID = c.ID
	s.Add(tx1)

	tx2 := expense(a.ID, 2500, day(20))
	tx2.CategoryID = c.ID
	s.Add(tx2)

	// other month
	tx3 := expense(a.ID, 9999, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))
	tx3.CategoryID = c.ID
	s.Add(tx3)

	// income in the category never counts as spending
	in := income(a.ID, 5000, day(6))
	in.CategoryID = c.ID
	s.Add(in)

	// uncategorized
	s.Add(expense(a.ID, 100, day(7)))

	assert.Equal(t, int64(4000), s.SpentForCategoryMonth(c.ID, "2025-06").Cents)
	assert.Equal(t, int64(9999), s.SpentForCategoryMonth(c.ID, "2025-07").Cents)
	assert.Zero(t, s.SpentForCategoryMonth(c.ID, "2025-08").Cents)
}

func TestRemainingDistinguishesAbsenceFromZero(t *testing.T) {
	s := New(snapshot.Data{})
	a := s.AddAccount("Main", core.Checking)
	c := s.AddCategory("Groceries")

	tx := expense(a.ID, 4000, day(5))
	tx.CategoryID = c.ID
	s.Add(tx)

	// spending exists but no allocation: remaining must be absent, not zero
	_, ok := s.RemainingForCategoryMonth(c.ID, "2025-06")
	assert.False(t, ok)
	assert.False(t, s.IsCategoryOverBudget(c.ID, "2025-06"))

	s.SetBudget(c.ID, "2025-06", core.Money{Cents: 10000})
	remaining, ok := s.RemainingForCategoryMonth(c.ID, "2025-06")
	require.True(t, ok)
	assert.Equal(t, int64(6000), remaining.Cents)

	// overspend: remaining goes negative and the flag trips
	tx2 := expense(a.ID, 7000, day(6))
	tx2.CategoryID = c.ID
	s.Add(tx2)

	remaining, ok = s.RemainingForCategoryMonth(c.ID, "2025-06")
	require.True(t, ok)
	assert.Equal(t, int64(-1000), remaining.Cents)
	assert.True(t, s.IsCategoryOverBudget(c.ID, "2025-06"))
}

func TestOverBudgetRequiresStrictOverspend(t *testing.T) {
	s := New(snapshot.Data{})
	a := s.AddAccount("Main", core.Checking)
	c := s.AddCategory("Fun")
	s.SetBudget(c.ID, "2025-06", core.Money{Cents: 1000})

	tx := expense(a.ID, 1000, day(1))
	tx.CategoryID = c.ID
	s.Add(tx)

	// spending exactly the budget is not over
	assert.False(t, s.IsCategoryOverBudget(c.ID, "2025-06"))
}

func TestPaybackAdjustsBothSides(t *testing.T) {
	s := New(snapshot.Data{})
	checking := s.AddAccount("Main", core.Checking)
	visa := s.AddAccount("Visa", core.Credit)

	s.Add(expense(visa.ID, 5000, day(1)))
	require.Equal(t, int64(5000), s.DueAmountForCreditAccount(visa.ID).Cents)

	s.RecordPayback(core.Money{Cents: 3000}, checking.ID, visa.ID, "", day(2))

	assert.Equal(t, int64(2000), s.DueAmountForCreditAccount(visa.ID).Cents)
	assert.Equal(t, int64(-3000), s.BalanceForAccount(checking.ID).Cents)

	// deleting the payback restores both derived values
	var legID string
	for _, tx := range s.Transactions() {
		if tx.PaybackGroupID != "" {
			legID = tx.ID
			break
		}
	}
	s.Delete(legID)

	assert.Equal(t, int64(5000), s.DueAmountForCreditAccount(visa.ID).Cents)
	assert.Zero(t, s.BalanceForAccount(checking.ID).Cents)
}

func TestTotalsAcrossAccounts(t *testing.T) {
	s := New(snapshot.Data{})
	a := s.AddAccount("Main", core.Checking)
	v := s.AddAccount("Visa", core.Credit)

	s.Add(income(a.ID, 10000, day(1)))
	s.Add(expense(a.ID, 1500, day(2)))
	s.Add(expense(v.ID, 2500, day(3)))

	assert.Equal(t, int64(10000), s.TotalIncome().Cents)
	assert.Equal(t, int64(4000), s.TotalExpense().Cents)
	assert.Equal(t, int64(6000), s.Balance().Cents)
}

func TestTransactionsInRangeInclusiveAscending(t *testing.T) {
	s := New(snapshot.Data{})
	a := s.AddAccount("Main", core.Checking)
	s.Add(expense(a.ID, 1, day(1)))
	s.Add(expense(a.ID, 2, day(5)))
	s.Add(expense(a.ID, 3, day(10)))
	s.Add(expense(a.ID, 4, day(20)))

	got := s.TransactionsInRange(day(5), day(10))
	require.Len(t, got, 2)
	assert.Equal(t, day(5), got[0].Date)
	assert.Equal(t, day(10), got[1].Date)
}

func TestBalanceAsOfInclusiveCutoff(t *testing.T) {
	s := New(snapshot.Data{})
	a := s.AddAccount("Main", core.Checking)
	s.Add(income(a.ID, 1000, day(1)))
	s.Add(expense(a.ID, 300, day(5)))
	s.Add(expense(a.ID, 999, day(10)))

	assert.Equal(t, int64(700), s.BalanceAsOf(day(5)).Cents)
	assert.Equal(t, int64(1000), s.BalanceAsOf(day(4)).Cents)
	assert.Equal(t, int64(-299), s.BalanceAsOf(day(30)).Cents)
}

func TestWithMonthKeyOverride(t *testing.T) {
	// a fiscal calendar shifted one month forward
	fiscal := func(tt time.Time) string { return tt.AddDate(0, 1, 0).Format("2006-01") }
	s := New(snapshot.Data{}, WithMonthKey(fiscal))
	a := s.AddAccount("Main", core.Checking)
	c := s.AddCategory("Groceries")

	tx := expense(a.ID, 500, day(15))
	tx.CategoryID = c.ID
	s.Add(tx)

	assert.Zero(t, s.SpentForCategoryMonth(c.ID, "2025-06").Cents)
	assert.Equal(t, int64(500), s.SpentForCategoryMonth(c.ID, "2025-07").Cents)
}
