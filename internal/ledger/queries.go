package ledger

import (
	"time"

	"github.com/dhar7/IncomeTracker/internal/core"
)

// Derived values are pure reads over current state: every query takes the
// lock, scans the flat collections and returns copies. Nothing here mutates.

// Accounts returns a copy of all accounts.
func (s *Store) Accounts() []core.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Account(nil), s.accounts...)
}

// Account looks up one account by ID.
func (s *Store) Account(id string) (core.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.ID == id {
			return a, true
		}
	}
	return core.Account{}, false
}

func (s *Store) CheckingAccounts() []core.Account {
	return s.accountsOfType(core.Checking)
}

func (s *Store) CreditAccounts() []core.Account {
	return s.accountsOfType(core.Credit)
}

func (s *Store) accountsOfType(typ core.AccountType) []core.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []core.Account
	for _, a := range s.accounts {
		if a.Type == typ {
			out = append(out, a)
		}
	}
	return out
}

// AccountName resolves an account's display name. ok is false when the
// account does not exist (it may have been deleted independently).
func (s *Store) AccountName(id string) (string, bool) {
	a, ok := s.Account(id)
	return a.Name, ok
}

// Categories returns a copy of all categories.
func (s *Store) Categories() []core.BudgetCategory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.BudgetCategory(nil), s.categories...)
}

func (s *Store) CategoryName(id string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if c.ID == id {
			return c.Name, true
		}
	}
	return "", false
}

// Allocations returns a copy of all budget allocations.
func (s *Store) Allocations() []core.BudgetAllocation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.BudgetAllocation(nil), s.allocations...)
}

// Transactions returns a copy of all transactions, newest first.
func (s *Store) Transactions() []core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Transaction(nil), s.items...)
}

// Transaction looks up one transaction by ID.
func (s *Store) Transaction(id string) (core.Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.items {
		if t.ID == id {
			return t, true
		}
	}
	return core.Transaction{}, false
}

// BudgetFor returns the budgeted amount for (categoryID, monthKey). ok is
// false when no allocation exists; absence is distinct from a zero budget.
func (s *Store) BudgetFor(categoryID, monthKey string) (core.Money, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.allocations {
		if a.CategoryID == categoryID && a.MonthKey == monthKey {
			return a.Amount, true
		}
	}
	return core.Money{}, false
}

// BalanceForAccount is income minus expense over exactly the transactions
// carrying that account ID.
func (s *Store) BalanceForAccount(id string) core.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	var cents int64
	for _, t := range s.items {
		if t.AccountID != id {
			continue
		}
		if t.Type == core.Income {
			cents += t.Amount.Cents
		} else {
			cents -= t.Amount.Cents
		}
	}
	return core.Money{Cents: cents}
}

// TotalForAccountType sums balances across all accounts of the given type.
func (s *Store) TotalForAccountType(typ core.AccountType) core.Money {
	var cents int64
	for _, a := range s.accountsOfType(typ) {
		cents += s.BalanceForAccount(a.ID).Cents
	}
	return core.Money{Cents: cents}
}

// DueAmountForCreditAccount is total expenses minus total payments (incomes)
// on the account, floored at zero: an over-payment silently absorbs the
// excess rather than producing a credit balance.
func (s *Store) DueAmountForCreditAccount(id string) core.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	var expenses, payments int64
	for _, t := range s.items {
		if t.AccountID != id {
			continue
		}
		if t.Type == core.Expense {
			expenses += t.Amount.Cents
		} else {
			payments += t.Amount.Cents
		}
	}
	if due := expenses - payments; due > 0 {
		return core.Money{Cents: due}
	}
	return core.Money{}
}

// TotalOweBalance sums due amounts across all credit accounts.
func (s *Store) TotalOweBalance() core.Money {
	var cents int64
	for _, a := range s.CreditAccounts() {
		cents += s.DueAmountForCreditAccount(a.ID).Cents
	}
	return core.Money{Cents: cents}
}

// SpentForCategoryMonth totals expense transactions in the category whose
// date falls into the month bucket. Incomes never count as spending.
func (s *Store) SpentForCategoryMonth(categoryID, monthKey string) core.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	var cents int64
	for _, t := range s.items {
		if t.CategoryID == categoryID && t.Type == core.Expense && s.monthKey(t.Date) == monthKey {
			cents += t.Amount.Cents
		}
	}
	return core.Money{Cents: cents}
}

// RemainingForCategoryMonth is budget minus spent. ok is false when no
// allocation exists for the pair; callers must keep "no budget" distinct
// from a remaining amount of zero.
func (s *Store) RemainingForCategoryMonth(categoryID, monthKey string) (core.Money, bool) {
	budget, ok := s.BudgetFor(categoryID, monthKey)
	if !ok {
		return core.Money{}, false
	}
	spent := s.SpentForCategoryMonth(categoryID, monthKey)
	return core.Money{Cents: budget.Cents - spent.Cents}, true
}

// IsCategoryOverBudget reports spent > budget. A category without an
// allocation is never over budget.
func (s *Store) IsCategoryOverBudget(categoryID, monthKey string) bool {
	budget, ok := s.BudgetFor(categoryID, monthKey)
	if !ok {
		return false
	}
	return s.SpentForCategoryMonth(categoryID, monthKey).Cents > budget.Cents
}

// TotalIncome is the sum of all income transactions across accounts.
func (s *Store) TotalIncome() core.Money {
	return s.totalOfType(core.Income)
}

// TotalExpense is the sum of all expense transactions across accounts.
func (s *Store) TotalExpense() core.Money {
	return s.totalOfType(core.Expense)
}

// Balance is total income minus total expense.
func (s *Store) Balance() core.Money {
	return core.Money{Cents: s.TotalIncome().Cents - s.TotalExpense().Cents}
}

func (s *Store) totalOfType(typ core.TransactionType) core.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	var cents int64
	for _, t := range s.items {
		if t.Type == typ {
			cents += t.Amount.Cents
		}
	}
	return core.Money{Cents: cents}
}

// TransactionsInRange returns transactions dated within [start, end]
// inclusive, sorted ascending by date, the order report renderers consume.
func (s *Store) TransactionsInRange(start, end time.Time) []core.Transaction {
	s.mu.Lock()
	var out []core.Transaction
	for _, t := range s.items {
		if !t.Date.Before(start) && !t.Date.After(end) {
			out = append(out, t)
		}
	}
	s.mu.Unlock()
	sortTransactionsAsc(out)
	return out
}

// BalanceAsOf is income minus expense over every transaction dated up to and
// including the cutoff, across all accounts.
func (s *Store) BalanceAsOf(cutoff time.Time) core.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	var cents int64
	for _, t := range s.items {
		if t.Date.After(cutoff) {
			continue
		}
		if t.Type == core.Income {
			cents += t.Amount.Cents
		} else {
			cents -= t.Amount.Cents
		}
	}
	return core.Money{Cents: cents}
}
