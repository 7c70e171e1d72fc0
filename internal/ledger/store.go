// Package ledger is the in-memory ledger and budget engine.
//
// One Store owns the four collections (accounts, transactions, categories,
// budget allocations) and is the only mutation path. Mutations run to
// completion under a single lock, then notify observers; persistence is one
// of those observers and happens in the background. The engine performs no
// input validation; cascade rules are the only integrity enforcement, and
// product-level guards live at the boundary (see internal/http).
package ledger

import (
	"sync"
	"time"

	"github.com/dhar7/IncomeTracker/internal/core"
	"github.com/dhar7/IncomeTracker/internal/events"
	"github.com/dhar7/IncomeTracker/internal/snapshot"
)

type Store struct {
	mu          sync.Mutex
	accounts    []core.Account
	items       []core.Transaction
	categories  []core.BudgetCategory
	allocations []core.BudgetAllocation

	monthKey  core.MonthKeyFunc
	observers []func(events.Event)
}

type Option func(*Store)

// WithMonthKey replaces the calendar used to bucket budgets and spending.
func WithMonthKey(fn core.MonthKeyFunc) Option {
	return func(s *Store) { s.monthKey = fn }
}

// New builds a Store seeded from a snapshot. Transactions are re-sorted by
// date descending regardless of the order they were stored in.
func New(seed snapshot.Data, opts ...Option) *Store {
	s := &Store{
		accounts:    append([]core.Account(nil), seed.Accounts...),
		items:       append([]core.Transaction(nil), seed.Items...),
		categories:  append([]core.BudgetCategory(nil), seed.Categories...),
		allocations: append([]core.BudgetAllocation(nil), seed.Allocations...),
		monthKey:    core.MonthKeyFor,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.sortItems()
	return s
}

// OnChange registers an observer invoked after every committed mutation.
// Observers run outside the store lock, in registration order. Register
// everything before the first mutation; registration is not synchronized
// with concurrent writes.
func (s *Store) OnChange(fn func(events.Event)) {
	s.observers = append(s.observers, fn)
}

// Snapshot returns a copy of the full state, safe to serialize concurrently
// with later mutations.
func (s *Store) Snapshot() snapshot.Data {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot.Data{
		Accounts:    append([]core.Account(nil), s.accounts...),
		Items:       append([]core.Transaction(nil), s.items...),
		Categories:  append([]core.BudgetCategory(nil), s.categories...),
		Allocations: append([]core.BudgetAllocation(nil), s.allocations...),
	}
}

func (s *Store) notify(evs ...events.Event) {
	for _, ev := range evs {
		for _, fn := range s.observers {
			fn(ev)
		}
	}
}

// sortItems keeps the observable ordering: newest first. Callers hold the lock.
func (s *Store) sortItems() {
	sortTransactionsDesc(s.items)
}

// --- Accounts ---

func (s *Store) AddAccount(name string, typ core.AccountType) core.Account {
	a := core.Account{ID: core.NewID(), Name: name, Type: typ}
	s.mu.Lock()
	s.accounts = append(s.accounts, a)
	s.mu.Unlock()
	s.notify(events.New(events.EntityAccount, events.OpCreated, a.ID))
	return a
}

// UpdateAccount replaces the stored account with the same ID. Unknown IDs are
// a silent no-op.
func (s *Store) UpdateAccount(a core.Account) {
	s.mu.Lock()
	found := false
	for i := range s.accounts {
		if s.accounts[i].ID == a.ID {
			s.accounts[i] = a
			found = true
			break
		}
	}
	s.mu.Unlock()
	if found {
		s.notify(events.New(events.EntityAccount, events.OpUpdated, a.ID))
	}
}

// DeleteAccount removes the account and every transaction referencing it, so
// no transaction is left pointing at a deleted account.
func (s *Store) DeleteAccount(id string) {
	s.mu.Lock()
	before := len(s.accounts)
	s.accounts = deleteFunc(s.accounts, func(a core.Account) bool { return a.ID == id })
	if len(s.accounts) == before {
		s.mu.Unlock()
		return
	}
	s.items = deleteFunc(s.items, func(t core.Transaction) bool { return t.AccountID == id })
	s.mu.Unlock()
	s.notify(events.New(events.EntityAccount, events.OpDeleted, id))
}

// --- Categories & allocations ---

func (s *Store) AddCategory(name string) core.BudgetCategory {
	c := core.BudgetCategory{ID: core.NewID(), Name: name}
	s.mu.Lock()
	s.categories = append(s.categories, c)
	s.mu.Unlock()
	s.notify(events.New(events.EntityCategory, events.OpCreated, c.ID))
	return c
}

func (s *Store) UpdateCategory(c core.BudgetCategory) {
	s.mu.Lock()
	found := false
	for i := range s.categories {
		if s.categories[i].ID == c.ID {
			s.categories[i] = c
			found = true
			break
		}
	}
	s.mu.Unlock()
	if found {
		s.notify(events.New(events.EntityCategory, events.OpUpdated, c.ID))
	}
}

// DeleteCategory removes the category's allocations and clears the category
// reference on transactions that pointed at it. The transactions survive.
func (s *Store) DeleteCategory(id string) {
	s.mu.Lock()
	before := len(s.categories)
	s.categories = deleteFunc(s.categories, func(c core.BudgetCategory) bool { return c.ID == id })
	if len(s.categories) == before {
		s.mu.Unlock()
		return
	}
	s.allocations = deleteFunc(s.allocations, func(a core.BudgetAllocation) bool { return a.CategoryID == id })
	for i := range s.items {
		if s.items[i].CategoryID == id {
			s.items[i].CategoryID = ""
		}
	}
	s.mu.Unlock()
	s.notify(events.New(events.EntityCategory, events.OpDeleted, id))
}

// SetBudget upserts the allocation for (categoryID, monthKey): an existing
// pair has its amount overwritten in place, never duplicated. Amount is not
// validated here; the boundary guards against non-positive budgets.
func (s *Store) SetBudget(categoryID, monthKey string, amount core.Money) {
	s.mu.Lock()
	var ev events.Event
	updated := false
	for i := range s.allocations {
		if s.allocations[i].CategoryID == categoryID && s.allocations[i].MonthKey == monthKey {
			s.allocations[i].Amount = amount
			ev = events.New(events.EntityAllocation, events.OpUpdated, s.allocations[i].ID)
			updated = true
			break
		}
	}
	if !updated {
		a := core.BudgetAllocation{ID: core.NewID(), CategoryID: categoryID, MonthKey: monthKey, Amount: amount}
		s.allocations = append(s.allocations, a)
		ev = events.New(events.EntityAllocation, events.OpCreated, a.ID)
	}
	s.mu.Unlock()
	s.notify(ev)
}

func (s *Store) DeleteAllocation(id string) {
	s.mu.Lock()
	before := len(s.allocations)
	s.allocations = deleteFunc(s.allocations, func(a core.BudgetAllocation) bool { return a.ID == id })
	removed := len(s.allocations) != before
	s.mu.Unlock()
	if removed {
		s.notify(events.New(events.EntityAllocation, events.OpDeleted, id))
	}
}

// --- Transactions ---

// Add inserts a transaction, assigning an ID if the caller did not. The
// descending-date order is re-established afterward.
func (s *Store) Add(tx core.Transaction) core.Transaction {
	if tx.ID == "" {
		tx.ID = core.NewID()
	}
	s.mu.Lock()
	s.items = append(s.items, tx)
	s.sortItems()
	s.mu.Unlock()
	s.notify(events.New(events.EntityTransaction, events.OpCreated, tx.ID))
	return tx
}

// AddBatch inserts several transactions as a single mutation: one lock, one
// re-sort, one persistence trigger. The payback pair relies on this so no
// half-pair is ever observable.
func (s *Store) AddBatch(txs ...core.Transaction) {
	if len(txs) == 0 {
		return
	}
	evs := make([]events.Event, 0, len(txs))
	s.mu.Lock()
	for i := range txs {
		if txs[i].ID == "" {
			txs[i].ID = core.NewID()
		}
		s.items = append(s.items, txs[i])
		evs = append(evs, events.New(events.EntityTransaction, events.OpCreated, txs[i].ID))
	}
	s.sortItems()
	s.mu.Unlock()
	s.notify(evs...)
}

func (s *Store) Update(tx core.Transaction) {
	s.mu.Lock()
	found := false
	for i := range s.items {
		if s.items[i].ID == tx.ID {
			s.items[i] = tx
			found = true
			break
		}
	}
	if found {
		s.sortItems()
	}
	s.mu.Unlock()
	if found {
		s.notify(events.New(events.EntityTransaction, events.OpUpdated, tx.ID))
	}
}

// Delete removes a transaction by ID. If it is half of a payback pair, every
// transaction sharing its group goes with it: deleting one half must never
// leave a dangling unmatched half. Unknown IDs are a silent no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	var target *core.Transaction
	for i := range s.items {
		if s.items[i].ID == id {
			target = &s.items[i]
			break
		}
	}
	if target == nil {
		s.mu.Unlock()
		return
	}

	var removed []string
	if group := target.PaybackGroupID; group != "" {
		for _, t := range s.items {
			if t.PaybackGroupID == group {
				removed = append(removed, t.ID)
			}
		}
		s.items = deleteFunc(s.items, func(t core.Transaction) bool { return t.PaybackGroupID == group })
	} else {
		removed = []string{id}
		s.items = deleteFunc(s.items, func(t core.Transaction) bool { return t.ID == id })
	}
	s.mu.Unlock()

	evs := make([]events.Event, 0, len(removed))
	for _, rid := range removed {
		evs = append(evs, events.New(events.EntityTransaction, events.OpDeleted, rid))
	}
	s.notify(evs...)
}

// --- Payback ---

// RecordPayback creates the linked pair: an expense leg on the checking
// account and an income leg on the credit account, same amount, date, note
// and group ID, both without a category. Precondition checks (positive
// amount, amount within checking balance and credit due) are the caller's
// responsibility; the engine creates the pair unconditionally. Returns the
// group ID.
func (s *Store) RecordPayback(amount core.Money, fromCheckingID, toCreditID, note string, date time.Time) string {
	groupID := core.NewID()
	toName := s.accountNameOr(toCreditID, "Credit")
	fromName := s.accountNameOr(fromCheckingID, "Checking")

	expense := core.Transaction{
		ID:             core.NewID(),
		Amount:         amount,
		Purpose:        "Payback to " + toName,
		Note:           note,
		Type:           core.Expense,
		AccountID:      fromCheckingID,
		Date:           date,
		PaybackGroupID: groupID,
	}
	income := core.Transaction{
		ID:             core.NewID(),
		Amount:         amount,
		Purpose:        "Payment from " + fromName,
		Note:           note,
		Type:           core.Income,
		AccountID:      toCreditID,
		Date:           date,
		PaybackGroupID: groupID,
	}

	s.AddBatch(expense, income)
	return groupID
}

func (s *Store) accountNameOr(id, fallback string) string {
	if name, ok := s.AccountName(id); ok && name != "" {
		return name
	}
	return fallback
}

// deleteFunc returns s without the elements matching del, preserving order.
func deleteFunc[T any](s []T, del func(T) bool) []T {
	out := s[:0]
	for _, v := range s {
		if !del(v) {
			out = append(out, v)
		}
	}
	// clear the tail so removed values don't linger
	var zero T
	for i := len(out); i < len(s); i++ {
		s[i] = zero
	}
	return out
}
