package core

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	Checking AccountType = "checking"
	Credit   AccountType = "credit"

	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

type (
	AccountType     string
	TransactionType string

	// Money is an amount in cents. Transaction amounts are magnitudes;
	// the direction comes from the transaction type.
	Money struct {
		Cents int64 `json:"cents"`
	}

	Account struct {
		ID   string      `json:"id"`
		Name string      `json:"name"`
		Type AccountType `json:"type"`
	}

	BudgetCategory struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	// BudgetAllocation is a budgeted amount for one category in one month.
	// At most one allocation exists per (CategoryID, MonthKey) pair.
	BudgetAllocation struct {
		ID         string `json:"id"`
		CategoryID string `json:"categoryID"`
		MonthKey   string `json:"monthKey"` // "YYYY-MM"
		Amount     Money  `json:"amount"`
	}

	Transaction struct {
		ID             string          `json:"id"`
		Amount         Money           `json:"amount"`
		Purpose        string          `json:"purpose,omitempty"`
		Note           string          `json:"note,omitempty"`
		Type           TransactionType `json:"type"`
		AccountID      string          `json:"accountID,omitempty"`
		Date           time.Time       `json:"date"`
		CategoryID     string          `json:"categoryID,omitempty"`
		PaybackGroupID string          `json:"paybackGroupID,omitempty"`
	}
)

var (
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrEmptyName          = errors.New("empty name")
	ErrInvalidAccountType = errors.New("invalid account type")
	ErrInvalidType        = errors.New("invalid transaction type")
	ErrMissingAccount     = errors.New("missing account")
	ErrZeroDate           = errors.New("date cannot be zero")
)

// NewID returns a fresh entity identifier.
func NewID() string {
	return uuid.NewString()
}

// MonthKeyFunc derives the "YYYY-MM" bucket for a date. The ledger takes it as
// a dependency so a different calendar can be plugged in at the boundary.
type MonthKeyFunc func(time.Time) string

// MonthKeyFor is the default Gregorian month key derivation.
func MonthKeyFor(t time.Time) string {
	return t.Format("2006-01")
}

func (t AccountType) Valid() bool {
	return t == Checking || t == Credit
}

func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// Validate checks boundary input for an account. The ledger itself does not
// validate; callers are expected to run this before mutating.
func (a Account) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrEmptyName
	}
	if !a.Type.Valid() {
		return ErrInvalidAccountType
	}
	return nil
}

func (c BudgetCategory) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	return nil
}

// Validate checks boundary input for a transaction: positive magnitude, a
// known type, an account and a usable date.
func (tx Transaction) Validate() error {
	if tx.Amount.Cents <= 0 {
		return ErrInvalidAmount
	}
	if !tx.Type.Valid() {
		return ErrInvalidType
	}
	if tx.AccountID == "" {
		return ErrMissingAccount
	}
	if tx.Date.IsZero() {
		return ErrZeroDate
	}
	return nil
}
