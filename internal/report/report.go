// Package report builds running-balance ledgers over a date range.
//
// The engine only supplies read queries; the presentation rule for payback
// pairs lives here: the credit-side leg is suppressed and the checking-side
// leg is labeled "Payback" instead of "Expense".
package report

import (
	"time"

	"github.com/dhar7/IncomeTracker/internal/core"
)

// Source is the read-only slice of the engine the builder consumes.
type Source interface {
	TransactionsInRange(start, end time.Time) []core.Transaction
	BalanceAsOf(cutoff time.Time) core.Money
	Account(id string) (core.Account, bool)
}

// Row is one visible line of the report.
type Row struct {
	Transaction core.Transaction `json:"transaction"`
	Account     string           `json:"account,omitempty"`
	Label       string           `json:"label"` // "Income", "Expense" or "Payback"
	Running     core.Money       `json:"running"`
}

type Report struct {
	Start        time.Time  `json:"start"`
	End          time.Time  `json:"end"`
	StartBalance core.Money `json:"startBalance"`
	EndBalance   core.Money `json:"endBalance"`
	Rows         []Row      `json:"rows"`
}

// Build assembles the report for the inclusive range. A reversed range is
// swapped rather than rejected. Running balance rules:
//   - income adds
//   - a payback leg on a checking account subtracts
//   - any other expense charged to a credit account leaves the main balance
//     unchanged (the debt shows up as due, not as spent cash)
//   - every other expense subtracts
func Build(src Source, start, end time.Time) Report {
	if end.Before(start) {
		start, end = end, start
	}

	r := Report{
		Start:        start,
		End:          end,
		StartBalance: src.BalanceAsOf(start),
		EndBalance:   src.BalanceAsOf(end),
	}

	running := r.StartBalance
	for _, tx := range src.TransactionsInRange(start, end) {
		acct, _ := src.Account(tx.AccountID)
		isPayback := tx.PaybackGroupID != ""
		onCredit := acct.Type == core.Credit
		onChecking := acct.Type == core.Checking

		if isPayback && onCredit {
			continue // the receiving side of a payback is not shown
		}

		label := "Income"
		if tx.Type == core.Expense {
			label = "Expense"
		}
		if isPayback && onChecking {
			label = "Payback"
		}

		switch {
		case tx.Type == core.Income:
			running.Cents += tx.Amount.Cents
		case isPayback && onChecking:
			running.Cents -= tx.Amount.Cents
		case onCredit:
			// charged to credit: cash balance untouched
		default:
			running.Cents -= tx.Amount.Cents
		}

		r.Rows = append(r.Rows, Row{
			Transaction: tx,
			Account:     acct.Name,
			Label:       label,
			Running:     running,
		})
	}
	return r
}
