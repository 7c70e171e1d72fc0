package ledger

import (
	"sort"

	"github.com/dhar7/IncomeTracker/internal/core"
)

// Both sorts are stable so transactions sharing a timestamp (the payback
// pair) keep their insertion order.

func sortTransactionsDesc(items []core.Transaction) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})
}

func sortTransactionsAsc(items []core.Transaction) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.Before(items[j].Date)
	})
}
