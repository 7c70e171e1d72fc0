// Package export renders the transaction list as flat tabular files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/dhar7/IncomeTracker/internal/core"
)

// Source is the slice of the engine the exporters need: the transaction list
// plus an account-name resolver.
type Source interface {
	Transactions() []core.Transaction
	AccountName(id string) (string, bool)
}

// Header is the column layout shared by the CSV and XLSX exports.
var Header = []string{"id", "date", "type", "amount", "purpose", "note", "account", "category", "paybackGroupID"}

// Record flattens one transaction into the export column layout. The account
// name is resolved through src; a deleted or missing account yields an empty
// cell. Dates are ISO-8601.
func Record(tx core.Transaction, src Source) []string {
	var account string
	if tx.AccountID != "" {
		account, _ = src.AccountName(tx.AccountID)
	}
	return []string{
		tx.ID,
		tx.Date.Format(time.RFC3339),
		string(tx.Type),
		tx.Amount.Decimal(),
		tx.Purpose,
		tx.Note,
		account,
		tx.CategoryID,
		tx.PaybackGroupID,
	}
}

// WriteCSV writes one line per transaction. encoding/csv applies the standard
// quoting rules: fields containing the delimiter, quote or a newline are
// quoted with inner quotes doubled.
func WriteCSV(w io.Writer, src Source) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, tx := range src.Transactions() {
		if err := cw.Write(Record(tx, src)); err != nil {
			return fmt.Errorf("write record %s: %w", tx.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
