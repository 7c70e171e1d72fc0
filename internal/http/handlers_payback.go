package http

import (
	"log/slog"
	"net/http"

	"github.com/dhar7/IncomeTracker/internal/core"
)

type paybackRequest struct {
	Amount        string `json:"amount"`
	FromAccountID string `json:"fromAccountID"`
	ToAccountID   string `json:"toAccountID"`
	Note          string `json:"note"`
	Date          string `json:"date"`
}

// handleRecordPayback validates and records a checking-to-credit payback.
// The amount may not exceed what is due on the credit account, nor what the
// checking account currently holds.
func (s *Server) handleRecordPayback(w http.ResponseWriter, r *http.Request) {
	var req paybackRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	cents, err := core.ParseDecimalToCents(req.Amount)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	from, ok := s.store.Account(req.FromAccountID)
	if !ok || from.Type != core.Checking {
		writeError(w, http.StatusUnprocessableEntity, "fromAccountID must be an existing checking account")
		return
	}
	to, ok := s.store.Account(req.ToAccountID)
	if !ok || to.Type != core.Credit {
		writeError(w, http.StatusUnprocessableEntity, "toAccountID must be an existing credit account")
		return
	}

	if due := s.store.DueAmountForCreditAccount(to.ID); cents > due.Cents {
		writeError(w, http.StatusUnprocessableEntity, "amount exceeds the due amount on the credit account")
		return
	}
	available := s.store.BalanceForAccount(from.ID).Cents
	if available < 0 {
		available = 0
	}
	if cents > available {
		writeError(w, http.StatusUnprocessableEntity, "amount exceeds the checking account balance")
		return
	}

	groupID := s.store.RecordPayback(core.Money{Cents: cents}, from.ID, to.ID, req.Note, date)
	slog.InfoContext(r.Context(), "Payback recorded",
		"group_id", groupID, "from", from.ID, "to", to.ID, "amount", core.Money{Cents: cents}.Decimal())
	writeJSON(w, http.StatusCreated, map[string]string{"paybackGroupID": groupID})
}
