package http

import (
	"log/slog"
	"net/http"

	"github.com/dhar7/IncomeTracker/internal/core"
)

type transactionRequest struct {
	Amount     string `json:"amount"`
	Purpose    string `json:"purpose"`
	Note       string `json:"note"`
	Type       string `json:"type"`
	AccountID  string `json:"accountID"`
	CategoryID string `json:"categoryID"`
	Date       string `json:"date"`
}

// buildTransaction turns a request body into a validated transaction. All the
// product rules live here: the engine below accepts whatever it is given.
func (s *Server) buildTransaction(req transactionRequest) (core.Transaction, int, string) {
	cents, err := core.ParseDecimalToCents(req.Amount)
	if err != nil {
		return core.Transaction{}, http.StatusUnprocessableEntity, err.Error()
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return core.Transaction{}, http.StatusUnprocessableEntity, err.Error()
	}

	tx := core.Transaction{
		Amount:     core.Money{Cents: cents},
		Purpose:    req.Purpose,
		Note:       req.Note,
		Type:       core.TransactionType(req.Type),
		AccountID:  req.AccountID,
		CategoryID: req.CategoryID,
		Date:       date,
	}
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, http.StatusUnprocessableEntity, err.Error()
	}
	if _, ok := s.store.Account(tx.AccountID); !ok {
		return core.Transaction{}, http.StatusUnprocessableEntity, "unknown account"
	}
	if tx.CategoryID != "" {
		if _, ok := s.store.CategoryName(tx.CategoryID); !ok {
			return core.Transaction{}, http.StatusUnprocessableEntity, "unknown category"
		}
	}
	return tx, 0, ""
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")
	if from == "" && to == "" {
		writeJSON(w, http.StatusOK, s.store.Transactions())
		return
	}

	start, err := parseDate(from)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	end, err := parseDate(to)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.store.TransactionsInRange(start, end))
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tx, status, msg := s.buildTransaction(req)
	if status != 0 {
		writeError(w, status, msg)
		return
	}

	created := s.store.Add(tx)
	slog.InfoContext(r.Context(), "Transaction recorded",
		"id", created.ID, "type", created.Type, "amount", created.Amount.Decimal())
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id := r.PathValue("id")
	existing, ok := s.store.Transaction(id)
	if ok && existing.PaybackGroupID != "" {
		// paired legs only change together; edit by deleting the payback
		// and recording a new one
		writeError(w, http.StatusConflict, "payback transactions cannot be edited")
		return
	}

	tx, status, msg := s.buildTransaction(req)
	if status != 0 {
		writeError(w, status, msg)
		return
	}
	tx.ID = id

	s.store.Update(tx)
	w.WriteHeader(http.StatusNoContent)
}

// handleDeleteTransaction deletes by ID. A payback leg takes its partner leg
// with it; the engine owns that rule.
func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	s.store.Delete(id)
	slog.InfoContext(r.Context(), "Transaction deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}
