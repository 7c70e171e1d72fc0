package http

import (
	"net/http"

	"github.com/dhar7/IncomeTracker/internal/core"
)

type budgetRequest struct {
	CategoryID string `json:"categoryID"`
	MonthKey   string `json:"monthKey"`
	Amount     string `json:"amount"`
}

// budgetStatus is the per-category month view. Budget and Remaining are
// pointers because "no allocation set" must stay distinct from zero.
type budgetStatus struct {
	CategoryID string      `json:"categoryID"`
	MonthKey   string      `json:"monthKey"`
	Budget     *core.Money `json:"budget,omitempty"`
	Spent      core.Money  `json:"spent"`
	Remaining  *core.Money `json:"remaining,omitempty"`
	OverBudget bool        `json:"overBudget"`
}

func (s *Server) handleSetBudget(w http.ResponseWriter, r *http.Request) {
	var req budgetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if !validMonthKey(req.MonthKey) {
		writeError(w, http.StatusUnprocessableEntity, "invalid month key: expected YYYY-MM")
		return
	}
	if _, ok := s.store.CategoryName(req.CategoryID); !ok {
		writeError(w, http.StatusUnprocessableEntity, "unknown category")
		return
	}
	cents, err := core.ParseDecimalToCents(req.Amount)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.store.SetBudget(req.CategoryID, req.MonthKey, core.Money{Cents: cents})
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleBudgetStatus(w http.ResponseWriter, r *http.Request) {
	categoryID := r.URL.Query().Get("categoryID")
	monthKey := r.URL.Query().Get("month")
	if categoryID == "" || !validMonthKey(monthKey) {
		writeError(w, http.StatusBadRequest, "categoryID and month=YYYY-MM are required")
		return
	}

	status := budgetStatus{
		CategoryID: categoryID,
		MonthKey:   monthKey,
		Spent:      s.store.SpentForCategoryMonth(categoryID, monthKey),
		OverBudget: s.store.IsCategoryOverBudget(categoryID, monthKey),
	}
	if budget, ok := s.store.BudgetFor(categoryID, monthKey); ok {
		status.Budget = &budget
	}
	if remaining, ok := s.store.RemainingForCategoryMonth(categoryID, monthKey); ok {
		status.Remaining = &remaining
	}
	writeJSON(w, http.StatusOK, status)
}

func (s *Server) handleListAllocations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Allocations())
}

func (s *Server) handleDeleteAllocation(w http.ResponseWriter, r *http.Request) {
	s.store.DeleteAllocation(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}
