package http

import (
	"log/slog"
	"net/http"

	"github.com/dhar7/IncomeTracker/internal/core"
)

type categoryRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Categories())
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	c := core.BudgetCategory{Name: req.Name}
	if err := c.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	created := s.store.AddCategory(c.Name)
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	c := core.BudgetCategory{ID: r.PathValue("id"), Name: req.Name}
	if err := c.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.store.UpdateCategory(c)
	w.WriteHeader(http.StatusNoContent)
}

// handleDeleteCategory cascades: the category's allocations are removed and
// referencing transactions keep living with their category cleared.
func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	s.store.DeleteCategory(id)
	slog.InfoContext(r.Context(), "Category deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}
