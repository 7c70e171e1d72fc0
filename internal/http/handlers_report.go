package http

import (
	"net/http"

	"github.com/dhar7/IncomeTracker/internal/report"
)

// handleReport renders the running-balance ledger between ?start and ?end.
// Both bounds are required; a reversed range is handled by the builder.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("start") == "" || q.Get("end") == "" {
		writeError(w, http.StatusBadRequest, "start and end are required")
		return
	}

	start, err := parseDate(q.Get("start"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	end, err := parseDate(q.Get("end"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, report.Build(s.store, start, end))
}
