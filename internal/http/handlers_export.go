package http

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dhar7/IncomeTracker/internal/export"
)

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	filename := fmt.Sprintf("transactions_export_%d.csv", time.Now().Unix())
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := export.WriteCSV(w, s.store); err != nil {
		// headers are already out; all we can do is log
		slog.ErrorContext(r.Context(), "CSV export failed", "error", err)
	}
}

func (s *Server) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	// the workbook is buffered so a build failure can still become a clean 500
	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, s.store); err != nil {
		slog.ErrorContext(r.Context(), "XLSX export failed", "error", err)
		writeError(w, http.StatusInternalServerError, "export failed")
		return
	}

	filename := fmt.Sprintf("transactions_export_%d.xlsx", time.Now().Unix())
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	_, _ = w.Write(buf.Bytes())
}
