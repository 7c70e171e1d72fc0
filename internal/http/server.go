// Package http is the boundary layer over the ledger engine: a JSON API that
// owns all product-level validation (amount parsing, payback caps, budget
// guards) so the engine below it never sees malformed input.
package http

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dhar7/IncomeTracker/internal/ledger"
)

type Server struct {
	http.Server
	store *ledger.Store
}

// NewServer configures routes and middleware, returning a ready-to-run server.
func NewServer(addr string, store *ledger.Store) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		store: store,
	}

	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", handleReady)

	mux.HandleFunc("GET /accounts", s.withRequestLog(s.handleListAccounts))
	mux.HandleFunc("POST /accounts", s.withRequestLog(s.handleCreateAccount))
	mux.HandleFunc("PUT /accounts/{id}", s.withRequestLog(s.handleUpdateAccount))
	mux.HandleFunc("DELETE /accounts/{id}", s.withRequestLog(s.handleDeleteAccount))
	mux.HandleFunc("GET /accounts/{id}/balance", s.withRequestLog(s.handleAccountBalance))
	mux.HandleFunc("GET /totals", s.withRequestLog(s.handleTotals))

	mux.HandleFunc("GET /categories", s.withRequestLog(s.handleListCategories))
	mux.HandleFunc("POST /categories", s.withRequestLog(s.handleCreateCategory))
	mux.HandleFunc("PUT /categories/{id}", s.withRequestLog(s.handleUpdateCategory))
	mux.HandleFunc("DELETE /categories/{id}", s.withRequestLog(s.handleDeleteCategory))

	mux.HandleFunc("PUT /budget", s.withRequestLog(s.handleSetBudget))
	mux.HandleFunc("GET /budget", s.withRequestLog(s.handleBudgetStatus))
	mux.HandleFunc("GET /allocations", s.withRequestLog(s.handleListAllocations))
	mux.HandleFunc("DELETE /allocations/{id}", s.withRequestLog(s.handleDeleteAllocation))

	mux.HandleFunc("GET /transactions", s.withRequestLog(s.handleListTransactions))
	mux.HandleFunc("POST /transactions", s.withRequestLog(s.handleCreateTransaction))
	mux.HandleFunc("PUT /transactions/{id}", s.withRequestLog(s.handleUpdateTransaction))
	mux.HandleFunc("DELETE /transactions/{id}", s.withRequestLog(s.handleDeleteTransaction))

	mux.HandleFunc("POST /payback", s.withRequestLog(s.handleRecordPayback))

	mux.HandleFunc("GET /export/csv", s.withRequestLog(s.handleExportCSV))
	mux.HandleFunc("GET /export/xlsx", s.withRequestLog(s.handleExportXLSX))
	mux.HandleFunc("GET /report", s.withRequestLog(s.handleReport))

	return s
}

// withRequestLog adds a request ID, security headers and structured request
// logging to responses.
func (s *Server) withRequestLog(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := generateRequestID()
		ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)
		r = r.WithContext(ctx)

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		slog.InfoContext(ctx, "Request completed",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", time.Since(start).Milliseconds())
	}
}

type requestIDKey struct{}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
