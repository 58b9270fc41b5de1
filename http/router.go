package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires every amortization endpoint behind the rate limiter.
func NewRouter(
	loans *LoanHandler,
	comparisons *ComparisonHandler,
	limiter *RateLimiter,
) *mux.Router {
	r := mux.NewRouter()
	r.Use(RateLimitMiddleware(limiter))

	api := r.PathPrefix("/amortization").Subrouter()
	api.HandleFunc("/schedule", loans.CalculateSchedule).Methods(http.MethodPost)
	api.HandleFunc("/compare", comparisons.Compare).Methods(http.MethodPost)
	api.HandleFunc("/{id}", loans.GetSchedule).Methods(http.MethodGet)
	api.HandleFunc("/{id}/export", loans.ExportSchedule).Methods(http.MethodGet)
	api.HandleFunc("/{id}/report", loans.Report).Methods(http.MethodGet)
	api.HandleFunc("/{id}/chart/{kind}", loans.Chart).Methods(http.MethodGet)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	return r
}
