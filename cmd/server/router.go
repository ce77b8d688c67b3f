package main

import (
	"net/http"

	"kleos-intake/internal/handlers"
	"kleos-intake/internal/metrics"
	"kleos-intake/internal/middleware"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// SetupRouter configures and returns the HTTP router with all routes and middleware
func SetupRouter(
	directoryHandler *handlers.DirectoryHandler,
	submitHandler *handlers.SubmitHandler,
	logger *zap.Logger,
) *mux.Router {
	router := mux.NewRouter()

	// Add CORS middleware
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	})

	// Request id, logging and metrics middleware
	router.Use(middleware.RequestIDMiddleware)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(metrics.Instrument)

	// Intake form lookups
	router.HandleFunc("/api/countries", directoryHandler.HandleCountries).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/case-types", directoryHandler.HandleCaseTypes).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/contacts", directoryHandler.HandleContactCountries).Methods("GET", "OPTIONS")

	// Case submission
	router.HandleFunc("/api/submit-case", submitHandler.HandleSubmit).Methods("POST", "OPTIONS")

	// Prometheus metrics
	router.Handle("/metrics", metrics.Handler()).Methods("GET")

	// Health check
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET")

	return router
}
