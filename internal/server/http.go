package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/Naman-sys/QuizForge/internal/config"
	"github.com/Naman-sys/QuizForge/internal/logging"
)

// NewHTTPServer wires base routes (health, metrics) plus the quiz lifecycle
// endpoints for the API service.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, handlers *Handlers) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("POST /v1/quizzes", handlers.CreateQuiz)
	mux.HandleFunc("GET /v1/quizzes/{id}", handlers.GetQuiz)
	mux.HandleFunc("PUT /v1/quizzes/{id}/answers", handlers.SaveAnswer)
	mux.HandleFunc("POST /v1/quizzes/{id}/complete", handlers.Complete)
	mux.HandleFunc("GET /v1/quizzes/{id}/export", handlers.Export)

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: withLogger(logger, mux),
	}
}

// withLogger injects the service logger into every request context.
func withLogger(logger zerolog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(logging.IntoContext(r.Context(), logger)))
	})
}
