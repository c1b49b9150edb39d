package httpserver

import (
	"context"
	"log/slog"
	"net/http"
)

// LivenessHandler answers 200 while the process serves requests.
func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ALIVE"))
	}
}

// ReadinessHandler answers 200 when every check passes and 503 otherwise.
func ReadinessHandler(log *slog.Logger, checks ...func(context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed", slog.Any("error", err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
