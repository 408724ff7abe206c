package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/TsubasaK111/ConferenceCentral/internal/logger"
)

// RequestLogger logs one line per handled request.
type RequestLogger struct {
	logger *logger.Logger
}

// NewRequestLogger creates a new RequestLogger middleware instance.
func NewRequestLogger(logger *logger.Logger) *RequestLogger {
	return &RequestLogger{logger: logger}
}

// Handle records method, path, status and duration of each request.
func (m *RequestLogger) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		m.logger.Info("handled request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).String())
	})
}
