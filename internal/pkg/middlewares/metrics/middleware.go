package metrics

import (
	"net/http"
	"strconv"
	"time"

	"marketplace/internal/pkg/middlewares/auth"
	"marketplace/internal/pkg/middlewares/route"
	"marketplace/pkg/logger"
)

func Middleware(log handlerLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			duration := time.Since(start)
			statusCode := strconv.Itoa(rw.statusCode)
			handlerPath := route.Template(r)
			role := route.Role(r)

			HTTPRequestDuration.WithLabelValues(r.Method, handlerPath, statusCode).Observe(duration.Seconds())
			HTTPRequestTotal.WithLabelValues(r.Method, handlerPath, statusCode, role).Inc()

			fields := []logger.Field{
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("route", handlerPath),
				logger.NewField("status", statusCode),
				logger.NewField("duration", duration.String()),
				logger.NewField("role", role),
			}
			if userID := r.Header.Get(auth.HeaderUserID); userID != "" {
				fields = append(fields, logger.NewField("user_id", userID))
			}

			reqLog := log.With(fields...)
			if rw.statusCode >= http.StatusInternalServerError {
				reqLog.Warn("HTTP request")
				return
			}
			reqLog.Info("HTTP request")
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
