package timeout

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"marketplace/internal/pkg/middlewares/route"
	"marketplace/pkg/logger"
)

var RequestTimeoutsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_request_timeouts_total",
		Help: "Requests whose context deadline expired before the handler returned",
	},
	[]string{"method", "route"},
)

// Middleware ограничивает контекст запроса. Транзакция, не успевшая к дедлайну, откатывается.
func Middleware(log handlerLogger, timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// r.Context() = ongoingCtx (из BaseContext)
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))

			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				handlerPath := route.Template(r)
				RequestTimeoutsTotal.WithLabelValues(r.Method, handlerPath).Inc()
				log.With(
					logger.NewField("method", r.Method),
					logger.NewField("route", handlerPath),
					logger.NewField("timeout", timeout.String()),
				).Warn("request deadline exceeded")
			}
		})
	}
}
