package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"

	"marketplace/internal/handlers/rest/dto"
	"marketplace/internal/handlers/rest/httperr"
)

// Middleware отвечает 503 новым запросам, когда ongoingCtx отменён во время остановки.
// Начатые переходы листингов дорабатывают в своих транзакциях.
func Middleware(log handlerLogger, isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-ongoingCtx.Done():
				if isShuttingDown.Load() {
					w.Header().Set("Connection", "close")
					httperr.WriteJSON(w, log, http.StatusServiceUnavailable, dto.ErrorResponse{
						Error: "service is shutting down",
						Retry: true,
					})
					return
				}
			default:
			}
			next.ServeHTTP(w, r)
		})
	}
}
