package auth

import (
	"context"
	"net/http"
	"strings"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

// Заголовки проставляет шлюз перед сервисом после аутентификации.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

type actorKey struct{}

func Middleware(log handlerLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := strings.TrimSpace(r.Header.Get(HeaderUserID))
			role := entities.Role(strings.TrimSpace(r.Header.Get(HeaderUserRole)))

			if userID == "" || role == "" {
				log.With(
					logger.NewField("method", r.Method),
					logger.NewField("path", r.URL.Path),
				).Warn("request without identity headers")
				writeError(w, log, http.StatusUnauthorized, `{"error":"missing identity headers"}`)
				return
			}

			if !role.IsValid() {
				writeError(w, log, http.StatusBadRequest, `{"error":"unknown role"}`)
				return
			}

			ctx := WithActor(r.Context(), entities.Actor{UserID: userID, Role: role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func WithActor(ctx context.Context, actor entities.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

func ActorFromContext(ctx context.Context) (entities.Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(entities.Actor)
	return actor, ok
}

func writeError(w http.ResponseWriter, log handlerLogger, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err := w.Write([]byte(body))
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("failed to write auth response")
	}
}
