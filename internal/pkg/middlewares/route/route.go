// Package route даёт middleware стабильные метки запроса для метрик и логов.
package route

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"marketplace/internal/entities"
	"marketplace/internal/pkg/middlewares/auth"
)

const RoleAnonymous = "anonymous"

// Template возвращает шаблон mux-роута, иначе сырой путь.
func Template(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route != nil {
		if template, err := route.GetPathTemplate(); err == nil {
			return template
		}
	}
	return r.URL.Path
}

// Role читает роль из заголовка шлюза. Неизвестные значения не попадают в метки.
func Role(r *http.Request) string {
	role := entities.Role(strings.TrimSpace(r.Header.Get(auth.HeaderUserRole)))
	if !role.IsValid() {
		return RoleAnonymous
	}
	return role.String()
}
