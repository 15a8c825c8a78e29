// Package httperr переводит категории доменных ошибок в HTTP-ответы.
package httperr

import (
	"encoding/json"
	"errors"
	"net/http"

	"marketplace/internal/entities"
	"marketplace/internal/handlers/rest/dto"
	"marketplace/pkg/logger"
)

func Status(err error) int {
	switch {
	case errors.Is(err, entities.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, entities.ErrAuthorization):
		return http.StatusForbidden
	case errors.Is(err, entities.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entities.ErrInvalidState),
		errors.Is(err, entities.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Write пишет JSON с ошибкой. Конфликт версий помечается retry: клиент может перечитать и повторить.
// Внутренние ошибки логируются, клиенту уходит только статус.
func Write(w http.ResponseWriter, log handlerLogger, err error) {
	status := Status(err)

	body := dto.ErrorResponse{Error: err.Error()}
	if status == http.StatusInternalServerError {
		log.With(
			logger.NewField("error", err),
		).Error("request failed")
		body.Error = http.StatusText(status)
	}
	if errors.Is(err, entities.ErrConflict) {
		body.Retry = true
		w.Header().Set("Retry-After", "0")
	}

	WriteJSON(w, log, status, body)
}

func BadRequest(w http.ResponseWriter, log handlerLogger, msg string) {
	WriteJSON(w, log, http.StatusBadRequest, dto.ErrorResponse{Error: msg})
}

func Unauthorized(w http.ResponseWriter, log handlerLogger) {
	WriteJSON(w, log, http.StatusUnauthorized, dto.ErrorResponse{Error: "missing actor"})
}

func WriteJSON(w http.ResponseWriter, log handlerLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
