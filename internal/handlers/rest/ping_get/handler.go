package ping_get

import (
	"net/http"

	"marketplace/internal/handlers/rest/dto"
	"marketplace/internal/handlers/rest/httperr"
)

type Handler struct {
	log     handlerLogger
	service string
}

func New(log handlerLogger, service string) *Handler {
	return &Handler{
		log:     log.With(),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	httperr.WriteJSON(w, h.log, http.StatusOK, dto.PingResponse{
		Message: "pong",
		Service: h.service,
	})
}
