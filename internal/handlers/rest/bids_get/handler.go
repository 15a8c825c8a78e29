package bids_get

import (
	"net/http"

	"github.com/gorilla/mux"
	"marketplace/internal/handlers/rest/dto"
	"marketplace/internal/handlers/rest/httperr"
	"marketplace/internal/pkg/middlewares/auth"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		httperr.Unauthorized(w, h.log)
		return
	}

	bids, err := h.service.ListListingBids(r.Context(), actor, mux.Vars(r)["id"])
	if err != nil {
		httperr.Write(w, h.log, err)
		return
	}

	httperr.WriteJSON(w, h.log, http.StatusOK, dto.FromBids(bids))
}
