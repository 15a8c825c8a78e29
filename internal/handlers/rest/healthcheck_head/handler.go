package healthcheck_head

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"
)

const probeTimeout = time.Second

type Handler struct {
	isShuttingDown *atomic.Bool
	probes         []Probe
}

func New(isShuttingDown *atomic.Bool, probes ...Probe) *Handler {
	return &Handler{
		isShuttingDown: isShuttingDown,
		probes:         probes,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	for _, probe := range h.probes {
		if err := probe.Ping(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}
