package timings_discard_delete

import (
	"net/http"
	"strconv"

	"adminpanel/internal/handlers/rest/dto"
	"adminpanel/internal/pkg/middlewares/auth"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	confirm, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))

	err := h.service.Discard(principal, confirm)
	if err != nil {
		dto.WriteTimingError(w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
