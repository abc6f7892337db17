package timings_draft_get

import (
	"net/http"

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

	view, err := h.service.Current(principal)
	if err != nil {
		dto.WriteTimingError(w, h.log, err)
		return
	}

	dto.WriteResult(w, h.log, http.StatusOK, dto.FromDraft(view))
}
