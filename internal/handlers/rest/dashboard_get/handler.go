package dashboard_get

import (
	"net/http"

	"adminpanel/internal/handlers/rest/dto"
	"adminpanel/internal/pkg/middlewares/auth"
	"adminpanel/pkg/logger"
)

// Handler показатели отдаются всегда 200: ошибка одного показателя
// лежит в его собственном state и не ломает ответ целиком.
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

	snapshot := h.service.Snapshot(r.Context(), principal, dto.BranchFilter(r.URL.Query().Get("branch_id")))

	err := dto.WriteJSON(w, http.StatusOK, dto.FromSnapshot(snapshot))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
