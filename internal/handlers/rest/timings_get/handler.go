package timings_get

import (
	"net/http"
	"strconv"

	"adminpanel/internal/handlers/rest/dto"
	"adminpanel/internal/pkg/middlewares/auth"

	"github.com/gorilla/mux"
)

// Handler открывает расписание филиала в черновик пользователя.
// Переключение с несохраненным черновиком требует ?confirm=true.
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

	view, err := h.service.Load(r.Context(), principal, mux.Vars(r)["id"], confirm)
	if err != nil {
		dto.WriteTimingError(w, h.log, err)
		return
	}

	dto.WriteResult(w, h.log, http.StatusOK, dto.FromDraft(view))
}
