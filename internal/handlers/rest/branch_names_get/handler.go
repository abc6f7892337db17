package branch_names_get

import (
	"net/http"
	"strings"

	api "adminpanel/internal/generated/dto"
	"adminpanel/internal/handlers/rest/dto"
	"adminpanel/pkg/logger"
)

// Handler ?ids=b1,b2 -> {"b1":"Downtown"}; неизвестные id в ответ не попадают.
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
	var ids []string
	for _, raw := range r.URL.Query()["ids"] {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	if len(ids) == 0 {
		dto.WriteResult(w, h.log, http.StatusOK, api.BranchNames{})
		return
	}

	names, err := h.service.Names(r.Context(), ids)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("load branch names")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	dto.WriteResult(w, h.log, http.StatusOK, api.BranchNames(names))
}
