package connectivity_retry_post

import (
	"net/http"

	"adminpanel/internal/handlers/rest/dto"
	"adminpanel/pkg/logger"
)

// Handler кнопка "повторить" на плашке офлайна: проверка сразу, без ожидания тика.
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
	status := h.service.Retry(r.Context())

	h.log.With(
		logger.NewField("online", status.Online),
	).Info("connectivity re-checked")

	err := dto.WriteJSON(w, http.StatusOK, dto.FromConnectivity(status))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
