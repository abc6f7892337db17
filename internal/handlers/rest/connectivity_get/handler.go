package connectivity_get

import (
	"net/http"

	"adminpanel/internal/handlers/rest/dto"
	"adminpanel/pkg/logger"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	err := dto.WriteJSON(w, http.StatusOK, dto.FromConnectivity(h.service.Status()))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
