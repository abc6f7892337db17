package order_riders_get

import (
	"net/http"

	"adminpanel/internal/handlers/rest/dto"
	"adminpanel/internal/pkg/middlewares/auth"
	"adminpanel/pkg/logger"

	"github.com/gorilla/mux"
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
	orderID := mux.Vars(r)["id"]

	riders, err := h.service.ListRiders(r.Context(), principal, orderID)
	if err != nil {
		status := dto.OrderActionStatus(err)
		if status >= http.StatusInternalServerError {
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("order", orderID),
			).Error("list riders")
			w.WriteHeader(status)
			return
		}
		_ = dto.WriteError(w, status, err.Error())
		return
	}

	err = dto.WriteJSON(w, http.StatusOK, dto.FromDrivers(riders))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
