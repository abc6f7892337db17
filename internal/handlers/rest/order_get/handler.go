package order_get

import (
	"net/http"

	api "adminpanel/internal/generated/dto"
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

	details, err := h.service.GetOrder(r.Context(), principal, orderID)
	if err != nil {
		status := dto.OrderActionStatus(err)
		if status >= http.StatusInternalServerError {
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("order", orderID),
			).Error("get order")
			w.WriteHeader(status)
			return
		}
		h.writeJSON(w, status, api.Error{Error: err.Error()})
		return
	}

	actions := make([]string, 0, len(details.Actions))
	for _, action := range details.Actions {
		actions = append(actions, action.String())
	}

	h.writeJSON(w, http.StatusOK, api.OrderDetails{
		Order:   dto.FromOrder(details.Order),
		Actions: actions,
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	err := dto.WriteJSON(w, status, body)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
