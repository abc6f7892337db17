package order_action_post

import (
	"encoding/json"
	"net/http"

	"adminpanel/internal/entities"
	api "adminpanel/internal/generated/dto"
	"adminpanel/internal/handlers/rest/dto"
	"adminpanel/internal/pkg/middlewares/auth"
	"adminpanel/internal/service/orderaction"
	"adminpanel/pkg/logger"

	"github.com/gorilla/mux"
)

// Handler отвечает только успехом или ошибкой: новый статус заказа
// придет событием от сервиса заказов.
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

	var req api.OrderActionRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		_ = dto.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	actionLog := h.log.With(
		logger.NewField("order", orderID),
		logger.NewField("action", req.Action),
		logger.NewField("user", principal.UserID),
	)

	err = h.service.Execute(r.Context(), principal, orderID, orderaction.Request{
		Action:  entities.OrderAction(req.Action),
		Reason:  req.Reason,
		RiderID: req.RiderID,
	})
	if err != nil {
		status := dto.OrderActionStatus(err)
		switch {
		case status == http.StatusBadGateway:
			actionLog.With(logger.NewField("error", err)).Warn("order action rejected by collaborator")
		case status >= http.StatusInternalServerError:
			actionLog.With(logger.NewField("error", err)).Error("order action failed")
			w.WriteHeader(status)
			return
		}
		_ = dto.WriteError(w, status, err.Error())
		return
	}

	actionLog.Info("order action executed")
	w.WriteHeader(http.StatusNoContent)
}
