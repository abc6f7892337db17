package order_assign_post

import (
	"encoding/json"
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

	var req api.AssignRiderRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		_ = dto.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	assignLog := h.log.With(
		logger.NewField("order", orderID),
		logger.NewField("rider", req.RiderID),
		logger.NewField("user", principal.UserID),
	)

	err = h.service.AssignRider(r.Context(), principal, orderID, req.RiderID)
	if err != nil {
		status := dto.OrderActionStatus(err)
		switch {
		case status == http.StatusBadGateway:
			assignLog.With(logger.NewField("error", err)).Warn("rider assignment rejected by collaborator")
		case status >= http.StatusInternalServerError:
			assignLog.With(logger.NewField("error", err)).Error("rider assignment failed")
			w.WriteHeader(status)
			return
		}
		_ = dto.WriteError(w, status, err.Error())
		return
	}

	assignLog.Info("rider assigned")
	w.WriteHeader(http.StatusNoContent)
}
