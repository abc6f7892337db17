package session_get

import (
	"errors"
	"math"
	"net/http"

	api "adminpanel/internal/generated/dto"
	"adminpanel/internal/handlers/rest/dto"
	"adminpanel/internal/service/session"
	"adminpanel/pkg/logger"
)

// Handler состояние экрана входа для устройства.
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
	state, err := h.service.State(r.Context(), r.Header.Get(dto.DeviceIDHeader))
	if err != nil {
		if errors.Is(err, session.ErrMissingDeviceID) {
			_ = dto.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.With(
			logger.NewField("error", err),
		).Error("load session state")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	err = dto.WriteJSON(w, http.StatusOK, api.SessionState{
		Locked:           state.Locked,
		RemainingSeconds: int64(math.Ceil(state.RemainingLock.Seconds())),
		FailedAttempts:   state.FailedCount,
	})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
