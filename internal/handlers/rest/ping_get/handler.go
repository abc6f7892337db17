package ping_get

import (
	"net/http"
	"time"

	api "adminpanel/internal/generated/dto"
	"adminpanel/internal/handlers/rest/dto"
)

type Handler struct {
	log handlerLogger
	now func() time.Time
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With()

	return &Handler{
		log: handlerLog,
		now: time.Now,
	}
}

// ServeHTTP серверное время отдается, чтобы клиент мог заметить расхождение
// часов устройства: от них зависит граница бизнес-дня и блокировка входа.
func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	dto.WriteResult(w, h.log, http.StatusOK, api.PingResponse{
		Message:    "pong",
		ServerTime: h.now().UTC(),
	})
}
