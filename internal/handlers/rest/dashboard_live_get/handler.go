package dashboard_live_get

import (
	"context"
	"net/http"
	"time"

	"adminpanel/internal/handlers/rest/dto"
	"adminpanel/internal/pkg/middlewares/auth"
	"adminpanel/internal/service/dashboard"
	"adminpanel/pkg/logger"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// доступ проверен по токену до апгрейда
	CheckOrigin: func(*http.Request) bool { return true },
}

// Handler живой дашборд: каждый показатель приходит отдельным сообщением
// по мере пересчета. Клиент ничего не шлет, чтение нужно только чтобы
// заметить разрыв и отменить подписки.
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
	filter := dto.BranchFilter(r.URL.Query().Get("branch_id"))

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	connLog := h.log.With(
		logger.NewField("user", principal.UserID),
		logger.NewField("branch", filter.String()),
	)
	connLog.Info("dashboard live subscription opened")

	// r.Context() отменяется вместе с ongoingCtx при остановке сервиса
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	go readPump(conn, cancel)

	updates := h.service.Subscribe(ctx, principal, filter)
	h.writePump(ctx, conn, updates, connLog)

	connLog.Info("dashboard live subscription closed")
}

func readPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Handler) writePump(ctx context.Context, conn *websocket.Conn, updates <-chan dashboard.Update, log logger.Logger) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return

		case update, ok := <-updates:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(dto.FromUpdate(update)); err != nil {
				if !websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.With(
						logger.NewField("error", err),
					).Warn("dashboard live write failed")
				}
				return
			}

		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
