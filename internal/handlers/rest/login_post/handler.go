package login_post

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	api "adminpanel/internal/generated/dto"
	"adminpanel/internal/handlers/rest/dto"
	"adminpanel/internal/service/session"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		h.write(w, http.StatusBadRequest, api.Error{Error: "invalid request body"})
		return
	}

	deviceID := r.Header.Get(dto.DeviceIDHeader)

	sess, err := h.service.SignIn(r.Context(), deviceID, req.Email, req.Password)
	if err != nil {
		var locked *session.LockedError
		switch {
		case errors.As(err, &locked):
			remaining := int64(math.Ceil(locked.Remaining.Seconds()))
			w.Header().Set("Retry-After", strconv.FormatInt(remaining, 10))
			h.write(w, http.StatusLocked, api.Error{Error: session.ErrLocked.Error(), RemainingSeconds: &remaining})
		case errors.Is(err, session.ErrInvalidEmail),
			errors.Is(err, session.ErrEmptyPassword),
			errors.Is(err, session.ErrMissingDeviceID):
			h.write(w, http.StatusBadRequest, api.Error{Error: err.Error()})
		case errors.Is(err, session.ErrSubmitInProgress):
			h.write(w, http.StatusConflict, api.Error{Error: err.Error()})
		case errors.Is(err, session.ErrInvalidCredentials):
			h.write(w, http.StatusUnauthorized, api.Error{Error: session.ErrInvalidCredentials.Error()})
		case errors.Is(err, session.ErrAuthUnavailable):
			h.log.With(
				logger.NewField("error", err),
			).Warn("sign in collaborator failed")
			h.write(w, http.StatusBadGateway, api.Error{Error: session.ErrAuthUnavailable.Error()})
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("sign in failed")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	h.log.With(
		logger.NewField("user", sess.Principal.UserID),
		logger.NewField("role", sess.Principal.Role.String()),
	).Info("user signed in")

	h.write(w, http.StatusOK, api.LoginResponse{
		Token:     sess.Token,
		ExpiresAt: sess.ExpiresAt,
		User:      dto.FromPrincipal(sess.Principal),
	})
}

func (h *Handler) write(w http.ResponseWriter, status int, body any) {
	err := dto.WriteJSON(w, status, body)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
