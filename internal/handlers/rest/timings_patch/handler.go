package timings_patch

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"adminpanel/internal/entities"
	api "adminpanel/internal/generated/dto"
	"adminpanel/internal/handlers/rest/dto"
	"adminpanel/internal/pkg/middlewares/auth"
	"adminpanel/internal/service/timing"
)

// Handler одна правка черновика за запрос, в ответ - черновик целиком.
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

	var req api.DraftEditRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		dto.WriteResult(w, h.log, http.StatusBadRequest, api.Error{Error: "invalid request body: " + err.Error()})
		return
	}

	view, err := h.apply(principal, req)
	if err != nil {
		if errors.Is(err, errUnknownOp) {
			dto.WriteResult(w, h.log, http.StatusBadRequest, api.Error{Error: err.Error()})
			return
		}
		dto.WriteTimingError(w, h.log, err)
		return
	}

	dto.WriteResult(w, h.log, http.StatusOK, dto.FromDraft(view))
}

func (h *Handler) apply(principal entities.Principal, req api.DraftEditRequest) (timing.DraftView, error) {
	open, err := parseTime(req.Open)
	if err != nil {
		return timing.DraftView{}, err
	}
	closeAt, err := parseTime(req.Close)
	if err != nil {
		return timing.DraftView{}, err
	}

	switch req.Op {
	case api.DraftEditOpToggleDay:
		return h.service.ToggleDay(principal, req.Day)

	case api.DraftEditOpAddSlot:
		slot := entities.DefaultSlot()
		if open != nil {
			slot.Open = *open
		}
		if closeAt != nil {
			slot.Close = *closeAt
		}
		return h.service.AddSlot(principal, req.Day, slot)

	case api.DraftEditOpRemoveSlot:
		if req.Index == nil {
			return timing.DraftView{}, fmt.Errorf("%w: index is required", timing.ErrInvalidSlotIndex)
		}
		return h.service.RemoveSlot(principal, req.Day, *req.Index)

	case api.DraftEditOpEditSlot:
		if req.Index == nil {
			return timing.DraftView{}, fmt.Errorf("%w: index is required", timing.ErrInvalidSlotIndex)
		}
		return h.service.EditSlot(principal, req.Day, *req.Index, timing.SlotEdit{Open: open, Close: closeAt})

	default:
		return timing.DraftView{}, fmt.Errorf("%w: unknown op %q", errUnknownOp, req.Op)
	}
}

// parseTime nil - поле не передано.
func parseTime(raw *string) (*entities.TimeOfDay, error) {
	if raw == nil {
		return nil, nil
	}
	t, err := entities.ParseTimeOfDay(*raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
