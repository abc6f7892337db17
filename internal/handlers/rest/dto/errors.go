package dto

import (
	"errors"
	"net/http"

	"adminpanel/internal/service/orderaction"
)

// OrderActionStatus HTTP-код для ошибок карточки заказа.
func OrderActionStatus(err error) int {
	switch {
	case errors.Is(err, orderaction.ErrMissingOrderID),
		errors.Is(err, orderaction.ErrUnknownAction),
		errors.Is(err, orderaction.ErrMissingCancelReason),
		errors.Is(err, orderaction.ErrMissingRiderID):
		return http.StatusBadRequest
	case errors.Is(err, orderaction.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, orderaction.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, orderaction.ErrActionNotAllowed),
		errors.Is(err, orderaction.ErrRiderNotAvailable):
		return http.StatusConflict
	case errors.Is(err, orderaction.ErrCollaboratorFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
