package orderaction

import "errors"

var (
	ErrMissingOrderID      = errors.New("order id is required")
	ErrOrderNotFound       = errors.New("order not found")
	ErrForbidden           = errors.New("order belongs to another branch")
	ErrUnknownAction       = errors.New("unknown order action")
	ErrActionNotAllowed    = errors.New("action is not allowed for the order in its current status")
	ErrMissingCancelReason = errors.New("cancel reason is required")
	ErrMissingRiderID      = errors.New("rider id is required")
	ErrRiderNotAvailable   = errors.New("rider is not available for the order")
	ErrCollaboratorFailed  = errors.New("order collaborator failed")
)
