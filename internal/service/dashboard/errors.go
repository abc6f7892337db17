package dashboard

import "errors"

var (
	ErrUnknownAggregate = errors.New("unknown aggregate")
	ErrUnknownStatus    = errors.New("unknown order status")
	ErrMissingOrderID   = errors.New("order id is required")
)
