package history

import "errors"

var (
	ErrInvalidStatus    = errors.New("status is not available in history")
	ErrInvalidPageSize  = errors.New("invalid page size")
	ErrInvalidDateRange = errors.New("date range start is after its end")
	ErrInvalidCursor    = errors.New("invalid cursor")
)
