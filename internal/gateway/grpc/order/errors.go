package order

import "errors"

var ErrRejected = errors.New("order service rejected the request")
