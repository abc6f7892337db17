package timings_patch

import "errors"

var errUnknownOp = errors.New("unknown draft operation")
