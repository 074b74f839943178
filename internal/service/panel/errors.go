package panel

import "errors"

var (
	ErrUnknownBucket      = errors.New("unknown bucket")
	ErrNoSelection        = errors.New("no order selected")
	ErrCancelNotRequested = errors.New("cancel was not requested for this order")
	ErrSessionNotFound    = errors.New("panel session not found")
)
