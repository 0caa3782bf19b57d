package registry

import "errors"

var (
	ErrDuplicateOrderID = errors.New("an order with this id is already registered")
	ErrInvalidParam     = errors.New("the param is invalid")
	ErrNotFound         = errors.New("not found")
	ErrShutdown         = errors.New("engine is shutting down")
)
