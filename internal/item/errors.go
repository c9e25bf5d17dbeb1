package item

import "errors"

var (
	ErrItemNotFound    = errors.New("item not found")
	ErrInvalidID       = errors.New("invalid item id")
	ErrInvalidPayload  = errors.New("invalid payload")
	ErrNegativePrice   = errors.New("price must not be negative")
	ErrPriceOutOfRange = errors.New("price must have at most 34 significant digits")
)
