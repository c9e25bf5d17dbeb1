package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToList   = errors.New("failed to list records")
	ErrFailedToUpdate = errors.New("failed to update record")
	ErrFailedToDelete = errors.New("failed to delete record")
	ErrDuplicateID    = errors.New("record id already exists")

	// ErrPriceOutOfRange means the price cannot be stored without losing digits.
	ErrPriceOutOfRange = errors.New("price out of storable range")
)
