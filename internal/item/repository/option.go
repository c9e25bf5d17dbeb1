package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// GetOneItemOptions holds filter parameters for fetching a single Item.
type GetOneItemOptions struct {
	ID string
}

// CreateItemOptions holds the full document of a new Item.
// ID and CreatedDate are assigned by the caller.
type CreateItemOptions struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	CreatedDate time.Time
}

// UpdateItemOptions holds the full replacement document for an existing Item.
type UpdateItemOptions struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	CreatedDate time.Time
}
