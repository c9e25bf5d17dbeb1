package repository

import (
	"context"

	"catalog/internal/item"
)

// Repository is the composed interface for the item data store.
type Repository interface {
	ItemRepository
}

// ItemRepository defines all data access methods for the Item entity.
type ItemRepository interface {
	// ListItems returns every stored item in storage order.
	ListItems(ctx context.Context) ([]item.Item, error)
	// GetOneItem returns a zero-value Item (ID == "") when nothing matches.
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (item.Item, error)
	CreateItem(ctx context.Context, opt CreateItemOptions) error
	// UpdateItem replaces the stored item in full. A missing id is a no-op.
	UpdateItem(ctx context.Context, opt UpdateItemOptions) error
	// DeleteItem removes the item. A missing id is a no-op.
	DeleteItem(ctx context.Context, id string) error
}
