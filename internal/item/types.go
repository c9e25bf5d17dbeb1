package item

import (
	"time"

	"github.com/shopspring/decimal"
)

// --- Item Domain Model ---

// Item is the catalog record managed by this module.
type Item struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	CreatedDate time.Time
}

// --- UseCase Inputs ---

type ListItemsInput struct {
	Keyword string
}

type CreateItemInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
}

// UpdateItemInput carries the only mutable fields of an Item.
type UpdateItemInput struct {
	ID    string
	Name  string
	Price decimal.Decimal
}

// --- UseCase Outputs ---

type ListItemsOutput struct {
	Items []Item
}

type CreateItemOutput struct {
	Item Item
}

type DetailItemOutput struct {
	Item Item
}
