package http

import (
	"path"
	"time"

	"github.com/shopspring/decimal"

	"catalog/internal/item"
)

// --- Request DTOs ---

type listReq struct {
	Keyword string `form:"keyword"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() item.ListItemsInput {
	return item.ListItemsInput{Keyword: r.Keyword}
}

// ---

type createReq struct {
	Name        string          `json:"name"        binding:"required,max=255"`
	Description string          `json:"description" binding:"max=1000"`
	Price       decimal.Decimal `json:"price"       swaggertype:"string" example:"100"`
}

func (r createReq) validate() error {
	if r.Price.IsNegative() {
		return item.ErrNegativePrice
	}
	return nil
}

func (r createReq) toInput() item.CreateItemInput {
	return item.CreateItemInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
	}
}

// ---

type updateReq struct {
	ID    string          `json:"-"` // populated from URI param
	Name  string          `json:"name"  binding:"required,max=255"`
	Price decimal.Decimal `json:"price" swaggertype:"string" example:"100"`
}

func (r updateReq) validate() error {
	if r.Price.IsNegative() {
		return item.ErrNegativePrice
	}
	return nil
}

func (r updateReq) toInput() item.UpdateItemInput {
	return item.UpdateItemInput{
		ID:    r.ID,
		Name:  r.Name,
		Price: r.Price,
	}
}

// --- Response DTOs ---

type itemResp struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"        swaggertype:"string" example:"100"`
	CreatedDate time.Time       `json:"created_date"`
}

func newItemResp(it item.Item) itemResp {
	return itemResp{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Price:       it.Price,
		CreatedDate: it.CreatedDate,
	}
}

func (h *handler) newListResp(out item.ListItemsOutput) []itemResp {
	items := make([]itemResp, len(out.Items))
	for i, it := range out.Items {
		items[i] = newItemResp(it)
	}
	return items
}

func (h *handler) newDetailResp(out item.DetailItemOutput) itemResp {
	return newItemResp(out.Item)
}

func (h *handler) newCreateResp(out item.CreateItemOutput) itemResp {
	return newItemResp(out.Item)
}

// location returns the get-by-id path of a created item, relative to the
// collection path the create request was posted to.
func (h *handler) location(collectionPath, id string) string {
	return path.Join(collectionPath, id)
}
