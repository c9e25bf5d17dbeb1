package usecase_test

import (
	"context"

	"catalog/internal/item"
	"catalog/internal/item/repository"
)

// memRepo is an in-memory repository.Repository keeping insertion order.
// Setting an err field forces the matching method to fail.
type memRepo struct {
	items []item.Item

	listErr   error
	getErr    error
	createErr error
	updateErr error
	deleteErr error

	updateCalls int
	deleteCalls int
}

func (r *memRepo) ListItems(ctx context.Context) ([]item.Item, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]item.Item, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *memRepo) GetOneItem(ctx context.Context, opt repository.GetOneItemOptions) (item.Item, error) {
	if r.getErr != nil {
		return item.Item{}, r.getErr
	}
	for _, it := range r.items {
		if it.ID == opt.ID {
			return it, nil
		}
	}
	return item.Item{}, nil
}

func (r *memRepo) CreateItem(ctx context.Context, opt repository.CreateItemOptions) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.items = append(r.items, item.Item{
		ID:          opt.ID,
		Name:        opt.Name,
		Description: opt.Description,
		Price:       opt.Price,
		CreatedDate: opt.CreatedDate,
	})
	return nil
}

func (r *memRepo) UpdateItem(ctx context.Context, opt repository.UpdateItemOptions) error {
	r.updateCalls++
	if r.updateErr != nil {
		return r.updateErr
	}
	for i, it := range r.items {
		if it.ID == opt.ID {
			r.items[i] = item.Item{
				ID:          opt.ID,
				Name:        opt.Name,
				Description: opt.Description,
				Price:       opt.Price,
				CreatedDate: opt.CreatedDate,
			}
		}
	}
	return nil
}

func (r *memRepo) DeleteItem(ctx context.Context, id string) error {
	r.deleteCalls++
	if r.deleteErr != nil {
		return r.deleteErr
	}
	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			break
		}
	}
	return nil
}
