package usecase

import (
	"context"

	"catalog/internal/item"
	repo "catalog/internal/item/repository"
)

// Detail retrieves a single Item by ID. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (item.DetailItemOutput, error) {
	existing, err := uc.getExisting(ctx, "Detail", id)
	if err != nil {
		return item.DetailItemOutput{}, err
	}
	return item.DetailItemOutput{Item: existing}, nil
}

// Update overwrites name and price of an existing Item. Description and
// creation date are carried over unchanged. Returns ErrItemNotFound when not found.
//
// The existence check and the replace are separate store calls; an Item
// deleted in between makes the replace a no-op.
func (uc *implUseCase) Update(ctx context.Context, input item.UpdateItemInput) error {
	if input.Price.IsNegative() {
		return item.ErrNegativePrice
	}

	existing, err := uc.getExisting(ctx, "Update", input.ID)
	if err != nil {
		return err
	}

	existing.Name = input.Name
	existing.Price = input.Price

	err = uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
		ID:          existing.ID,
		Name:        existing.Name,
		Description: existing.Description,
		Price:       existing.Price,
		CreatedDate: existing.CreatedDate,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
		return uc.writeErr(err)
	}
	return nil
}

// Delete removes an Item by ID. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.getExisting(ctx, "Delete", id); err != nil {
		return err
	}
	if err := uc.repo.DeleteItem(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteItem: %v", err)
		return err
	}
	return nil
}
