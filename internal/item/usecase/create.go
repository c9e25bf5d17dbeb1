package usecase

import (
	"context"

	"catalog/internal/item"
	repo "catalog/internal/item/repository"
)

// Create assigns a fresh ID and creation time, then persists the new Item.
func (uc *implUseCase) Create(ctx context.Context, input item.CreateItemInput) (item.CreateItemOutput, error) {
	if input.Price.IsNegative() {
		return item.CreateItemOutput{}, item.ErrNegativePrice
	}

	it := item.Item{
		ID:          uc.newID(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		CreatedDate: uc.now(),
	}

	err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Price:       it.Price,
		CreatedDate: it.CreatedDate,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return item.CreateItemOutput{}, uc.writeErr(err)
	}

	return item.CreateItemOutput{Item: it}, nil
}
