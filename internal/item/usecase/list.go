package usecase

import (
	"context"

	"catalog/internal/item"
)

const listLogTimeLayout = "15:04:05"

// List returns every Item, narrowed to names containing input.Keyword when set.
// Matching is case-sensitive and byte-wise.
func (uc *implUseCase) List(ctx context.Context, input item.ListItemsInput) (item.ListItemsOutput, error) {
	items, err := uc.repo.ListItems(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return item.ListItemsOutput{}, err
	}

	if input.Keyword != "" {
		items = uc.filterByName(items, input.Keyword)
	}
	if items == nil {
		items = []item.Item{}
	}

	uc.l.Infof(ctx, "%s : Retrieved %d items", uc.now().Format(listLogTimeLayout), len(items))

	return item.ListItemsOutput{Items: items}, nil
}
