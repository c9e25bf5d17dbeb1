package usecase

import (
	"context"
	"errors"
	"strings"

	"catalog/internal/item"
	repo "catalog/internal/item/repository"
)

// filterByName keeps the items whose name contains keyword.
func (uc *implUseCase) filterByName(items []item.Item, keyword string) []item.Item {
	matched := make([]item.Item, 0, len(items))
	for _, it := range items {
		if strings.Contains(it.Name, keyword) {
			matched = append(matched, it)
		}
	}
	return matched
}

// getExisting loads an Item by ID and converts "absent" into ErrItemNotFound.
func (uc *implUseCase) getExisting(ctx context.Context, op, id string) (item.Item, error) {
	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.%s GetOneItem: %v", op, err)
		return item.Item{}, err
	}
	if existing.ID == "" {
		return item.Item{}, item.ErrItemNotFound
	}
	return existing, nil
}

// writeErr maps storage rejections of the input onto domain errors.
func (uc *implUseCase) writeErr(err error) error {
	if errors.Is(err, repo.ErrPriceOutOfRange) {
		return item.ErrPriceOutOfRange
	}
	return err
}
