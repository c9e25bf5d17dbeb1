package item

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, input ListItemsInput) (ListItemsOutput, error)
	Detail(ctx context.Context, id string) (DetailItemOutput, error)
	Create(ctx context.Context, input CreateItemInput) (CreateItemOutput, error)
	Update(ctx context.Context, input UpdateItemInput) error
	Delete(ctx context.Context, id string) error
}
