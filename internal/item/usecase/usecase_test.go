package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog/internal/item"
	"catalog/internal/item/repository"
	"catalog/internal/item/usecase"
	"catalog/pkg/log"
)

func seededRepo() *memRepo {
	created := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	return &memRepo{items: []item.Item{
		{ID: uuid.NewString(), Name: "Potion", Description: "Restores 50 HP", Price: decimal.NewFromInt(9), CreatedDate: created},
		{ID: uuid.NewString(), Name: "Antidote", Description: "Cures poison", Price: decimal.NewFromInt(5), CreatedDate: created},
		{ID: uuid.NewString(), Name: "Hi-Potion", Description: "Restores 200 HP", Price: decimal.RequireFromString("19.99"), CreatedDate: created},
	}}
}

func names(items []item.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("No Keyword Returns All", func(t *testing.T) {
		uc := usecase.New(seededRepo(), log.NewNop())
		out, err := uc.List(ctx, item.ListItemsInput{})
		require.NoError(t, err)
		assert.Equal(t, []string{"Potion", "Antidote", "Hi-Potion"}, names(out.Items))
	})

	t.Run("Keyword Filters By Substring", func(t *testing.T) {
		uc := usecase.New(seededRepo(), log.NewNop())
		out, err := uc.List(ctx, item.ListItemsInput{Keyword: "Potion"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Potion", "Hi-Potion"}, names(out.Items))
	})

	t.Run("Keyword Is Case Sensitive", func(t *testing.T) {
		uc := usecase.New(seededRepo(), log.NewNop())
		out, err := uc.List(ctx, item.ListItemsInput{Keyword: "potion"})
		require.NoError(t, err)
		assert.Empty(t, out.Items)
		assert.NotNil(t, out.Items)
	})

	t.Run("Empty Store", func(t *testing.T) {
		uc := usecase.New(&memRepo{}, log.NewNop())
		out, err := uc.List(ctx, item.ListItemsInput{})
		require.NoError(t, err)
		assert.NotNil(t, out.Items)
		assert.Empty(t, out.Items)
	})

	t.Run("Repository Error", func(t *testing.T) {
		uc := usecase.New(&memRepo{listErr: repository.ErrFailedToList}, log.NewNop())
		_, err := uc.List(ctx, item.ListItemsInput{})
		assert.ErrorIs(t, err, repository.ErrFailedToList)
	})
}

func TestDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("Existing Item", func(t *testing.T) {
		repo := seededRepo()
		uc := usecase.New(repo, log.NewNop())
		out, err := uc.Detail(ctx, repo.items[0].ID)
		require.NoError(t, err)
		assert.Equal(t, repo.items[0], out.Item)
	})

	t.Run("Unknown ID", func(t *testing.T) {
		uc := usecase.New(seededRepo(), log.NewNop())
		_, err := uc.Detail(ctx, uuid.NewString())
		assert.ErrorIs(t, err, item.ErrItemNotFound)
	})

	t.Run("Repository Error", func(t *testing.T) {
		uc := usecase.New(&memRepo{getErr: repository.ErrFailedToGet}, log.NewNop())
		_, err := uc.Detail(ctx, uuid.NewString())
		assert.ErrorIs(t, err, repository.ErrFailedToGet)
	})
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Assigns ID And Created Date", func(t *testing.T) {
		repo := &memRepo{}
		uc := usecase.New(repo, log.NewNop())

		input := item.CreateItemInput{Name: "Elixir", Description: "Heals all", Price: decimal.NewFromInt(100)}
		out, err := uc.Create(ctx, input)
		require.NoError(t, err)

		_, parseErr := uuid.Parse(out.Item.ID)
		assert.NoError(t, parseErr)
		assert.WithinDuration(t, time.Now(), out.Item.CreatedDate, time.Second)
		assert.Equal(t, "Elixir", out.Item.Name)
		assert.Equal(t, "Heals all", out.Item.Description)
		assert.True(t, decimal.NewFromInt(100).Equal(out.Item.Price))

		require.Len(t, repo.items, 1)
		assert.Equal(t, out.Item, repo.items[0])
	})

	t.Run("IDs Are Unique", func(t *testing.T) {
		uc := usecase.New(&memRepo{}, log.NewNop())
		input := item.CreateItemInput{Name: "Elixir", Price: decimal.NewFromInt(1)}

		first, err := uc.Create(ctx, input)
		require.NoError(t, err)
		second, err := uc.Create(ctx, input)
		require.NoError(t, err)
		assert.NotEqual(t, first.Item.ID, second.Item.ID)
	})

	t.Run("Negative Price", func(t *testing.T) {
		repo := &memRepo{}
		uc := usecase.New(repo, log.NewNop())
		_, err := uc.Create(ctx, item.CreateItemInput{Name: "Elixir", Price: decimal.NewFromInt(-1)})
		assert.ErrorIs(t, err, item.ErrNegativePrice)
		assert.Empty(t, repo.items)
	})

	t.Run("Repository Error", func(t *testing.T) {
		storeErr := errors.New("store down")
		uc := usecase.New(&memRepo{createErr: storeErr}, log.NewNop())
		_, err := uc.Create(ctx, item.CreateItemInput{Name: "Elixir"})
		assert.ErrorIs(t, err, storeErr)
	})

	t.Run("Unstorable Price", func(t *testing.T) {
		uc := usecase.New(&memRepo{createErr: repository.ErrPriceOutOfRange}, log.NewNop())
		_, err := uc.Create(ctx, item.CreateItemInput{Name: "Elixir", Price: decimal.NewFromInt(1)})
		assert.ErrorIs(t, err, item.ErrPriceOutOfRange)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Changes Only Name And Price", func(t *testing.T) {
		repo := seededRepo()
		before := repo.items[0]
		uc := usecase.New(repo, log.NewNop())

		err := uc.Update(ctx, item.UpdateItemInput{ID: before.ID, Name: "Mega Potion", Price: decimal.NewFromInt(12)})
		require.NoError(t, err)

		after := repo.items[0]
		assert.Equal(t, before.ID, after.ID)
		assert.Equal(t, "Mega Potion", after.Name)
		assert.True(t, decimal.NewFromInt(12).Equal(after.Price))
		assert.Equal(t, before.Description, after.Description)
		assert.True(t, before.CreatedDate.Equal(after.CreatedDate))
	})

	t.Run("Unknown ID", func(t *testing.T) {
		repo := seededRepo()
		uc := usecase.New(repo, log.NewNop())
		err := uc.Update(ctx, item.UpdateItemInput{ID: uuid.NewString(), Name: "x"})
		assert.ErrorIs(t, err, item.ErrItemNotFound)
		assert.Zero(t, repo.updateCalls)
	})

	t.Run("Negative Price", func(t *testing.T) {
		repo := seededRepo()
		uc := usecase.New(repo, log.NewNop())
		err := uc.Update(ctx, item.UpdateItemInput{ID: repo.items[0].ID, Name: "x", Price: decimal.NewFromInt(-5)})
		assert.ErrorIs(t, err, item.ErrNegativePrice)
		assert.Zero(t, repo.updateCalls)
	})

	t.Run("Repository Error", func(t *testing.T) {
		repo := seededRepo()
		repo.updateErr = repository.ErrFailedToUpdate
		uc := usecase.New(repo, log.NewNop())
		err := uc.Update(ctx, item.UpdateItemInput{ID: repo.items[0].ID, Name: "x"})
		assert.ErrorIs(t, err, repository.ErrFailedToUpdate)
	})

	t.Run("Unstorable Price", func(t *testing.T) {
		repo := seededRepo()
		repo.updateErr = repository.ErrPriceOutOfRange
		uc := usecase.New(repo, log.NewNop())
		err := uc.Update(ctx, item.UpdateItemInput{ID: repo.items[0].ID, Name: "x"})
		assert.ErrorIs(t, err, item.ErrPriceOutOfRange)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Delete Then Detail Is Not Found", func(t *testing.T) {
		repo := seededRepo()
		id := repo.items[1].ID
		uc := usecase.New(repo, log.NewNop())

		require.NoError(t, uc.Delete(ctx, id))

		_, err := uc.Detail(ctx, id)
		assert.ErrorIs(t, err, item.ErrItemNotFound)
		assert.Len(t, repo.items, 2)
	})

	t.Run("Unknown ID", func(t *testing.T) {
		repo := seededRepo()
		uc := usecase.New(repo, log.NewNop())
		err := uc.Delete(ctx, uuid.NewString())
		assert.ErrorIs(t, err, item.ErrItemNotFound)
		assert.Zero(t, repo.deleteCalls)
	})

	t.Run("Repository Error", func(t *testing.T) {
		repo := seededRepo()
		repo.deleteErr = repository.ErrFailedToDelete
		uc := usecase.New(repo, log.NewNop())
		err := uc.Delete(ctx, repo.items[0].ID)
		assert.ErrorIs(t, err, repository.ErrFailedToDelete)
	})
}
