package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"catalog/internal/item"
	repo "catalog/internal/item/repository"
)

// ListItems returns every Item in the collection.
func (r *implRepository) ListItems(ctx context.Context) ([]item.Item, error) {
	cur, err := r.coll.Find(ctx, r.buildListFilter())
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}
	defer cur.Close(ctx)

	var docs []itemDocument
	if err := cur.All(ctx, &docs); err != nil {
		r.l.Errorf(ctx, "%s decode: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}

	items := make([]item.Item, 0, len(docs))
	for _, doc := range docs {
		it, err := doc.toItem()
		if err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
			return nil, repo.ErrFailedToList
		}
		items = append(items, it)
	}
	return items, nil
}

// GetOneItem retrieves a single Item by ID.
// Returns zero-value Item (ID == "") when not found; not-found is not an error.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (item.Item, error) {
	var doc itemDocument
	err := r.coll.FindOne(ctx, r.buildIDFilter(opt.ID)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return item.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return item.Item{}, repo.ErrFailedToGet
	}

	it, err := doc.toItem()
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return item.Item{}, repo.ErrFailedToGet
	}
	return it, nil
}

// CreateItem inserts a new Item document.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) error {
	doc, err := newDocument(opt.ID, opt.Name, opt.Description, opt.Price, opt.CreatedDate)
	if err != nil {
		r.l.Warnf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return repo.ErrPriceOutOfRange
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		if mongo.IsDuplicateKeyError(err) {
			return repo.ErrDuplicateID
		}
		return repo.ErrFailedToInsert
	}
	return nil
}

// UpdateItem replaces the Item document with the same ID.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) error {
	doc, err := newDocument(opt.ID, opt.Name, opt.Description, opt.Price, opt.CreatedDate)
	if err != nil {
		r.l.Warnf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return repo.ErrPriceOutOfRange
	}

	res, err := r.coll.ReplaceOne(ctx, r.buildIDFilter(opt.ID), doc)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return repo.ErrFailedToUpdate
	}
	if res.MatchedCount == 0 {
		r.l.Warnf(ctx, "%s: no document matched id %s", r.dsn("UpdateItem"), opt.ID)
	}
	return nil
}

// DeleteItem removes an Item by ID.
func (r *implRepository) DeleteItem(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, r.buildIDFilter(id))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return repo.ErrFailedToDelete
	}
	if res.DeletedCount == 0 {
		r.l.Warnf(ctx, "%s: no document matched id %s", r.dsn("DeleteItem"), id)
	}
	return nil
}
