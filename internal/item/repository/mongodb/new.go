package mongodb

import (
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"catalog/internal/item/repository"
	"catalog/pkg/log"
)

type implRepository struct {
	coll *mongo.Collection
	l    log.Logger
}

// New creates a new MongoDB-backed Repository for the item domain using the
// given collection of db.
func New(db *mongo.Database, collection string, l log.Logger) repository.Repository {
	if db == nil {
		panic("item/repository/mongodb: db is required")
	}
	if collection == "" {
		panic("item/repository/mongodb: collection is required")
	}
	return &implRepository{coll: db.Collection(collection), l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("item/repository/mongodb.%s", method)
}
