package mongodb

import (
	"go.mongodb.org/mongo-driver/bson"
)

// buildListFilter matches every document.
func (r *implRepository) buildListFilter() bson.D {
	return bson.D{}
}

// buildIDFilter matches the document with the given id.
func (r *implRepository) buildIDFilter(id string) bson.D {
	return bson.D{{Key: "_id", Value: id}}
}
