package mongodb

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"catalog/internal/item"
	repo "catalog/internal/item/repository"
)

// itemDocument is the stored shape of an Item.
type itemDocument struct {
	ID          string               `bson:"_id"`
	Name        string               `bson:"name"`
	Description string               `bson:"description"`
	Price       primitive.Decimal128 `bson:"price"`
	CreatedDate time.Time            `bson:"created_date"`
}

// toDecimal128 converts price without rounding. It fails when the value needs
// more than 34 significant digits or leaves the Decimal128 exponent range.
func toDecimal128(price decimal.Decimal) (primitive.Decimal128, bool) {
	return primitive.ParseDecimal128FromBigInt(price.Coefficient(), int(price.Exponent()))
}

func newDocument(id, name, description string, price decimal.Decimal, createdDate time.Time) (itemDocument, error) {
	p, ok := toDecimal128(price)
	if !ok {
		return itemDocument{}, fmt.Errorf("price %s: %w", price, repo.ErrPriceOutOfRange)
	}
	return itemDocument{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       p,
		CreatedDate: createdDate.UTC().Truncate(time.Millisecond),
	}, nil
}

func (d itemDocument) toItem() (item.Item, error) {
	price, err := decimal.NewFromString(d.Price.String())
	if err != nil {
		return item.Item{}, fmt.Errorf("document %s price %s: %w", d.ID, d.Price, err)
	}
	return item.Item{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Price:       price,
		CreatedDate: d.CreatedDate.UTC(),
	}, nil
}
