package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/Beka01247/menu-order/internal/domain"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// menuItemDocument stores the price as a decimal string and keeps the catalog
// position so reads come back in menu order.
type menuItemDocument struct {
	domain.MenuItem `bson:",inline"`
	Price           string    `bson:"price"`
	Position        int       `bson:"position"`
	UpdatedAt       time.Time `bson:"updated_at"`
}

type CatalogRepository struct {
	collection *mongo.Collection
}

func NewCatalogRepository(db *mongo.Database) *CatalogRepository {
	return &CatalogRepository{
		collection: db.Collection(collectionMenuItems),
	}
}

func (r *CatalogRepository) LoadCatalog(ctx context.Context) ([]domain.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []menuItemDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	items := make([]domain.MenuItem, 0, len(docs))
	for _, doc := range docs {
		price, err := decimal.NewFromString(doc.Price)
		if err != nil {
			return nil, fmt.Errorf("invalid price for item %s: %w", doc.ID, err)
		}
		item := doc.MenuItem
		item.Price = price
		items = append(items, item)
	}

	return items, nil
}

// ReplaceAll swaps the stored catalog. Run it inside Storage.WithTransaction so
// readers never see a half written menu.
func (r *CatalogRepository) ReplaceAll(ctx context.Context, items []domain.MenuItem) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear catalog: %w", err)
	}

	if len(items) == 0 {
		return nil
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(items))
	for i, item := range items {
		docs = append(docs, menuItemDocument{
			MenuItem:  item,
			Price:     item.Price.String(),
			Position:  i,
			UpdatedAt: now,
		})
	}

	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert catalog: %w", err)
	}

	return nil
}
