package repository

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/area-length-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProductsRepository provides access to product measurement configurations.
type ProductsRepository struct {
	collection *mongo.Collection
}

// NewProductsRepository creates a new products repository.
func NewProductsRepository(db *MongoDB) *ProductsRepository {
	return &ProductsRepository{
		collection: db.Products,
	}
}

// Get returns the configuration stored for productID, or nil if there is none.
func (r *ProductsRepository) Get(ctx context.Context, productID string) (*model.ProductConfiguration, error) {
	var product model.ProductConfiguration
	err := r.collection.FindOne(ctx, bson.M{"product_id": productID}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Upsert stores product under its ProductID, bumping the version on every write.
// The product is expected to be normalized by the caller.
func (r *ProductsRepository) Upsert(ctx context.Context, product model.ProductConfiguration, updatedBy string) (*model.ProductConfiguration, error) {
	now := time.Now().UTC()

	set := bson.M{
		"name":               product.Name,
		"mode":               product.Mode,
		"units_per_package":  product.UnitsPerPackage,
		"price_per_unit":     product.PricePerUnit,
		"min_order_qty":      product.MinOrderQty,
		"max_order_qty":      product.MaxOrderQty,
		"pieces_per_package": product.PiecesPerPackage,
		"updated_at":         now,
	}
	update := bson.M{
		"$set":         set,
		"$inc":         bson.M{"version": 1},
		"$setOnInsert": bson.M{"created_at": now},
	}
	if product.StockOnHand != nil {
		set["stock_on_hand"] = *product.StockOnHand
	} else {
		update["$unset"] = bson.M{"stock_on_hand": ""}
	}
	if updatedBy != "" {
		set["updated_by"] = updatedBy
	}

	var stored model.ProductConfiguration
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"product_id": product.ProductID},
		update,
		options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After),
	).Decode(&stored)
	if err != nil {
		return nil, err
	}

	return &stored, nil
}

// List returns product configurations, most recently updated first.
func (r *ProductsRepository) List(ctx context.Context, limit int) ([]model.ProductConfiguration, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	products := make([]model.ProductConfiguration, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}

	return products, nil
}
