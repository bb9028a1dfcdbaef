package repository

import (
	"context"
	"errors"
	"time"

	"shop-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CartRepository struct {
	collection *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{
		collection: db.Collection("carts"),
	}
}

// FindByUser returns the user's cart, or (nil, nil) when no cart exists.
func (r *CartRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	var cart models.Cart
	err := r.collection.FindOne(ctx, bson.M{"user": userID}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// Save upserts the cart document keyed by its owning user. The unique index
// on "user" keeps concurrent first saves from producing two carts.
func (r *CartRepository) Save(ctx context.Context, cart *models.Cart) error {
	now := time.Now().UTC()
	if cart.CreatedAt.IsZero() {
		cart.CreatedAt = now
	}
	cart.UpdatedAt = now

	filter := bson.M{"user": cart.UserID}
	opts := options.Replace().SetUpsert(true)
	res, err := r.collection.ReplaceOne(ctx, filter, cart, opts)
	if err != nil {
		return err
	}
	if res.UpsertedID != nil {
		if id, ok := res.UpsertedID.(primitive.ObjectID); ok {
			cart.ID = id
		}
	}
	return nil
}
