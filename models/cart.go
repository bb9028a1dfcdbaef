package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is a single line in a cart. Items are keyed by product: a cart
// never holds two items referencing the same product.
type CartItem struct {
	ProductID primitive.ObjectID `bson:"product" json:"productId"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

// Cart is the per-user mutable collection of pending selections. There is
// at most one cart per user; lookups go by user id, never by cart id.
type Cart struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"user" json:"user"`
	Items     []CartItem         `bson:"items" json:"items"`
	CreatedAt time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// CartItemView is a cart line resolved against the catalog at read time.
type CartItemView struct {
	ProductID primitive.ObjectID `json:"productId"`
	Quantity  int                `json:"quantity"`
	Name      string             `json:"name"`
	Price     float64            `json:"price"`
	Image     string             `json:"image"`
}

// CartView is what GetCart returns: the cart with its items enriched with
// current catalog data. Nothing here is cached back to the store.
type CartView struct {
	UserID    primitive.ObjectID `json:"user"`
	Items     []CartItemView     `json:"items"`
	UpdatedAt time.Time          `json:"updated_at,omitempty"`
}
