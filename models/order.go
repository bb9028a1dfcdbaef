package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatusPending is the only status checkout ever produces; further
// transitions are administrative.
const OrderStatusPending = "pending"

// OrderItem is a snapshot of a cart line at checkout time, not a live
// reference to the cart.
type OrderItem struct {
	ProductID primitive.ObjectID `bson:"product" json:"productId"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID        primitive.ObjectID `bson:"user" json:"user"`
	CustomerName  string             `bson:"customerName,omitempty" json:"customerName,omitempty"`
	CustomerEmail string             `bson:"customerEmail,omitempty" json:"customerEmail,omitempty"`
	Items         []OrderItem        `bson:"items" json:"items"`
	Total         float64            `bson:"total" json:"total"`
	OrderDate     time.Time          `bson:"orderDate" json:"orderDate"`
	Status        string             `bson:"status" json:"status"`
}

// CheckoutEvent is published to Kafka after a successful checkout.
type CheckoutEvent struct {
	Event     string      `json:"event"` // e.g. "checkout.completed"
	UserID    string      `json:"user_id"`
	OrderID   string      `json:"order_id"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	Timestamp time.Time   `json:"timestamp"`
}
