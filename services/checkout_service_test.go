package services

import (
	"context"
	"errors"
	"testing"

	apperrors "shop-backend/common/errors"
	"shop-backend/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seedCart(t *testing.T, carts *fakeCartStore, userID primitive.ObjectID, items ...models.CartItem) {
	t.Helper()
	if err := carts.Save(context.Background(), &models.Cart{UserID: userID, Items: items}); err != nil {
		t.Fatalf("seed cart failed: %v", err)
	}
}

func TestCheckout_EmptyItemsIsInvalidInput(t *testing.T) {
	orders := &fakeOrderStore{}
	carts := newFakeCartStore()
	svc := NewCheckoutService(orders, carts, nil)

	_, err := svc.Checkout(context.Background(), primitive.NewObjectID(), nil, 49.99)
	if !apperrors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected InvalidInput, got %v", err)
	}
	if len(orders.orders) != 0 {
		t.Fatalf("no order should be created on invalid input")
	}
}

func TestCheckout_NonPositiveTotalIsInvalidInput(t *testing.T) {
	orders := &fakeOrderStore{}
	carts := newFakeCartStore()
	svc := NewCheckoutService(orders, carts, nil)
	items := []models.OrderItem{{ProductID: primitive.NewObjectID(), Quantity: 1}}

	for _, total := range []float64{0, -10} {
		_, err := svc.Checkout(context.Background(), primitive.NewObjectID(), items, total)
		if !apperrors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("total=%v: expected InvalidInput, got %v", total, err)
		}
	}
	if len(orders.orders) != 0 {
		t.Fatalf("no order should be created on invalid input")
	}
}

func TestCheckout_CreatesOrderAndClearsCart(t *testing.T) {
	orders := &fakeOrderStore{}
	carts := newFakeCartStore()
	publisher := &fakePublisher{}
	svc := NewCheckoutService(orders, carts, publisher)

	userID := primitive.NewObjectID()
	productID := primitive.NewObjectID()
	seedCart(t, carts, userID, models.CartItem{ProductID: productID, Quantity: 2})

	items := []models.OrderItem{{ProductID: productID, Quantity: 2}}
	order, err := svc.Checkout(context.Background(), userID, items, 49.99)
	if err != nil {
		t.Fatalf("Checkout failed: %v", err)
	}

	if len(orders.orders) != 1 {
		t.Fatalf("expected exactly one order, got %d", len(orders.orders))
	}
	if order.UserID != userID {
		t.Fatalf("order owner mismatch: %s", order.UserID.Hex())
	}
	if order.Total != 49.99 {
		t.Fatalf("expected total 49.99, got %v", order.Total)
	}
	if order.Status != models.OrderStatusPending {
		t.Fatalf("expected status pending, got %q", order.Status)
	}
	if len(order.Items) != 1 || order.Items[0] != items[0] {
		t.Fatalf("order items do not match submitted items: %+v", order.Items)
	}
	if order.OrderDate.IsZero() {
		t.Fatalf("order date not set")
	}

	if got := len(carts.carts[userID].Items); got != 0 {
		t.Fatalf("cart should be empty after checkout, has %d items", got)
	}

	if len(publisher.events) != 1 {
		t.Fatalf("expected one checkout event, got %d", len(publisher.events))
	}
	if publisher.events[0].OrderID != order.ID.Hex() {
		t.Fatalf("event order id mismatch")
	}
}

// The order insert and the cart clear are independent writes. When the
// cart lookup fails after the insert, the caller sees NotFound but the
// order is already persisted.
func TestCheckout_MissingCartStillLeavesOrderBehind(t *testing.T) {
	orders := &fakeOrderStore{}
	carts := newFakeCartStore()
	svc := NewCheckoutService(orders, carts, nil)

	items := []models.OrderItem{{ProductID: primitive.NewObjectID(), Quantity: 1}}
	_, err := svc.Checkout(context.Background(), primitive.NewObjectID(), items, 20)
	if !apperrors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if len(orders.orders) != 1 {
		t.Fatalf("the order write precedes the cart lookup; expected 1 order, got %d", len(orders.orders))
	}
}

func TestCheckout_CartSaveFailureLeavesOrderAndCartIntact(t *testing.T) {
	orders := &fakeOrderStore{}
	carts := newFakeCartStore()
	svc := NewCheckoutService(orders, carts, nil)

	userID := primitive.NewObjectID()
	productID := primitive.NewObjectID()
	seedCart(t, carts, userID, models.CartItem{ProductID: productID, Quantity: 3})
	carts.saveErr = errors.New("write concern failure")

	items := []models.OrderItem{{ProductID: productID, Quantity: 3}}
	_, err := svc.Checkout(context.Background(), userID, items, 30)
	if err == nil {
		t.Fatalf("expected an error when the cart clear fails")
	}
	if len(orders.orders) != 1 {
		t.Fatalf("order should already be persisted, got %d", len(orders.orders))
	}
	if got := len(carts.carts[userID].Items); got != 1 {
		t.Fatalf("cart should keep its items when the clear fails, has %d", got)
	}
}

func TestCheckout_PublishFailureDoesNotFailCheckout(t *testing.T) {
	orders := &fakeOrderStore{}
	carts := newFakeCartStore()
	publisher := &fakePublisher{err: errors.New("broker unreachable")}
	svc := NewCheckoutService(orders, carts, publisher)

	userID := primitive.NewObjectID()
	productID := primitive.NewObjectID()
	seedCart(t, carts, userID, models.CartItem{ProductID: productID, Quantity: 1})

	items := []models.OrderItem{{ProductID: productID, Quantity: 1}}
	if _, err := svc.Checkout(context.Background(), userID, items, 15); err != nil {
		t.Fatalf("publish failure must not fail the checkout: %v", err)
	}
}

func TestCheckout_OrderInsertFailure(t *testing.T) {
	orders := &fakeOrderStore{createErr: errors.New("insert failed")}
	carts := newFakeCartStore()
	svc := NewCheckoutService(orders, carts, nil)

	userID := primitive.NewObjectID()
	productID := primitive.NewObjectID()
	seedCart(t, carts, userID, models.CartItem{ProductID: productID, Quantity: 1})

	items := []models.OrderItem{{ProductID: productID, Quantity: 1}}
	_, err := svc.Checkout(context.Background(), userID, items, 15)
	if !apperrors.Is(err, apperrors.ErrDatabaseQuery) {
		t.Fatalf("expected a store failure, got %v", err)
	}
	if got := len(carts.carts[userID].Items); got != 1 {
		t.Fatalf("cart must be untouched when the insert fails, has %d items", got)
	}
}
