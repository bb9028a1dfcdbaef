package services

import (
	"context"
	"testing"

	apperrors "shop-backend/common/errors"
	"shop-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestListOrders_Empty(t *testing.T) {
	svc := NewOrderService(&fakeOrderStore{})

	_, err := svc.List(context.Background(), ListOrdersParams{})
	if !apperrors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected NotFound for empty listing, got %v", err)
	}
}

func TestListOrders_ReturnsPage(t *testing.T) {
	store := &fakeOrderStore{orders: []*models.Order{
		{ID: primitive.NewObjectID(), CustomerName: "Ada", Total: 12},
		{ID: primitive.NewObjectID(), CustomerName: "Grace", Total: 30},
	}}
	svc := NewOrderService(store)

	list, err := svc.List(context.Background(), ListOrdersParams{Limit: 10})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if list.Count != 2 || len(list.Orders) != 2 {
		t.Fatalf("expected 2 orders, got count %d len %d", list.Count, len(list.Orders))
	}
	if list.TotalPages != 1 {
		t.Fatalf("expected 1 total page, got %d", list.TotalPages)
	}
}

func TestUpdateOrder_UnknownIDIsNotFound(t *testing.T) {
	svc := NewOrderService(&fakeOrderStore{})

	_, err := svc.Update(context.Background(), primitive.NewObjectID(), UpdateOrderRequest{CustomerName: "Ada"})
	if !apperrors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

// deletingOrderStore drops the order as part of the update, so the re-read
// after a successful edit comes back empty.
type deletingOrderStore struct {
	fakeOrderStore
}

func (f *deletingOrderStore) Update(_ context.Context, _ primitive.ObjectID, _ bson.M) (int64, error) {
	f.orders = nil
	return 1, nil
}

func TestUpdateOrder_VanishedAfterEditIsNotFound(t *testing.T) {
	existing := &models.Order{ID: primitive.NewObjectID(), CustomerName: "Ada"}
	store := &deletingOrderStore{fakeOrderStore{orders: []*models.Order{existing}}}
	svc := NewOrderService(store)

	updated, err := svc.Update(context.Background(), existing.ID, UpdateOrderRequest{CustomerName: "Grace"})
	if !apperrors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected NotFound when the order vanished, got %v", err)
	}
	if updated != nil {
		t.Fatalf("expected nil order alongside the error, got %+v", updated)
	}
}

func TestUpdateOrder_AppliesOnlyProvidedFields(t *testing.T) {
	existing := &models.Order{
		ID:            primitive.NewObjectID(),
		CustomerName:  "Ada",
		CustomerEmail: "ada@example.com",
		Total:         50,
	}
	store := &fakeOrderStore{orders: []*models.Order{existing}}
	svc := NewOrderService(store)

	updated, err := svc.Update(context.Background(), existing.ID, UpdateOrderRequest{CustomerName: "Grace"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.CustomerName != "Grace" {
		t.Fatalf("expected customer name updated, got %q", updated.CustomerName)
	}
	if updated.CustomerEmail != "ada@example.com" || updated.Total != 50 {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}
