package services

import (
	"context"
	"time"

	apperrors "shop-backend/common/errors"
	"shop-backend/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStore is the persistence boundary for orders.
type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
}

// EventPublisher sends the post-checkout event. A nil publisher disables
// eventing.
type EventPublisher interface {
	SendCheckoutEvent(event models.CheckoutEvent) error
}

// CheckoutService converts the contents of a cart into a persisted order
// and empties the cart.
//
// The order insert and the cart clear are two independent writes with no
// surrounding transaction: if the insert succeeds and the clear fails, the
// order exists while the cart still holds its items, and a client retry
// produces a second order.
//
// items and total come from the caller and are NOT recomputed from the
// server-held cart or catalog.
type CheckoutService struct {
	orders    OrderStore
	carts     CartStore
	publisher EventPublisher
}

func NewCheckoutService(orders OrderStore, carts CartStore, publisher EventPublisher) *CheckoutService {
	return &CheckoutService{orders: orders, carts: carts, publisher: publisher}
}

// Checkout persists a pending order for the supplied items and total, then
// clears the user's cart. The cart must exist even though its contents are
// ignored; a missing cart is NotFound, reported after the order has already
// been written.
func (s *CheckoutService) Checkout(ctx context.Context, userID primitive.ObjectID, items []models.OrderItem, total float64) (*models.Order, error) {
	if len(items) == 0 || total <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Please provide items and total.")
	}

	order := &models.Order{
		UserID:    userID,
		Items:     append([]models.OrderItem(nil), items...),
		Total:     total,
		OrderDate: time.Now().UTC(),
		Status:    models.OrderStatusPending,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}

	cart, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}
	if cart == nil {
		return nil, apperrors.WithMessage(apperrors.ErrNotFound, "Cart not found.")
	}

	cart.Items = []models.CartItem{}
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}

	if s.publisher != nil {
		// Event delivery is best-effort; the order is already committed.
		_ = s.publisher.SendCheckoutEvent(models.CheckoutEvent{
			Event:     "checkout.completed",
			UserID:    userID.Hex(),
			OrderID:   order.ID.Hex(),
			Items:     order.Items,
			Total:     order.Total,
			Timestamp: order.OrderDate,
		})
	}

	return order, nil
}
