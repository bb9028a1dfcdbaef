package services

import (
	"context"
	"math"

	apperrors "shop-backend/common/errors"
	"shop-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderAdminStore is the wider order persistence surface used by the
// administrative endpoints. Checkout itself only needs OrderStore.
type OrderAdminStore interface {
	OrderStore
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	Find(ctx context.Context, filter bson.M, findOptions *options.FindOptions) ([]*models.Order, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (int64, error)
}

// ListOrdersParams defines the parameters for the admin order listing.
type ListOrdersParams struct {
	Page          int
	Limit         int
	Search        string // matched against customerName
	Sort          string
	Order         string
	MinTotalPrice float64
	MaxTotalPrice float64
}

// OrderList is a page of order results.
type OrderList struct {
	Count      int64           `json:"count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"totalPages"`
	Orders     []*models.Order `json:"orders"`
}

type OrderService struct {
	orders OrderAdminStore
}

func NewOrderService(orders OrderAdminStore) *OrderService {
	return &OrderService{orders: orders}
}

// List returns a page of orders filtered by customer name and total price
// range. An empty page is NotFound, same as the catalog listing.
func (s *OrderService) List(ctx context.Context, params ListOrdersParams) (*OrderList, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 10
	}
	if params.Sort == "" {
		params.Sort = "orderDate"
	}
	if params.MaxTotalPrice <= 0 {
		params.MaxTotalPrice = 1000000
	}

	order := 1
	if params.Order == "desc" {
		order = -1
	}

	filter := bson.M{
		"customerName": bson.M{"$regex": params.Search, "$options": "i"},
		"total":        bson.M{"$gte": params.MinTotalPrice, "$lte": params.MaxTotalPrice},
	}
	findOptions := options.Find().
		SetSort(bson.D{{Key: params.Sort, Value: order}}).
		SetSkip(int64((params.Page - 1) * params.Limit)).
		SetLimit(int64(params.Limit))

	orders, err := s.orders.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}
	if len(orders) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrNotFound, "No orders found")
	}

	count, err := s.orders.Count(ctx, filter)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}

	return &OrderList{
		Count:      count,
		Page:       params.Page,
		Limit:      params.Limit,
		TotalPages: int(math.Ceil(float64(count) / float64(params.Limit))),
		Orders:     orders,
	}, nil
}

// UpdateOrderRequest carries the administrative edits to an order. Empty
// fields keep their current values.
type UpdateOrderRequest struct {
	CustomerName  string
	CustomerEmail string
	Items         []models.OrderItem
	Total         float64
}

// Update applies administrative edits to an existing order and returns the
// updated document.
func (s *OrderService) Update(ctx context.Context, id primitive.ObjectID, req UpdateOrderRequest) (*models.Order, error) {
	existing, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}
	if existing == nil {
		return nil, apperrors.WithMessage(apperrors.ErrNotFound, "Order not found")
	}

	updates := bson.M{}
	if req.CustomerName != "" {
		updates["customerName"] = req.CustomerName
	}
	if req.CustomerEmail != "" {
		updates["customerEmail"] = req.CustomerEmail
	}
	if len(req.Items) > 0 {
		updates["items"] = req.Items
	}
	if req.Total > 0 {
		updates["total"] = req.Total
	}

	if len(updates) > 0 {
		if _, err := s.orders.Update(ctx, id, updates); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
		}
	}

	updated, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}
	if updated == nil {
		return nil, apperrors.WithMessage(apperrors.ErrNotFound, "Order not found")
	}
	return updated, nil
}
