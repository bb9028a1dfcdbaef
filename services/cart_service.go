package services

import (
	"context"

	apperrors "shop-backend/common/errors"
	"shop-backend/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartStore is the persistence boundary for carts. FindByUser returns
// (nil, nil) when the user has no cart yet.
type CartStore interface {
	FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) error
}

// ProductFinder resolves catalog products. FindByID returns (nil, nil) for
// an unknown id.
type ProductFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
}

// CartService is the single source of truth for a user's in-progress
// selections. Every operation works on the one cart document keyed by the
// user id; there is no optimistic concurrency control, so two concurrent
// mutations for the same user are last-writer-wins.
type CartService struct {
	carts    CartStore
	products ProductFinder
}

func NewCartService(carts CartStore, products ProductFinder) *CartService {
	return &CartService{carts: carts, products: products}
}

// GetCart returns the user's cart with each line resolved against the
// catalog at read time. A user without a cart gets (nil, nil), not an
// error: the route layer turns that into a success response with a null
// payload. page and limit are accepted for interface compatibility; the
// cart is a single document and is never paginated.
func (s *CartService) GetCart(ctx context.Context, userID primitive.ObjectID, page, limit int) (*models.CartView, error) {
	_ = page
	_ = limit

	cart, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}
	if cart == nil {
		return nil, nil
	}

	view := &models.CartView{
		UserID:    cart.UserID,
		Items:     make([]models.CartItemView, 0, len(cart.Items)),
		UpdatedAt: cart.UpdatedAt,
	}
	for _, item := range cart.Items {
		line := models.CartItemView{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
		product, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
		}
		if product != nil {
			line.Name = product.Name
			line.Price = product.Price
			line.Image = product.Image
		}
		view.Items = append(view.Items, line)
	}
	return view, nil
}

// AddToCart adds quantity of a product to the user's cart, creating the
// cart lazily on first use. Adding a product already in the cart increments
// the existing line instead of appending a duplicate. The quantity is not
// checked against catalog stock. The returned bool is true when a new cart
// was created.
func (s *CartService) AddToCart(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (*models.Cart, bool, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, false, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}
	if product == nil {
		return nil, false, apperrors.WithMessage(apperrors.ErrNotFound, "Product not found.")
	}

	cart, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		return nil, false, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}

	if cart == nil {
		cart = &models.Cart{
			UserID: userID,
			Items:  []models.CartItem{{ProductID: productID, Quantity: quantity}},
		}
		if err := s.carts.Save(ctx, cart); err != nil {
			return nil, false, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
		}
		return cart, true, nil
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, models.CartItem{ProductID: productID, Quantity: quantity})
	}

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, false, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}
	return cart, false, nil
}

// UpdateCart overwrites the quantity of an existing cart line. The value is
// applied as given: a zero or negative quantity is stored as-is, matching
// the legacy contract.
func (s *CartService) UpdateCart(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (*models.Cart, error) {
	cart, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}
	if cart == nil {
		return nil, apperrors.WithMessage(apperrors.ErrNotFound, "Cart not found.")
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		return nil, apperrors.WithMessage(apperrors.ErrNotFound, "Item not found in cart.")
	}

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}
	return cart, nil
}

// RemoveFromCart removes the line matching productID. Removing a product
// that is not in the cart is a success, not an error; only a missing cart
// is NotFound.
func (s *CartService) RemoveFromCart(ctx context.Context, userID, productID primitive.ObjectID) (*models.Cart, error) {
	cart, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}
	if cart == nil {
		return nil, apperrors.WithMessage(apperrors.ErrNotFound, "Cart not found.")
	}

	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	cart.Items = kept

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}
	return cart, nil
}
