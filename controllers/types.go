package controllers

import (
	"context"

	"shop-backend/models"
	"shop-backend/services"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartAPI defines the cart operations the cart controller depends on.
type CartAPI interface {
	GetCart(ctx context.Context, userID primitive.ObjectID, page, limit int) (*models.CartView, error)
	AddToCart(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (*models.Cart, bool, error)
	UpdateCart(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (*models.Cart, error)
	RemoveFromCart(ctx context.Context, userID, productID primitive.ObjectID) (*models.Cart, error)
}

// CheckoutAPI defines the checkout operation the checkout controller
// depends on.
type CheckoutAPI interface {
	Checkout(ctx context.Context, userID primitive.ObjectID, items []models.OrderItem, total float64) (*models.Order, error)
}

// ProductAPI defines the catalog operations the product controller depends on.
type ProductAPI interface {
	List(ctx context.Context, params services.ListProductsParams) (*services.ProductList, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (*models.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// OrderAPI defines the administrative order operations.
type OrderAPI interface {
	List(ctx context.Context, params services.ListOrdersParams) (*services.OrderList, error)
	Update(ctx context.Context, id primitive.ObjectID, req services.UpdateOrderRequest) (*models.Order, error)
}

// AuthAPI defines the account operations the auth and user controllers
// depend on.
type AuthAPI interface {
	Register(ctx context.Context, user *models.User, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	AdminLogin(ctx context.Context, email, password string) (string, error)
	Profile(ctx context.Context, userID primitive.ObjectID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, firstName, lastName, username string) (*models.User, error)
}

// PasswordResetAPI defines the forgot/reset password operations.
type PasswordResetAPI interface {
	Forgot(ctx context.Context, email string) error
	Reset(ctx context.Context, token, password string) error
}
