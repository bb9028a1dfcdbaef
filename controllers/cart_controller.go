package controllers

import (
	"net/http"
	"strconv"

	apperrors "shop-backend/common/errors"
	"shop-backend/middleware"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CartController struct {
	cart CartAPI
}

func NewCartController(cart CartAPI) *CartController {
	return &CartController{cart: cart}
}

type AddToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  *int   `json:"quantity" binding:"required"`
}

type UpdateCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
	// Pointer so that an explicit zero survives binding. The value is
	// applied without a lower-bound check.
	Quantity *int `json:"quantity" binding:"required"`
}

// GetCart returns the caller's cart resolved against the catalog. A user
// with no cart gets success=true with a null payload, not a 404.
func (cc *CartController) GetCart(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	cart, err := cc.cart.GetCart(c.Request.Context(), userID, page, limit)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    cart,
	})
}

// AddToCart adds a product to the caller's cart, creating the cart on
// first use.
func (cc *CartController) AddToCart(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized"})
		return
	}

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide productId and quantity."})
		return
	}

	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product id."})
		return
	}

	cart, created, err := cc.cart.AddToCart(c.Request.Context(), userID, productID, *req.Quantity)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	if created {
		c.JSON(http.StatusCreated, cart)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// UpdateCart overwrites the quantity of an item already in the cart.
func (cc *CartController) UpdateCart(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized"})
		return
	}

	var req UpdateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide productId and quantity."})
		return
	}

	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product id."})
		return
	}

	cart, err := cc.cart.UpdateCart(c.Request.Context(), userID, productID, *req.Quantity)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// RemoveFromCart removes an item from the cart. Removing a product that is
// not in the cart still succeeds.
func (cc *CartController) RemoveFromCart(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized"})
		return
	}

	productID, err := primitive.ObjectIDFromHex(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product id."})
		return
	}

	cart, err := cc.cart.RemoveFromCart(c.Request.Context(), userID, productID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}
