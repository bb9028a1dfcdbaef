package controllers

import (
	"net/http"

	apperrors "shop-backend/common/errors"
	"shop-backend/middleware"
	"shop-backend/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CheckoutController struct {
	checkout CheckoutAPI
}

func NewCheckoutController(checkout CheckoutAPI) *CheckoutController {
	return &CheckoutController{checkout: checkout}
}

type CheckoutItem struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

type CheckoutRequest struct {
	Items []CheckoutItem `json:"items"`
	Total float64        `json:"total"`
}

// Checkout converts the submitted items and total into a pending order and
// clears the caller's cart. The payload is taken at face value; nothing is
// recomputed from the server-held cart.
func (cc *CheckoutController) Checkout(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized"})
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide items and total."})
		return
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := primitive.ObjectIDFromHex(item.ProductID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product id."})
			return
		}
		items = append(items, models.OrderItem{ProductID: productID, Quantity: item.Quantity})
	}

	order, err := cc.checkout.Checkout(c.Request.Context(), userID, items, req.Total)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
