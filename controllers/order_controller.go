package controllers

import (
	"net/http"
	"strconv"

	apperrors "shop-backend/common/errors"
	"shop-backend/models"
	"shop-backend/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderController struct {
	orders OrderAPI
}

func NewOrderController(orders OrderAPI) *OrderController {
	return &OrderController{orders: orders}
}

type UpdateOrderRequest struct {
	CustomerName  string         `json:"customerName"`
	CustomerEmail string         `json:"customerEmail"`
	Items         []CheckoutItem `json:"items"`
	Total         float64        `json:"total"`
}

// GetOrders lists orders with customer name search, total price range,
// sorting and pagination. Admin only.
func (oc *OrderController) GetOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	minTotal, _ := strconv.ParseFloat(c.DefaultQuery("minTotalPrice", "0"), 64)
	maxTotal, _ := strconv.ParseFloat(c.DefaultQuery("maxTotalPrice", "1000000"), 64)

	params := services.ListOrdersParams{
		Page:          page,
		Limit:         limit,
		Search:        c.Query("search"),
		Sort:          c.DefaultQuery("sort", "orderDate"),
		Order:         c.DefaultQuery("order", "asc"),
		MinTotalPrice: minTotal,
		MaxTotalPrice: maxTotal,
	}

	list, err := oc.orders.List(c.Request.Context(), params)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// UpdateOrder applies administrative edits to an order.
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}

	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
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

	order, err := oc.orders.Update(c.Request.Context(), id, services.UpdateOrderRequest{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Items:         items,
		Total:         req.Total,
	})
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
