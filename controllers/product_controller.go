package controllers

import (
	"net/http"
	"strconv"

	apperrors "shop-backend/common/errors"
	"shop-backend/models"
	"shop-backend/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductController struct {
	products ProductAPI
}

func NewProductController(products ProductAPI) *ProductController {
	return &ProductController{products: products}
}

type CreateProductRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	Category     string  `json:"category" binding:"required"`
	Price        float64 `json:"price" binding:"required"`
	Image        string  `json:"image" binding:"required"`
	Brand        string  `json:"brand" binding:"required"`
	CountInStock *int    `json:"countInStock" binding:"required"`
}

type UpdateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
}

// GetProducts lists the catalog with name search, price range, sorting and
// pagination.
func (pc *ProductController) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	minPrice, _ := strconv.ParseFloat(c.DefaultQuery("minPrice", "0"), 64)
	maxPrice, _ := strconv.ParseFloat(c.DefaultQuery("maxPrice", "1000000"), 64)

	params := services.ListProductsParams{
		Page:     page,
		Limit:    limit,
		Search:   c.Query("search"),
		Sort:     c.DefaultQuery("sort", "name"),
		Order:    c.DefaultQuery("order", "asc"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
	}

	list, err := pc.products.List(c.Request.Context(), params)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetOneProduct returns a single product by id.
func (pc *ProductController) GetOneProduct(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	product, err := pc.products.Get(c.Request.Context(), id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// AddProduct creates a catalog entry. Admin only.
func (pc *ProductController) AddProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	product := &models.Product{
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		Price:        req.Price,
		Image:        req.Image,
		Brand:        req.Brand,
		CountInStock: *req.CountInStock,
	}

	created, err := pc.products.Create(c.Request.Context(), product)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateProduct applies partial edits to a product. Admin only.
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	updates := bson.M{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Image != "" {
		updates["image"] = req.Image
	}
	if req.Price > 0 {
		updates["price"] = req.Price
	}

	product, err := pc.products.Update(c.Request.Context(), id, updates)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct removes a product from the catalog. Admin only.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	if err := pc.products.Delete(c.Request.Context(), id); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product removed"})
}
