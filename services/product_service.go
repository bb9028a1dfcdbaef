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

// ProductStore is the persistence boundary for the catalog.
type ProductStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	Find(ctx context.Context, filter bson.M, findOptions *options.FindOptions) ([]*models.Product, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// ListProductsParams defines the parameters for listing products.
type ListProductsParams struct {
	Page     int
	Limit    int
	Search   string
	Sort     string
	Order    string // "asc" or "desc"
	MinPrice float64
	MaxPrice float64
}

// ProductList is a page of catalog results.
type ProductList struct {
	Count      int64             `json:"count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"totalPages"`
	Products   []*models.Product `json:"products"`
}

type ProductService struct {
	products ProductStore
	cache    *ProductCache
}

// NewProductService builds the catalog service. cache may be nil, which
// disables caching entirely.
func NewProductService(products ProductStore, cache *ProductCache) *ProductService {
	return &ProductService{products: products, cache: cache}
}

func (p ListProductsParams) normalized() ListProductsParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	if p.Sort == "" {
		p.Sort = "name"
	}
	if p.MaxPrice <= 0 {
		p.MaxPrice = 1000000
	}
	return p
}

func (p ListProductsParams) filter() bson.M {
	return bson.M{
		"name":  bson.M{"$regex": p.Search, "$options": "i"},
		"price": bson.M{"$gte": p.MinPrice, "$lte": p.MaxPrice},
	}
}

// List returns a page of products matching a case-insensitive name search
// and a price range. An empty result page is NotFound, mirroring the API's
// established contract.
func (s *ProductService) List(ctx context.Context, params ListProductsParams) (*ProductList, error) {
	params = params.normalized()

	if s.cache != nil {
		if cached, ok := s.cache.GetList(ctx, params); ok {
			return cached, nil
		}
	}

	order := 1
	if params.Order == "desc" {
		order = -1
	}

	filter := params.filter()
	findOptions := options.Find().
		SetSort(bson.D{{Key: params.Sort, Value: order}}).
		SetSkip(int64((params.Page - 1) * params.Limit)).
		SetLimit(int64(params.Limit))

	products, err := s.products.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}
	if len(products) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrNotFound, "No products found")
	}

	count, err := s.products.Count(ctx, filter)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}

	list := &ProductList{
		Count:      count,
		Page:       params.Page,
		Limit:      params.Limit,
		TotalPages: int(math.Ceil(float64(count) / float64(params.Limit))),
		Products:   products,
	}

	if s.cache != nil {
		s.cache.SetListAsync(params, list)
	}
	return list, nil
}

// Get returns one product by id.
func (s *ProductService) Get(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	if s.cache != nil {
		if cached, ok := s.cache.GetProduct(ctx, id.Hex()); ok {
			return cached, nil
		}
	}

	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}
	if product == nil {
		return nil, apperrors.WithMessage(apperrors.ErrNotFound, "Product not found")
	}

	if s.cache != nil {
		s.cache.SetProductAsync(id.Hex(), product)
	}
	return product, nil
}

// Create validates and persists a new product.
func (s *ProductService) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	if !models.IsValidCategory(product.Category) {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "Invalid category")
	}
	if product.Price < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "Price must not be negative")
	}
	if product.CountInStock < 0 || product.CountInStock > 100 {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "Stock count must be between 0 and 100")
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, "")
	}
	return product, nil
}

// Update applies the provided fields to an existing product. Empty fields
// keep their current values.
func (s *ProductService) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (*models.Product, error) {
	matched, err := s.products.Update(ctx, id, updates)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}
	if matched == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrNotFound, "Product not found")
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, id.Hex())
	}

	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}
	return product, nil
}

// Delete removes a product from the catalog.
func (s *ProductService) Delete(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := s.products.Delete(ctx, id)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}
	if deleted == 0 {
		return apperrors.WithMessage(apperrors.ErrNotFound, "Product not found")
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, id.Hex())
	}
	return nil
}
