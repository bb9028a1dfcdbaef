package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shop-backend/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	productCachePrefix     = "product:detail:"
	productListCachePrefix = "products:v:"
	cacheVersionKey        = "products:version"
)

// redisCommands is the slice of the redis client the cache uses.
type redisCommands interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// ProductCache is a read-through Redis cache for the catalog. List entries
// embed a version number that is bumped on every catalog write, so stale
// lists simply stop being addressable instead of being deleted one by one.
type ProductCache struct {
	redis redisCommands
	ttl   time.Duration
}

func NewProductCache(client *redis.Client, ttl time.Duration) *ProductCache {
	return &ProductCache{redis: client, ttl: ttl}
}

func (c *ProductCache) listKey(version int64, params ListProductsParams) string {
	return fmt.Sprintf("%s%d:p%d:l%d:s%s:f%s:o%s:min%g:max%g",
		productListCachePrefix, version,
		params.Page, params.Limit, params.Search, params.Sort, params.Order,
		params.MinPrice, params.MaxPrice)
}

func (c *ProductCache) version(ctx context.Context) int64 {
	v, err := c.redis.Get(ctx, cacheVersionKey).Int64()
	if err != nil {
		return 0
	}
	return v
}

// GetList retrieves a cached product listing for the given parameters.
func (c *ProductCache) GetList(ctx context.Context, params ListProductsParams) (*ProductList, bool) {
	version := c.version(ctx)
	if version == 0 {
		return nil, false
	}

	data, err := c.redis.Get(ctx, c.listKey(version, params)).Result()
	if err != nil {
		return nil, false
	}

	var list ProductList
	if err := json.Unmarshal([]byte(data), &list); err != nil {
		zap.L().Warn("Failed to unmarshal cached product list", zap.Error(err))
		return nil, false
	}
	return &list, true
}

// SetListAsync caches a product listing without blocking the request.
func (c *ProductCache) SetListAsync(params ListProductsParams, list *ProductList) {
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		version := c.version(bgCtx)
		if version == 0 {
			// First write seeds the version counter.
			if err := c.redis.Set(bgCtx, cacheVersionKey, 1, 0).Err(); err != nil {
				return
			}
			version = 1
		}

		data, err := json.Marshal(list)
		if err != nil {
			zap.L().Warn("Failed to marshal product list for cache", zap.Error(err))
			return
		}
		if err := c.redis.Set(bgCtx, c.listKey(version, params), data, c.ttl).Err(); err != nil {
			zap.L().Warn("Failed to cache product list", zap.Error(err))
		}
	}()
}

// GetProduct retrieves a cached product detail.
func (c *ProductCache) GetProduct(ctx context.Context, id string) (*models.Product, bool) {
	data, err := c.redis.Get(ctx, productCachePrefix+id).Result()
	if err != nil {
		return nil, false
	}
	var product models.Product
	if err := json.Unmarshal([]byte(data), &product); err != nil {
		return nil, false
	}
	return &product, true
}

// SetProductAsync caches a product detail without blocking the request.
func (c *ProductCache) SetProductAsync(id string, product *models.Product) {
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		data, err := json.Marshal(product)
		if err != nil {
			return
		}
		if err := c.redis.Set(bgCtx, productCachePrefix+id, data, c.ttl).Err(); err != nil {
			zap.L().Warn("Failed to cache product", zap.Error(err), zap.String("product_id", id))
		}
	}()
}

// Invalidate bumps the list version and drops a product's detail entry.
// Called after any catalog write.
func (c *ProductCache) Invalidate(ctx context.Context, id string) {
	if err := c.redis.Incr(ctx, cacheVersionKey).Err(); err != nil {
		zap.L().Warn("Failed to bump product cache version", zap.Error(err))
	}
	if id != "" {
		if err := c.redis.Del(ctx, productCachePrefix+id).Err(); err != nil {
			zap.L().Warn("Failed to drop cached product", zap.Error(err), zap.String("product_id", id))
		}
	}
}
